package observability

import (
	"sync"
	"time"
)

type requestKey struct {
	path   string
	method string
	status int
}

type errorKey struct {
	path   string
	method string
	code   string
}

type requestStats struct {
	count   int64
	elapsed time.Duration
}

// Metrics keeps in-process counters keyed by route, so per-endpoint
// decision failure rates stay visible without an external backend.
type Metrics struct {
	mu       sync.Mutex
	requests map[requestKey]requestStats
	errors   map[errorKey]int64
}

// NewMetrics initializes empty counters.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[requestKey]requestStats),
		errors:   make(map[errorKey]int64),
	}
}

// RecordRequest counts one completed request and accumulates its latency.
// The status must be the one sent to the client, after error conversion.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := requestKey{path: path, method: method, status: status}
	m.mu.Lock()
	stats := m.requests[key]
	stats.count++
	stats.elapsed += duration
	m.requests[key] = stats
	m.mu.Unlock()
}

// RecordError counts one failed request by domain error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.errors[errorKey{path: path, method: method, code: code}]++
	m.mu.Unlock()
}

// RequestTotal reports the request count for one route and status.
func (m *Metrics) RequestTotal(path, method string, status int) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[requestKey{path: path, method: method, status: status}].count
}

// ErrorTotal reports the error count for one route and domain error code.
func (m *Metrics) ErrorTotal(path, method, code string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[errorKey{path: path, method: method, code: code}]
}
