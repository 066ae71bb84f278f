package observability

import (
	"testing"
	"time"
)

func TestMetricsCountsByRouteAndStatus(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/leave-requests", "POST", 201, 5*time.Millisecond)
	m.RecordRequest("/leave-requests", "POST", 201, 3*time.Millisecond)
	m.RecordRequest("/leave-requests", "POST", 409, 2*time.Millisecond)

	if got := m.RequestTotal("/leave-requests", "POST", 201); got != 2 {
		t.Errorf("RequestTotal(201) = %d, want 2", got)
	}
	if got := m.RequestTotal("/leave-requests", "POST", 409); got != 1 {
		t.Errorf("RequestTotal(409) = %d, want 1", got)
	}
	if got := m.RequestTotal("/leave-requests", "GET", 201); got != 0 {
		t.Errorf("RequestTotal(GET) = %d, want 0", got)
	}
}

func TestMetricsCountsErrorsByCode(t *testing.T) {
	m := NewMetrics()

	m.RecordError("/leave-requests/1", "PATCH", "INSUFFICIENT_BALANCE")
	m.RecordError("/leave-requests/1", "PATCH", "INVALID_TRANSITION")
	m.RecordError("/leave-requests/1", "PATCH", "INSUFFICIENT_BALANCE")

	if got := m.ErrorTotal("/leave-requests/1", "PATCH", "INSUFFICIENT_BALANCE"); got != 2 {
		t.Errorf("ErrorTotal(INSUFFICIENT_BALANCE) = %d, want 2", got)
	}
	if got := m.ErrorTotal("/leave-requests/1", "PATCH", "INVALID_TRANSITION"); got != 1 {
		t.Errorf("ErrorTotal(INVALID_TRANSITION) = %d, want 1", got)
	}
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/ping", "GET", 200, time.Millisecond)
	m.RecordError("/ping", "GET", "INTERNAL_ERROR")
	if m.RequestTotal("/ping", "GET", 200) != 0 || m.ErrorTotal("/ping", "GET", "INTERNAL_ERROR") != 0 {
		t.Error("nil metrics must report zero")
	}
}
