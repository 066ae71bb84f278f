package events

import (
	"time"

	"github.com/spec-kit/leave-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered        EventType = "user_registered"
	EventLeaveRequestSubmitted EventType = "leave_request_submitted"
	EventLeaveRequestDecided   EventType = "leave_request_decided"
	EventLeaveRequestCancelled EventType = "leave_request_cancelled"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// LeaveRequestSubmittedPayload payload.
type LeaveRequestSubmittedPayload struct {
	RequestID string           `json:"request_id"`
	UserID    string           `json:"user_id"`
	LeaveType domain.LeaveType `json:"leave_type"`
	Days      int              `json:"days"`
}

// LeaveRequestDecidedPayload payload.
type LeaveRequestDecidedPayload struct {
	RequestID string             `json:"request_id"`
	UserID    string             `json:"user_id"`
	Decision  domain.LeaveStatus `json:"decision"`
	Days      int                `json:"days"`
	DecidedBy string             `json:"decided_by"`
}

// LeaveRequestCancelledPayload payload.
type LeaveRequestCancelledPayload struct {
	RequestID string `json:"request_id"`
	UserID    string `json:"user_id"`
}
