package dto

import (
	"time"

	"github.com/spec-kit/leave-service/internal/domain"
)

// CreateLeaveRequest payload for filing leave. Dates use 2006-01-02.
// A day count is never accepted from the client.
type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// DecideLeaveRequest payload for the admin decision.
type DecideLeaveRequest struct {
	Decision     string  `json:"decision"`
	DecisionNote *string `json:"decision_note,omitempty"`
}

// LeaveRequestResponse is the wire shape of a leave request.
type LeaveRequestResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	LeaveType    string     `json:"leave_type"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	Days         int        `json:"days"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	DecisionBy   *string    `json:"decision_by,omitempty"`
	DecisionNote *string    `json:"decision_note,omitempty"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// LeaveRequestWithOwnerResponse adds the owner's display name for admins.
type LeaveRequestWithOwnerResponse struct {
	LeaveRequestResponse
	EmployeeName string `json:"employee_name"`
}

// NewLeaveRequestResponse maps the domain aggregate.
func NewLeaveRequestResponse(r *domain.LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		LeaveType:    string(r.LeaveType),
		StartDate:    r.StartDate.Format(domain.DateLayout),
		EndDate:      r.EndDate.Format(domain.DateLayout),
		Days:         r.Days,
		Reason:       r.Reason,
		Status:       string(r.Status),
		DecisionBy:   r.DecisionBy,
		DecisionNote: r.DecisionNote,
		DecidedAt:    r.DecidedAt,
		CreatedAt:    r.CreatedAt,
	}
}

// NewLeaveRequestWithOwnerResponse maps the admin read model.
func NewLeaveRequestWithOwnerResponse(r *domain.LeaveRequestWithOwner) LeaveRequestWithOwnerResponse {
	return LeaveRequestWithOwnerResponse{
		LeaveRequestResponse: NewLeaveRequestResponse(&r.LeaveRequest),
		EmployeeName:         r.EmployeeName,
	}
}
