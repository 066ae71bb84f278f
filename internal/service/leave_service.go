package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/leave-service/internal/auth"
	"github.com/spec-kit/leave-service/internal/domain"
	"github.com/spec-kit/leave-service/internal/events"
	"github.com/spec-kit/leave-service/internal/repository"
	apperrors "github.com/spec-kit/leave-service/pkg/util"
)

// LeaveService owns the leave request lifecycle and balance accounting.
type LeaveService struct {
	leaves     repository.LeaveRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// LeaveDependencies bundles requirements for the leave service.
type LeaveDependencies struct {
	LeaveRepo  repository.LeaveRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewLeaveService constructs the service.
func NewLeaveService(deps LeaveDependencies) *LeaveService {
	return &LeaveService{
		leaves:     deps.LeaveRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// SubmitInput describes a leave application. Dates arrive as 2006-01-02
// strings; the day count is always derived here, never taken from the caller.
type SubmitInput struct {
	LeaveType string
	StartDate string
	EndDate   string
	Reason    string
}

// Submit files a new PENDING leave request for the acting employee.
// Balance is checked at submission but deducted only on approval.
func (s *LeaveService) Submit(ctx context.Context, claims *domain.IdentityClaims, input SubmitInput) (*domain.LeaveRequest, error) {
	if !auth.CanCreateLeaveRequest(claims.Role) {
		return nil, apperrors.NewForbidden("only employees may file leave requests")
	}

	leaveType := domain.LeaveType(strings.ToUpper(strings.TrimSpace(input.LeaveType)))
	if !leaveType.Valid() {
		return nil, apperrors.NewValidationError("unknown leave type", map[string]any{"leave_type": input.LeaveType})
	}

	start, err := parseDate(input.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid start_date", nil)
	}
	end, err := parseDate(input.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid end_date", nil)
	}
	if start.After(end) {
		return nil, apperrors.NewValidationError("start_date must not be after end_date", nil)
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, apperrors.NewValidationError("reason required", nil)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if start.Before(domain.TruncateToDate(user.JoiningDate)) {
		return nil, apperrors.NewValidationError("leave cannot start before joining date", nil)
	}

	days := domain.InclusiveDayCount(start, end)
	balance, err := s.users.GetBalance(ctx, user.ID, leaveType)
	if err != nil {
		return nil, err
	}
	if balance < days {
		return nil, apperrors.NewInsufficientBalance(map[string]any{
			"leave_type": leaveType,
			"required":   days,
			"available":  balance,
		})
	}

	request := &domain.LeaveRequest{
		UserID:    user.ID,
		LeaveType: leaveType,
		StartDate: start,
		EndDate:   end,
		Days:      days,
		Reason:    strings.TrimSpace(input.Reason),
		Status:    domain.LeaveStatusPending,
	}
	if err := s.leaves.Create(ctx, request); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventLeaveRequestSubmitted,
		ActorID:   user.ID,
		Timestamp: time.Now(),
		Payload: events.LeaveRequestSubmittedPayload{
			RequestID: request.ID,
			UserID:    user.ID,
			LeaveType: request.LeaveType,
			Days:      request.Days,
		},
	})
	return request, nil
}

// Decide applies the terminal transition to a PENDING request. Approval
// deducts the request's days atomically with the status flip; a lost
// balance race surfaces as InsufficientBalance and leaves the request
// PENDING. Re-deciding an already decided request is rejected.
func (s *LeaveService) Decide(ctx context.Context, claims *domain.IdentityClaims, requestID string, decision domain.LeaveStatus, note *string) (*domain.LeaveRequest, error) {
	if !auth.CanDecideLeaveRequest(claims.Role) {
		return nil, apperrors.NewForbidden("admin role required")
	}

	var (
		updated *domain.LeaveRequest
		err     error
	)
	switch decision {
	case domain.LeaveStatusApproved:
		updated, err = s.leaves.Approve(ctx, requestID, claims.UserID, note)
	case domain.LeaveStatusRejected:
		updated, err = s.leaves.Reject(ctx, requestID, claims.UserID, note)
	default:
		return nil, apperrors.NewValidationError("decision must be APPROVED or REJECTED", nil)
	}
	if err != nil {
		switch err {
		case pgx.ErrNoRows:
			return nil, apperrors.NewNotFound("leave request", nil)
		case repository.ErrNotPending:
			return nil, apperrors.NewInvalidTransition("leave request already decided")
		case repository.ErrInsufficientBalance:
			return nil, apperrors.NewInsufficientBalance(map[string]any{"request_id": requestID})
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventLeaveRequestDecided,
		ActorID:   claims.UserID,
		Timestamp: time.Now(),
		Payload: events.LeaveRequestDecidedPayload{
			RequestID: updated.ID,
			UserID:    updated.UserID,
			Decision:  updated.Status,
			Days:      updated.Days,
			DecidedBy: claims.UserID,
		},
	})
	return updated, nil
}

// Cancel removes the caller's own request while it is still PENDING.
func (s *LeaveService) Cancel(ctx context.Context, claims *domain.IdentityClaims, requestID string) error {
	request, err := s.leaves.GetByID(ctx, requestID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("leave request", nil)
		}
		return err
	}
	// Foreign requests are reported as absent rather than forbidden so
	// request IDs stay unguessable across users.
	if request.UserID != claims.UserID {
		return apperrors.NewNotFound("leave request", nil)
	}
	if err := s.leaves.DeletePending(ctx, requestID); err != nil {
		if err == repository.ErrNotPending {
			return apperrors.NewInvalidTransition("only pending requests can be cancelled")
		}
		return err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventLeaveRequestCancelled,
		ActorID:   claims.UserID,
		Timestamp: time.Now(),
		Payload: events.LeaveRequestCancelledPayload{
			RequestID: requestID,
			UserID:    claims.UserID,
		},
	})
	return nil
}

// ListMine returns the caller's own requests, optionally filtered by status.
func (s *LeaveService) ListMine(ctx context.Context, claims *domain.IdentityClaims, status *domain.LeaveStatus) ([]domain.LeaveRequest, error) {
	return s.leaves.ListByUser(ctx, claims.UserID, status)
}

// ListAll returns every request with the owner's name. Admin only.
func (s *LeaveService) ListAll(ctx context.Context, claims *domain.IdentityClaims, status *domain.LeaveStatus) ([]domain.LeaveRequestWithOwner, error) {
	if !auth.CanViewAllLeaveRequests(claims.Role) {
		return nil, apperrors.NewForbidden("admin role required")
	}
	return s.leaves.ListAllWithOwner(ctx, status)
}

// MyBalances returns the caller's remaining days per leave type.
func (s *LeaveService) MyBalances(ctx context.Context, claims *domain.IdentityClaims) (map[domain.LeaveType]int, error) {
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	return user.Balances, nil
}

// ParseStatusFilter validates an optional ?status= query value.
func ParseStatusFilter(raw string) (*domain.LeaveStatus, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	status := domain.LeaveStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !status.Valid() {
		return nil, apperrors.NewValidationError("unknown status filter", map[string]any{"status": raw})
	}
	return &status, nil
}

func parseDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(domain.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, err
	}
	return domain.TruncateToDate(parsed), nil
}

func (s *LeaveService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
