package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/leave-service/internal/domain"
)

const leaveColumns = `id, user_id, leave_type, start_date, end_date, days, reason, status,
               decision_by, decision_note, decided_at, created_at`

// LeaveRepository encapsulates leave request persistence. Approve and
// Reject apply the status transition as a single transaction so the
// PENDING guard and the balance decrement cannot be torn apart by a
// concurrent decision.
type LeaveRepository interface {
	Create(ctx context.Context, request *domain.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	ListByUser(ctx context.Context, userID string, status *domain.LeaveStatus) ([]domain.LeaveRequest, error)
	ListAllWithOwner(ctx context.Context, status *domain.LeaveStatus) ([]domain.LeaveRequestWithOwner, error)
	Approve(ctx context.Context, id, decidedBy string, note *string) (*domain.LeaveRequest, error)
	Reject(ctx context.Context, id, decidedBy string, note *string) (*domain.LeaveRequest, error)
	DeletePending(ctx context.Context, id string) error
}

type leaveRepository struct {
	pool *pgxpool.Pool
}

// NewLeaveRepository instantiates the repository.
func NewLeaveRepository(pool *pgxpool.Pool) LeaveRepository {
	return &leaveRepository{pool: pool}
}

func (r *leaveRepository) Create(ctx context.Context, request *domain.LeaveRequest) error {
	const query = `
        INSERT INTO leave_requests (user_id, leave_type, start_date, end_date, days, reason, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		request.UserID,
		request.LeaveType,
		request.StartDate,
		request.EndDate,
		request.Days,
		request.Reason,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt)
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM leave_requests WHERE id=$1`, leaveColumns)

	var request domain.LeaveRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(leaveFields(&request)...); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *leaveRepository) ListByUser(ctx context.Context, userID string, status *domain.LeaveStatus) ([]domain.LeaveRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM leave_requests WHERE user_id=$1`, leaveColumns)
	args := []any{userID}
	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(" AND status=$%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LeaveRequest
	for rows.Next() {
		var request domain.LeaveRequest
		if err := rows.Scan(leaveFields(&request)...); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}

func (r *leaveRepository) ListAllWithOwner(ctx context.Context, status *domain.LeaveStatus) ([]domain.LeaveRequestWithOwner, error) {
	query := `
        SELECT r.id, r.user_id, r.leave_type, r.start_date, r.end_date, r.days, r.reason, r.status,
               r.decision_by, r.decision_note, r.decided_at, r.created_at, u.name
        FROM leave_requests r
        JOIN users u ON u.id = r.user_id`
	args := []any{}
	if status != nil {
		args = append(args, *status)
		query += " WHERE r.status=$1"
	}
	query += " ORDER BY r.created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LeaveRequestWithOwner
	for rows.Next() {
		var row domain.LeaveRequestWithOwner
		fields := append(leaveFields(&row.LeaveRequest), &row.EmployeeName)
		if err := rows.Scan(fields...); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Approve flips a PENDING request to APPROVED and deducts its days from
// the owner's balance. The request row is locked first, then the balance
// decrement runs conditionally on sufficient funds; zero rows affected
// means another approval drained the balance and the whole transaction
// rolls back with ErrInsufficientBalance, leaving the request PENDING.
func (r *leaveRepository) Approve(ctx context.Context, id, decidedBy string, note *string) (*domain.LeaveRequest, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	request, err := lockRequest(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.LeaveStatusPending {
		return nil, ErrNotPending
	}

	const deduct = `
        UPDATE leave_balances SET balance_days = balance_days - $1
        WHERE user_id=$2 AND leave_type=$3 AND balance_days >= $1`

	cmd, err := tx.Exec(ctx, deduct, request.Days, request.UserID, request.LeaveType)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, ErrInsufficientBalance
	}

	updated, err := finalizeDecision(ctx, tx, id, domain.LeaveStatusApproved, decidedBy, note)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

// Reject flips a PENDING request to REJECTED. No balance effect.
func (r *leaveRepository) Reject(ctx context.Context, id, decidedBy string, note *string) (*domain.LeaveRequest, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	request, err := lockRequest(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.LeaveStatusPending {
		return nil, ErrNotPending
	}

	updated, err := finalizeDecision(ctx, tx, id, domain.LeaveStatusRejected, decidedBy, note)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePending removes a request only while it is still PENDING.
func (r *leaveRepository) DeletePending(ctx context.Context, id string) error {
	const query = `DELETE FROM leave_requests WHERE id=$1 AND status=$2`

	cmd, err := r.pool.Exec(ctx, query, id, domain.LeaveStatusPending)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotPending
	}
	return nil
}

func lockRequest(ctx context.Context, tx pgx.Tx, id string) (*domain.LeaveRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM leave_requests WHERE id=$1 FOR UPDATE`, leaveColumns)

	var request domain.LeaveRequest
	if err := tx.QueryRow(ctx, query, id).Scan(leaveFields(&request)...); err != nil {
		return nil, err
	}
	return &request, nil
}

func finalizeDecision(ctx context.Context, tx pgx.Tx, id string, status domain.LeaveStatus, decidedBy string, note *string) (*domain.LeaveRequest, error) {
	query := fmt.Sprintf(`
        UPDATE leave_requests SET status=$2, decision_by=$3, decision_note=$4, decided_at=NOW()
        WHERE id=$1
        RETURNING %s`, leaveColumns)

	var request domain.LeaveRequest
	if err := tx.QueryRow(ctx, query, id, status, decidedBy, note).Scan(leaveFields(&request)...); err != nil {
		return nil, err
	}
	return &request, nil
}

func leaveFields(r *domain.LeaveRequest) []any {
	return []any{
		&r.ID,
		&r.UserID,
		&r.LeaveType,
		&r.StartDate,
		&r.EndDate,
		&r.Days,
		&r.Reason,
		&r.Status,
		&r.DecisionBy,
		&r.DecisionNote,
		&r.DecidedAt,
		&r.CreatedAt,
	}
}
