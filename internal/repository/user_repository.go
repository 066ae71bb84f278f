package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/leave-service/internal/domain"
)

// UserRepository defines persistence access for users and their balances.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	GetBalance(ctx context.Context, userID string, leaveType domain.LeaveType) (int, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insertUser = `
        INSERT INTO users (name, email, department, joining_date, password_hash, role)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	if err := tx.QueryRow(ctx, insertUser,
		user.Name,
		user.Email,
		user.Department,
		user.JoiningDate,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return err
	}

	const insertBalance = `
        INSERT INTO leave_balances (user_id, leave_type, balance_days)
        VALUES ($1, $2, $3)`

	for leaveType, days := range user.Balances {
		if _, err := tx.Exec(ctx, insertBalance, user.ID, leaveType, days); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, department, joining_date, password_hash, role, created_at, updated_at
        FROM users WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, department, joining_date, password_hash, role, created_at, updated_at
        FROM users WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Department,
		&user.JoiningDate,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := r.loadBalances(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) loadBalances(ctx context.Context, user *domain.User) error {
	const query = `
        SELECT leave_type, balance_days FROM leave_balances WHERE user_id=$1`

	rows, err := r.pool.Query(ctx, query, user.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	user.Balances = make(map[domain.LeaveType]int)
	for rows.Next() {
		var leaveType domain.LeaveType
		var days int
		if err := rows.Scan(&leaveType, &days); err != nil {
			return err
		}
		user.Balances[leaveType] = days
	}
	return rows.Err()
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id, name, email, department, joining_date, role, created_at, updated_at
        FROM users ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Department,
			&user.JoiningDate,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range users {
		if err := r.loadBalances(ctx, &users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (r *userRepository) GetBalance(ctx context.Context, userID string, leaveType domain.LeaveType) (int, error) {
	const query = `
        SELECT balance_days FROM leave_balances WHERE user_id=$1 AND leave_type=$2`

	var days int
	if err := r.pool.QueryRow(ctx, query, userID, leaveType).Scan(&days); err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return days, nil
}
