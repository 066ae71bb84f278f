package service

import (
	"context"

	"github.com/spec-kit/leave-service/internal/auth"
	"github.com/spec-kit/leave-service/internal/domain"
	"github.com/spec-kit/leave-service/internal/repository"
	apperrors "github.com/spec-kit/leave-service/pkg/util"
)

// EmployeeService exposes the admin roster view.
type EmployeeService struct {
	users repository.UserRepository
}

// NewEmployeeService constructs the service.
func NewEmployeeService(users repository.UserRepository) *EmployeeService {
	return &EmployeeService{users: users}
}

// List returns all users with their balances. Admin only.
func (s *EmployeeService) List(ctx context.Context, claims *domain.IdentityClaims) ([]domain.User, error) {
	if !auth.CanManageEmployees(claims.Role) {
		return nil, apperrors.NewForbidden("admin role required")
	}
	return s.users.List(ctx)
}
