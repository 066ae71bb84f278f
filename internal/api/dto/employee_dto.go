package dto

import "github.com/spec-kit/leave-service/internal/domain"

// EmployeeResponse is the admin roster row including balances.
type EmployeeResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Department  string         `json:"department"`
	JoiningDate string         `json:"joining_date"`
	Role        string         `json:"role"`
	Balances    map[string]int `json:"leave_balances"`
}

// NewEmployeeResponse maps a domain user.
func NewEmployeeResponse(u *domain.User) EmployeeResponse {
	balances := make(map[string]int, len(u.Balances))
	for leaveType, days := range u.Balances {
		balances[string(leaveType)] = days
	}
	return EmployeeResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Department:  u.Department,
		JoiningDate: u.JoiningDate.Format(domain.DateLayout),
		Role:        string(u.Role),
		Balances:    balances,
	}
}
