package auth

import "github.com/spec-kit/leave-service/internal/domain"

// Role policy predicates. Each is total over the role enumeration:
// anything outside the closed set is denied, never implicitly allowed.

// CanCreateLeaveRequest reports whether the role may file leave requests.
// Admins do not file on their own behalf in this model.
func CanCreateLeaveRequest(role domain.Role) bool {
	return role == domain.RoleEmployee
}

// CanDecideLeaveRequest reports whether the role may approve or reject.
func CanDecideLeaveRequest(role domain.Role) bool {
	return role == domain.RoleAdmin
}

// CanViewAllLeaveRequests reports whether the role may list every request.
// Employees only see their own records.
func CanViewAllLeaveRequests(role domain.Role) bool {
	return role == domain.RoleAdmin
}

// CanManageEmployees reports whether the role may read the employee roster.
func CanManageEmployees(role domain.Role) bool {
	return role == domain.RoleAdmin
}
