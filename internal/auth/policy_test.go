package auth

import (
	"testing"

	"github.com/spec-kit/leave-service/internal/domain"
)

func TestRolePolicyPredicates(t *testing.T) {
	// Includes a role outside the enumeration: every predicate must deny
	// it rather than fall through to an implicit allow.
	roles := []domain.Role{domain.RoleEmployee, domain.RoleAdmin, domain.Role("SUPERVISOR")}

	cases := []struct {
		name      string
		predicate func(domain.Role) bool
		allowed   map[domain.Role]bool
	}{
		{"CanCreateLeaveRequest", CanCreateLeaveRequest, map[domain.Role]bool{domain.RoleEmployee: true}},
		{"CanDecideLeaveRequest", CanDecideLeaveRequest, map[domain.Role]bool{domain.RoleAdmin: true}},
		{"CanViewAllLeaveRequests", CanViewAllLeaveRequests, map[domain.Role]bool{domain.RoleAdmin: true}},
		{"CanManageEmployees", CanManageEmployees, map[domain.Role]bool{domain.RoleAdmin: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, role := range roles {
				if got, want := tc.predicate(role), tc.allowed[role]; got != want {
					t.Errorf("%s(%s) = %v, want %v", tc.name, role, got, want)
				}
			}
		})
	}
}
