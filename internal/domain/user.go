package domain

import "time"

// Role enumerates the closed set of user roles.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether the role belongs to the enumeration.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// User is the domain model for everyone who logs into the system.
// Balances maps leave type to remaining whole days and is loaded
// alongside the user; it is mutated only through the approval transition.
type User struct {
	ID           string
	Name         string
	Email        string
	Department   string
	JoiningDate  time.Time
	PasswordHash string
	Role         Role
	Balances     map[LeaveType]int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
