package dto

import "time"

// SignupRequest payload for new accounts.
type SignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	JoiningDate string `json:"joining_date"`
	Password    string `json:"password"`
}

// LoginRequest payload for login. AdminOnly refuses the login instead of
// issuing an employee token when the account is not an admin.
type LoginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	AdminOnly bool   `json:"admin_only"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
