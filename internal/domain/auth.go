package domain

import "time"

// IdentityClaims is the verified identity carried by a session token.
// The gate trusts these for the token's lifetime; no store lookup per call.
type IdentityClaims struct {
	UserID    string
	Role      Role
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
