package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revocationKeyPrefix = "revoked_token:"

// RevocationList is a Redis-backed denylist of token IDs. Entries expire
// together with the token they block, so the set stays bounded by the
// token TTL. A nil client disables revocation and the service falls back
// to the short-expiry trade-off.
type RevocationList struct {
	client *redis.Client
}

// NewRevocationList wraps the given Redis client.
func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client}
}

// Revoke blocks the token ID until the token's own expiry.
func (r *RevocationList) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if r == nil || r.client == nil || tokenID == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revocationKeyPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether the token ID has been blocked.
func (r *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if r == nil || r.client == nil || tokenID == "" {
		return false, nil
	}
	n, err := r.client.Exists(ctx, revocationKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
