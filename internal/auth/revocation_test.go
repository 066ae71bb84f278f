package auth

import (
	"context"
	"testing"
	"time"
)

func TestRevocationListWithoutClient(t *testing.T) {
	// Without Redis the list degrades to a no-op and the service falls
	// back to the short-expiry trade-off.
	list := NewRevocationList(nil)

	if err := list.Revoke(context.Background(), "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	revoked, err := list.IsRevoked(context.Background(), "jti-1")
	if err != nil {
		t.Fatalf("IsRevoked: %v", err)
	}
	if revoked {
		t.Fatal("nil-client list must never report revoked")
	}
}
