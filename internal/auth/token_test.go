package auth

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/leave-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, exp, err := tm.GenerateToken("user-1", domain.RoleEmployee)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatal("expiry must be in the future")
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Role != domain.RoleEmployee {
		t.Errorf("Role = %q, want EMPLOYEE", claims.Role)
	}
	if claims.ID == "" {
		t.Error("token ID (jti) must be set")
	}

	identity := claims.Identity()
	if identity.UserID != "user-1" || identity.Role != domain.RoleEmployee || identity.TokenID != claims.ID {
		t.Errorf("unexpected identity: %+v", identity)
	}
}

func TestParseTokenExpired(t *testing.T) {
	secret := "test-secret"
	tm := NewTokenManager(secret, 60)

	// Sign a token whose lifetime has already passed; the signature is
	// otherwise valid.
	claims := &Claims{
		UserID: "user-1",
		Role:   domain.RoleEmployee,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "stale",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("got %v, want ErrTokenExpired", err)
	}
}

func TestParseTokenRejectsTampering(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	other := NewTokenManager("other-secret", 60)

	token, _, err := other.GenerateToken("user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := tm.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("foreign signature: got %v, want ErrTokenInvalid", err)
	}

	if _, err := tm.ParseToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("garbage: got %v, want ErrTokenInvalid", err)
	}
}

func TestParseTokenRejectsUnknownRole(t *testing.T) {
	secret := "test-secret"
	tm := NewTokenManager(secret, 60)

	claims := &Claims{
		UserID: "user-1",
		Role:   domain.Role("SUPERVISOR"),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := tm.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("got %v, want ErrTokenInvalid", err)
	}
}
