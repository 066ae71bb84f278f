package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewInvalidTransition("already decided")
	mapped := ToDomainError(original)
	if mapped.Code != "INVALID_TRANSITION" || mapped.HTTPStatus != http.StatusConflict {
		t.Fatalf("got %s/%d, want INVALID_TRANSITION/409", mapped.Code, mapped.HTTPStatus)
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("got %s/%d, want NOT_FOUND/404", mapped.Code, mapped.HTTPStatus)
	}
}

func TestToDomainErrorHidesInternalDetail(t *testing.T) {
	mapped := ToDomainError(errors.New("connection refused to 10.0.0.5"))
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("got %s/%d, want INTERNAL_ERROR/500", mapped.Code, mapped.HTTPStatus)
	}
	if mapped.Message != "internal server error" {
		t.Fatalf("message %q leaks internal detail", mapped.Message)
	}
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewUnauthenticated("missing token"), "UNAUTHENTICATED", http.StatusUnauthorized},
		{NewInvalidToken("expired"), "INVALID_TOKEN", http.StatusUnauthorized},
		{NewForbidden("no"), "FORBIDDEN", http.StatusForbidden},
		{NewValidationError("bad", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{NewInsufficientBalance(nil), "INSUFFICIENT_BALANCE", http.StatusConflict},
		{NewNotFound("leave request", nil), "NOT_FOUND", http.StatusNotFound},
	}
	for _, tc := range cases {
		de := ToDomainError(tc.err)
		if de.Code != tc.code || de.HTTPStatus != tc.status {
			t.Errorf("got %s/%d, want %s/%d", de.Code, de.HTTPStatus, tc.code, tc.status)
		}
	}
}
