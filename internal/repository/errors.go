package repository

import "errors"

// ErrNotPending is returned when a decision targets a request that has
// already left the PENDING state.
var ErrNotPending = errors.New("leave request is not pending")

// ErrInsufficientBalance is returned when the conditional balance
// decrement matches no row, meaning the remaining balance no longer
// covers the requested days.
var ErrInsufficientBalance = errors.New("insufficient leave balance")
