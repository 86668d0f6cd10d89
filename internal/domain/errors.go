package domain

import (
	"errors"
	"fmt"
)

// Domain errors surfaced to callers. The HTTP layer translates these to
// status codes: ErrAccountNotFound -> 404, ErrInsufficientBalance and
// ErrInvalidInput -> 400, anything else -> 500.
var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrInsufficientBalance = errors.New("insufficient balance for transaction")
	ErrInvalidInput        = errors.New("invalid input")
)

// AccountNotFoundError is an ErrAccountNotFound that names the missing
// account number, so callers can report which lookup failed.
type AccountNotFoundError struct {
	Number int64
}

func (e AccountNotFoundError) Error() string {
	return fmt.Sprintf("Account %d does not exist", e.Number)
}

// Is makes errors.Is(err, ErrAccountNotFound) match.
func (e AccountNotFoundError) Is(target error) bool {
	return target == ErrAccountNotFound
}
