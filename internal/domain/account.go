package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account represents a bank account in the domain layer.
// ID is the internal surrogate key assigned by the store; Number is the
// business identifier chosen by the caller and never reassigned.
type Account struct {
	ID           int64
	Name         string
	Number       int64
	Balance      decimal.Decimal
	SpecialLimit decimal.Decimal // overdraft capacity beyond zero, never negative
}

// Available returns the funds the account may spend: balance plus the
// special (overdraft) limit.
func (a *Account) Available() decimal.Decimal {
	return a.Balance.Add(a.SpecialLimit)
}

// Validate ensures the account adheres to domain rules.
// The balance itself is not checked here: it may legitimately be negative
// down to -SpecialLimit after committed transactions.
func (a *Account) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("account name cannot be empty: %w", ErrInvalidInput)
	}

	if a.Number <= 0 {
		return fmt.Errorf("account number must be positive: %w", ErrInvalidInput)
	}

	if a.SpecialLimit.IsNegative() {
		return fmt.Errorf("special limit cannot be negative: %w", ErrInvalidInput)
	}

	return nil
}
