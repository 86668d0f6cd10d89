package validation

import (
	"github.com/lucasmv/bankapi/internal/domain"
)

// BalanceValidator decides whether a candidate transaction is covered by
// the source account's available funds (balance plus special limit).
type BalanceValidator struct{}

// NewBalanceValidator creates a new BalanceValidator instance
func NewBalanceValidator() *BalanceValidator {
	return &BalanceValidator{}
}

// Validate returns ErrInsufficientBalance when the transaction amount
// exceeds the source account's available funds. It is a pure predicate
// over the candidate and must run before any balance is mutated.
func (v *BalanceValidator) Validate(tx *domain.Transaction) error {
	if tx.Amount.GreaterThan(tx.SourceAccount.Available()) {
		return domain.ErrInsufficientBalance
	}

	return nil
}
