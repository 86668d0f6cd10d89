package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of money movement
type TransactionType string

const (
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// Transaction represents a committed (or candidate) money movement.
// SourceAccount is always present; ReceiverAccount is set only for
// transfers. The persisted record carries the accounts as they stand
// AFTER the balance mutation.
type Transaction struct {
	ID              uuid.UUID
	Type            TransactionType
	SourceAccount   *Account
	ReceiverAccount *Account
	Amount          decimal.Decimal
	CreatedAt       time.Time
}

// Validate ensures the transaction adheres to domain rules.
// It checks shape only; balance sufficiency is the balance validation's job.
func (t *Transaction) Validate() error {
	if t.SourceAccount == nil {
		return fmt.Errorf("transaction must have a source account: %w", ErrInvalidInput)
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("transaction amount must be positive: %w", ErrInvalidInput)
	}

	switch t.Type {
	case TransactionTypeWithdraw:
		if t.ReceiverAccount != nil {
			return fmt.Errorf("withdrawal cannot have a receiver account: %w", ErrInvalidInput)
		}
	case TransactionTypeTransfer:
		if t.ReceiverAccount == nil {
			return fmt.Errorf("transfer must have a receiver account: %w", ErrInvalidInput)
		}
		if t.ReceiverAccount.Number == t.SourceAccount.Number {
			return fmt.Errorf("transfer source and receiver must be distinct: %w", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("transaction type must be WITHDRAW or TRANSFER: %w", ErrInvalidInput)
	}

	return nil
}
