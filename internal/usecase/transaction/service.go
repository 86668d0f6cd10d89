package transaction

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucasmv/bankapi/internal/domain"
)

// AccountValidation resolves an account number into a stored account,
// failing when the account does not exist.
type AccountValidation interface {
	Validate(ctx context.Context, number int64) (*domain.Account, error)
}

// BalanceValidation decides whether a candidate transaction is covered by
// the source account's available funds.
type BalanceValidation interface {
	Validate(tx *domain.Transaction) error
}

// Service orchestrates withdraw and transfer operations: it resolves the
// involved accounts, validates the candidate transaction, mutates the
// balances and persists the record.
//
// The mutex serializes whole operations so the balance check and the
// debit happen in one critical section; the repository then commits the
// balance writes and the record as a single unit.
type Service struct {
	mu sync.Mutex

	AccountValidation AccountValidation
	BalanceValidation BalanceValidation
	Transactions      domain.TransactionRepository
}

// NewService creates a new transaction Service instance
func NewService(
	accountValidation AccountValidation,
	balanceValidation BalanceValidation,
	transactions domain.TransactionRepository,
) *Service {
	return &Service{
		AccountValidation: accountValidation,
		BalanceValidation: balanceValidation,
		Transactions:      transactions,
	}
}

// Withdraw debits amount from the account holding sourceNumber and
// persists the resulting transaction.
// Logic:
//  1. Reject non-positive amounts before any resolution
//  2. Resolve the source account
//  3. Build the candidate WITHDRAW transaction and validate it
//  4. Check available funds against the pre-mutation balance
//  5. Debit the source and persist record plus balance atomically
func (s *Service) Withdraw(ctx context.Context, sourceNumber int64, amount decimal.Decimal) (*domain.Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	source, err := s.AccountValidation.Validate(ctx, sourceNumber)
	if err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		ID:            uuid.New(),
		Type:          domain.TransactionTypeWithdraw,
		SourceAccount: source,
		Amount:        amount,
		CreatedAt:     time.Now(),
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if err := s.BalanceValidation.Validate(tx); err != nil {
		return nil, err
	}

	source.Balance = source.Balance.Sub(amount)

	return s.Transactions.Save(ctx, tx)
}

// Transfer moves amount from the account holding sourceNumber to the one
// holding receiverNumber and persists the resulting transaction. Only the
// source account's funds are checked; the receiver is checked for
// existence alone.
func (s *Service) Transfer(ctx context.Context, sourceNumber, receiverNumber int64, amount decimal.Decimal) (*domain.Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	source, err := s.AccountValidation.Validate(ctx, sourceNumber)
	if err != nil {
		return nil, err
	}

	receiver, err := s.AccountValidation.Validate(ctx, receiverNumber)
	if err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		ID:              uuid.New(),
		Type:            domain.TransactionTypeTransfer,
		SourceAccount:   source,
		ReceiverAccount: receiver,
		Amount:          amount,
		CreatedAt:       time.Now(),
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if err := s.BalanceValidation.Validate(tx); err != nil {
		return nil, err
	}

	source.Balance = source.Balance.Sub(amount)
	receiver.Balance = receiver.Balance.Add(amount)

	return s.Transactions.Save(ctx, tx)
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("transaction amount must be positive: %w", domain.ErrInvalidInput)
	}
	return nil
}
