package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lucasmv/bankapi/internal/domain"
)

// TransactionRepository is an in-memory implementation of
// domain.TransactionRepository. Saving a transaction writes the mutated
// account balances back into the account repository under its lock, so a
// record and its balance updates land together.
type TransactionRepository struct {
	accounts *AccountRepository
	byID     map[uuid.UUID]*domain.Transaction
}

// NewTransactionRepository creates a transaction repository cascading
// account updates into the given account repository.
func NewTransactionRepository(accounts *AccountRepository) *TransactionRepository {
	return &TransactionRepository{
		accounts: accounts,
		byID:     make(map[uuid.UUID]*domain.Transaction),
	}
}

// Save persists the transaction record and the updated balances of the
// accounts it references.
func (r *TransactionRepository) Save(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	r.accounts.mu.Lock()
	defer r.accounts.mu.Unlock()

	// All referenced accounts must exist before anything is applied, so a
	// failure cannot leave one of them updated and the other not.
	if _, ok := r.accounts.byID[tx.SourceAccount.ID]; !ok {
		return nil, fmt.Errorf("source account id %d: %w", tx.SourceAccount.ID, domain.ErrAccountNotFound)
	}
	if tx.ReceiverAccount != nil {
		if _, ok := r.accounts.byID[tx.ReceiverAccount.ID]; !ok {
			return nil, fmt.Errorf("receiver account id %d: %w", tx.ReceiverAccount.ID, domain.ErrAccountNotFound)
		}
	}

	if _, err := r.accounts.saveLocked(tx.SourceAccount); err != nil {
		return nil, fmt.Errorf("save source account: %w", err)
	}

	if tx.ReceiverAccount != nil {
		if _, err := r.accounts.saveLocked(tx.ReceiverAccount); err != nil {
			return nil, fmt.Errorf("save receiver account: %w", err)
		}
	}

	cp := *tx
	sourceCp := *tx.SourceAccount
	cp.SourceAccount = &sourceCp
	if tx.ReceiverAccount != nil {
		receiverCp := *tx.ReceiverAccount
		cp.ReceiverAccount = &receiverCp
	}
	r.byID[cp.ID] = &cp

	return tx, nil
}
