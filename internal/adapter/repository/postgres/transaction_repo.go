package postgres

import (
	"context"
	"fmt"

	"github.com/lucasmv/bankapi/internal/domain"
)

// transactionRepository implements domain.TransactionRepository
type transactionRepository struct {
	db *DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *DB) domain.TransactionRepository {
	return &transactionRepository{db: db}
}

// Save persists the transaction record and the mutated account balances
// in one database transaction, so either all writes commit or none do.
func (r *transactionRepository) Save(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	updateBalanceQuery := `
		UPDATE accounts SET balance = $1 WHERE id = $2
	`

	res, err := dbTx.ExecContext(ctx, updateBalanceQuery,
		tx.SourceAccount.Balance.String(),
		tx.SourceAccount.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update source account balance: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, fmt.Errorf("source account id %d: %w", tx.SourceAccount.ID, domain.ErrAccountNotFound)
	}

	var receiverID interface{}
	if tx.ReceiverAccount != nil {
		res, err = dbTx.ExecContext(ctx, updateBalanceQuery,
			tx.ReceiverAccount.Balance.String(),
			tx.ReceiverAccount.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update receiver account balance: %w", err)
		}
		if rows, err := res.RowsAffected(); err == nil && rows == 0 {
			return nil, fmt.Errorf("receiver account id %d: %w", tx.ReceiverAccount.ID, domain.ErrAccountNotFound)
		}
		receiverID = tx.ReceiverAccount.ID
	}

	insertTxQuery := `
		INSERT INTO transactions (id, type, source_account_id, receiver_account_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = dbTx.ExecContext(ctx, insertTxQuery,
		tx.ID,
		string(tx.Type),
		tx.SourceAccount.ID,
		receiverID,
		tx.Amount.String(),
		tx.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return tx, nil
}
