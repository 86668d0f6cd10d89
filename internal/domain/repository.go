package domain

import "context"

// AccountRepository defines the interface for account persistence operations
type AccountRepository interface {
	// FindByNumber retrieves an account by its business number.
	// Returns ErrAccountNotFound when no account has that number.
	FindByNumber(ctx context.Context, number int64) (*Account, error)

	// FindByID retrieves an account by its surrogate id.
	// Returns ErrAccountNotFound when no account has that id.
	FindByID(ctx context.Context, id int64) (*Account, error)

	// FindAll retrieves all accounts
	FindAll(ctx context.Context) ([]*Account, error)

	// Save inserts the account when its ID is zero (assigning one) and
	// updates the existing record otherwise. Returns the stored account.
	Save(ctx context.Context, account *Account) (*Account, error)
}

// TransactionRepository defines the interface for transaction persistence operations
type TransactionRepository interface {
	// Save persists the transaction record together with the mutated
	// balances of its source (and, for transfers, receiver) account as a
	// single atomic unit. Either everything is committed or nothing is.
	Save(ctx context.Context, tx *Transaction) (*Transaction, error)
}
