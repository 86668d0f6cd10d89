package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lucasmv/bankapi/internal/domain"
)

// accountRepository implements domain.AccountRepository
type accountRepository struct {
	db *DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

// FindByNumber retrieves an account by its business number
func (r *accountRepository) FindByNumber(ctx context.Context, number int64) (*domain.Account, error) {
	query := `
		SELECT id, name, number, balance, special_limit
		FROM accounts
		WHERE number = $1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, number))
}

// FindByID retrieves an account by its surrogate id
func (r *accountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
		SELECT id, name, number, balance, special_limit
		FROM accounts
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// FindAll retrieves all accounts ordered by id
func (r *accountRepository) FindAll(ctx context.Context) ([]*domain.Account, error) {
	query := `
		SELECT id, name, number, balance, special_limit
		FROM accounts
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows.Scan)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

// Save inserts the account when its ID is zero and updates the existing
// record otherwise.
func (r *accountRepository) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if account.ID == 0 {
		query := `
			INSERT INTO accounts (name, number, balance, special_limit)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`

		err := r.db.QueryRowContext(ctx, query,
			account.Name,
			account.Number,
			account.Balance.String(),
			account.SpecialLimit.String(),
		).Scan(&account.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert account: %w", err)
		}

		return account, nil
	}

	query := `
		UPDATE accounts
		SET name = $1, number = $2, balance = $3, special_limit = $4
		WHERE id = $5
	`

	res, err := r.db.ExecContext(ctx, query,
		account.Name,
		account.Number,
		account.Balance.String(),
		account.SpecialLimit.String(),
		account.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, fmt.Errorf("account id %d: %w", account.ID, domain.ErrAccountNotFound)
	}

	return account, nil
}

func (r *accountRepository) scanOne(row *sql.Row) (*domain.Account, error) {
	account, err := scanAccount(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func scanAccount(scan func(dest ...any) error) (*domain.Account, error) {
	var account domain.Account
	var balanceStr, limitStr string

	if err := scan(
		&account.ID,
		&account.Name,
		&account.Number,
		&balanceStr,
		&limitStr,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance: %w", err)
	}
	account.Balance = balance

	limit, err := decimal.NewFromString(limitStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse special_limit: %w", err)
	}
	account.SpecialLimit = limit

	return &account, nil
}
