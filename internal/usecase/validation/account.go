package validation

import (
	"context"
	"errors"

	"github.com/lucasmv/bankapi/internal/domain"
)

// AccountResolver resolves account numbers referenced by a transaction
// request into stored accounts.
type AccountResolver struct {
	Accounts domain.AccountRepository
}

// NewAccountResolver creates a new AccountResolver instance
func NewAccountResolver(accounts domain.AccountRepository) *AccountResolver {
	return &AccountResolver{Accounts: accounts}
}

// Validate returns the account holding the given number, or an
// AccountNotFoundError naming the number when no such account exists.
// It performs no side effects.
func (r *AccountResolver) Validate(ctx context.Context, number int64) (*domain.Account, error) {
	account, err := r.Accounts.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.AccountNotFoundError{Number: number}
		}
		return nil, err
	}

	return account, nil
}
