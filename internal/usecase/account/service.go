package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lucasmv/bankapi/internal/domain"
)

// AccountInput represents the caller-supplied fields for creating or
// updating an account.
type AccountInput struct {
	Name         string
	Number       int64
	Balance      decimal.Decimal
	SpecialLimit decimal.Decimal
}

// Service handles account lookup and maintenance operations
type Service struct {
	Accounts domain.AccountRepository
}

// NewService creates a new account Service instance
func NewService(accounts domain.AccountRepository) *Service {
	return &Service{Accounts: accounts}
}

// GetAll returns every stored account
func (s *Service) GetAll(ctx context.Context) ([]*domain.Account, error) {
	return s.Accounts.FindAll(ctx)
}

// GetByNumber returns the account holding the given business number.
// Returns an AccountNotFoundError when no account matches.
func (s *Service) GetByNumber(ctx context.Context, number int64) (*domain.Account, error) {
	account, err := s.Accounts.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.AccountNotFoundError{Number: number}
		}
		return nil, err
	}

	return account, nil
}

// Save creates a new account from the input. The store assigns the
// surrogate id.
func (s *Service) Save(ctx context.Context, input AccountInput) (*domain.Account, error) {
	account := &domain.Account{
		Name:         input.Name,
		Number:       input.Number,
		Balance:      input.Balance,
		SpecialLimit: input.SpecialLimit,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return s.Accounts.Save(ctx, account)
}

// Update replaces name, number, balance and special limit on the account
// identified by id. A missing id fails before the store's save is invoked.
func (s *Service) Update(ctx context.Context, id int64, input AccountInput) (*domain.Account, error) {
	existing, err := s.Accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, fmt.Errorf("account id %d: %w", id, domain.ErrAccountNotFound)
		}
		return nil, err
	}

	existing.Name = input.Name
	existing.Number = input.Number
	existing.Balance = input.Balance
	existing.SpecialLimit = input.SpecialLimit

	if err := existing.Validate(); err != nil {
		return nil, err
	}

	return s.Accounts.Save(ctx, existing)
}
