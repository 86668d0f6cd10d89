package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/lucasmv/bankapi/internal/domain"
)

// AccountRepository is an in-memory implementation of
// domain.AccountRepository. Reads hand out copies so callers can never
// alias the stored records.
type AccountRepository struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.Account
}

// NewAccountRepository creates an empty in-memory account repository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{byID: make(map[int64]*domain.Account)}
}

// FindByNumber retrieves a copy of the account with the given number
func (r *AccountRepository) FindByNumber(ctx context.Context, number int64) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.byID {
		if account.Number == number {
			cp := *account
			return &cp, nil
		}
	}

	return nil, domain.ErrAccountNotFound
}

// FindByID retrieves a copy of the account with the given surrogate id
func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	cp := *account
	return &cp, nil
}

// FindAll retrieves copies of all accounts, ordered by id
func (r *AccountRepository) FindAll(ctx context.Context) ([]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := make([]*domain.Account, 0, len(r.byID))
	for _, account := range r.byID {
		cp := *account
		accounts = append(accounts, &cp)
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })

	return accounts, nil
}

// Save inserts the account when its ID is zero, assigning the next id,
// and replaces the stored record otherwise. The account number must stay
// unique across records.
func (r *AccountRepository) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saveLocked(account)
}

func (r *AccountRepository) saveLocked(account *domain.Account) (*domain.Account, error) {
	for _, other := range r.byID {
		if other.Number == account.Number && other.ID != account.ID {
			return nil, fmt.Errorf("account number %d already taken: %w", account.Number, domain.ErrInvalidInput)
		}
	}

	cp := *account
	if cp.ID == 0 {
		r.nextID++
		cp.ID = r.nextID
	} else if _, ok := r.byID[cp.ID]; !ok {
		return nil, domain.ErrAccountNotFound
	}

	r.byID[cp.ID] = &cp

	out := cp
	return &out, nil
}
