package validation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lucasmv/bankapi/internal/domain"
)

// MockAccountRepository is a mock implementation of AccountRepository for testing
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByNumber(ctx context.Context, number int64) (*domain.Account, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAll(ctx context.Context) ([]*domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func TestAccountResolver_Validate_ExistingAccount(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAccountRepository)
	resolver := NewAccountResolver(mockRepo)

	stored := &domain.Account{
		ID:      1,
		Name:    "Ricardo Sobjak",
		Number:  12345,
		Balance: decimal.NewFromInt(1000),
	}
	mockRepo.On("FindByNumber", ctx, int64(12345)).Return(stored, nil)

	account, err := resolver.Validate(ctx, 12345)

	assert.NoError(t, err)
	assert.Equal(t, stored, account)
}

func TestAccountResolver_Validate_MissingAccount(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAccountRepository)
	resolver := NewAccountResolver(mockRepo)

	mockRepo.On("FindByNumber", ctx, int64(99999)).Return(nil, domain.ErrAccountNotFound)

	account, err := resolver.Validate(ctx, 99999)

	assert.Nil(t, account)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Equal(t, "Account 99999 does not exist", err.Error())
}
