package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmv/bankapi/internal/domain"
)

func TestAccountRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	saved, err := repo.Save(ctx, &domain.Account{
		Name:         "John Doe",
		Number:       12345,
		Balance:      decimal.NewFromInt(1000),
		SpecialLimit: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	byNumber, err := repo.FindByNumber(ctx, 12345)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", byNumber.Name)

	byID, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), byID.Number)
}

func TestAccountRepository_FindByNumber_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	_, err := repo.Save(ctx, &domain.Account{
		Name:    "John Doe",
		Number:  12345,
		Balance: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	first, err := repo.FindByNumber(ctx, 12345)
	require.NoError(t, err)
	second, err := repo.FindByNumber(ctx, 12345)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAccountRepository_FindMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	_, err := repo.FindByNumber(ctx, 99999)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountRepository_Save_CopiesNotAliases(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	saved, err := repo.Save(ctx, &domain.Account{
		Name:    "John Doe",
		Number:  12345,
		Balance: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	// Mutating the returned value must not reach the stored record.
	saved.Balance = decimal.NewFromInt(0)

	stored, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(stored.Balance))
}

func TestAccountRepository_Save_DuplicateNumber(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	_, err := repo.Save(ctx, &domain.Account{Name: "John Doe", Number: 12345})
	require.NoError(t, err)

	_, err = repo.Save(ctx, &domain.Account{Name: "Jane Doe", Number: 12345})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAccountRepository_FindAll_OrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	_, err := repo.Save(ctx, &domain.Account{Name: "Juca Silva", Number: 11111})
	require.NoError(t, err)
	_, err = repo.Save(ctx, &domain.Account{Name: "Ana Campos", Number: 12346})
	require.NoError(t, err)

	accounts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Juca Silva", accounts[0].Name)
	assert.Equal(t, "Ana Campos", accounts[1].Name)
}

func TestTransactionRepository_Save_CascadesBalances(t *testing.T) {
	ctx := context.Background()
	accounts := NewAccountRepository()
	transactions := NewTransactionRepository(accounts)

	source, err := accounts.Save(ctx, &domain.Account{
		Name:    "Power Guido",
		Number:  54321,
		Balance: decimal.NewFromInt(2000),
	})
	require.NoError(t, err)
	receiver, err := accounts.Save(ctx, &domain.Account{
		Name:    "John Smith",
		Number:  88888,
		Balance: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	// Simulates what the engine does after a successful validation.
	source.Balance = decimal.NewFromInt(1000)
	receiver.Balance = decimal.NewFromInt(1500)

	saved, err := transactions.Save(ctx, &domain.Transaction{
		ID:              uuid.New(),
		Type:            domain.TransactionTypeTransfer,
		SourceAccount:   source,
		ReceiverAccount: receiver,
		Amount:          decimal.NewFromInt(1000),
		CreatedAt:       time.Now(),
	})
	require.NoError(t, err)
	assert.NotNil(t, saved)

	storedSource, err := accounts.FindByNumber(ctx, 54321)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(storedSource.Balance))

	storedReceiver, err := accounts.FindByNumber(ctx, 88888)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1500).Equal(storedReceiver.Balance))
}

func TestTransactionRepository_Save_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	accounts := NewAccountRepository()
	transactions := NewTransactionRepository(accounts)

	_, err := transactions.Save(ctx, &domain.Transaction{
		ID:            uuid.New(),
		Type:          domain.TransactionTypeWithdraw,
		SourceAccount: &domain.Account{ID: 42, Name: "Ghost", Number: 1, Balance: decimal.Zero},
		Amount:        decimal.NewFromInt(10),
		CreatedAt:     time.Now(),
	})

	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
