package account

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is a minimal in-memory Repository for exercising the service
// without touching the store package.
type fakeRepo struct {
	accounts []Account
	saveErr  error
}

func (r *fakeRepo) All() ([]Account, error) {
	out := make([]Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func (r *fakeRepo) Save(accounts []Account) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.accounts = make([]Account, len(accounts))
	copy(r.accounts, accounts)
	return nil
}

func TestCreateGetRoundTrip(t *testing.T) {
	s := NewService(&fakeRepo{})

	created, err := s.Create("Alice")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, created.Id)
	assert.Equal(t, "Alice", created.OwnerName)
	assert.True(t, created.Balance.IsZero())

	got, err := s.Get(created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Id, got.Id)
	assert.Equal(t, "Alice", got.OwnerName)
	assert.True(t, got.Balance.IsZero())
}

func TestCreateUniqueIds(t *testing.T) {
	s := NewService(&fakeRepo{})

	a, err := s.Create("Alice")
	require.NoError(t, err)
	b, err := s.Create("Bob")
	require.NoError(t, err)
	assert.NotEqual(t, a.Id, b.Id)

	all, err := s.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateDuplicateId(t *testing.T) {
	s := NewService(&fakeRepo{})
	fixed := uuid.New()
	s.newId = func() uuid.UUID { return fixed }

	_, err := s.Create("Alice")
	require.NoError(t, err)

	_, err = s.Create("Bob")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestCreatePropagatesSaveError(t *testing.T) {
	boom := errors.New("disk full")
	s := NewService(&fakeRepo{saveErr: boom})

	_, err := s.Create("Alice")
	assert.ErrorIs(t, err, boom)
}

func TestGetUnknownAccount(t *testing.T) {
	s := NewService(&fakeRepo{})
	_, err := s.Get(uuid.New())
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestDeposit(t *testing.T) {
	s := NewService(&fakeRepo{})
	a, err := s.Create("Alice")
	require.NoError(t, err)

	newBalance, err := s.Deposit(a.Id, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, "100", newBalance.String())

	newBalance, err = s.Deposit(a.Id, decimal.RequireFromString("0.50"))
	require.NoError(t, err)
	assert.Equal(t, "100.5", newBalance.String())
}

func TestDepositRejectsNonPositiveAmounts(t *testing.T) {
	s := NewService(&fakeRepo{})
	a, err := s.Create("Alice")
	require.NoError(t, err)

	for _, amount := range []int64{0, -5} {
		_, err := s.Deposit(a.Id, decimal.NewFromInt(amount))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}

	balance, err := s.Balance(a.Id)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestWithdraw(t *testing.T) {
	s := NewService(&fakeRepo{})
	a, err := s.Create("Alice")
	require.NoError(t, err)
	_, err = s.Deposit(a.Id, decimal.NewFromInt(100))
	require.NoError(t, err)

	newBalance, err := s.Withdraw(a.Id, decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.Equal(t, "60", newBalance.String())
}

func TestWithdrawInsufficientFundsLeavesBalance(t *testing.T) {
	s := NewService(&fakeRepo{})
	a, err := s.Create("Alice")
	require.NoError(t, err)
	_, err = s.Deposit(a.Id, decimal.NewFromInt(100))
	require.NoError(t, err)

	_, err = s.Withdraw(a.Id, decimal.NewFromInt(150))
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	balance, err := s.Balance(a.Id)
	require.NoError(t, err)
	assert.Equal(t, "100", balance.String())
}

func TestWithdrawRejectsNonPositiveAmounts(t *testing.T) {
	s := NewService(&fakeRepo{})
	a, err := s.Create("Alice")
	require.NoError(t, err)

	for _, amount := range []int64{0, -1} {
		_, err := s.Withdraw(a.Id, decimal.NewFromInt(amount))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestBalanceReadIsIdempotent(t *testing.T) {
	s := NewService(&fakeRepo{})
	a, err := s.Create("Alice")
	require.NoError(t, err)
	_, err = s.Deposit(a.Id, decimal.NewFromInt(75))
	require.NoError(t, err)

	first, err := s.Balance(a.Id)
	require.NoError(t, err)
	second, err := s.Balance(a.Id)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}
