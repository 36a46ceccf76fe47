package account

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service implements account operations on top of a Repository. Every
// mutation follows read-all -> modify -> save-all, which the flat-file
// repository turns into a whole-file rewrite.
type Service struct {
	repo  Repository
	newId func() uuid.UUID
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, newId: uuid.New}
}

// Create generates a unique id and persists a new account with zero balance.
func (s *Service) Create(ownerName string) (Account, error) {
	accounts, err := s.repo.All()
	if err != nil {
		return Account{}, err
	}

	// Generated ids should never collide, but the invariant is checked anyway
	id := s.newId()
	for _, a := range accounts {
		if a.Id == id {
			return Account{}, ErrDuplicateAccount
		}
	}

	created := Account{Id: id, OwnerName: ownerName, Balance: decimal.Zero}
	accounts = append(accounts, created)
	if err := s.repo.Save(accounts); err != nil {
		return Account{}, err
	}
	return created, nil
}

// Get scans the full record set for a matching id.
func (s *Service) Get(id uuid.UUID) (Account, error) {
	accounts, err := s.repo.All()
	if err != nil {
		return Account{}, err
	}
	for _, a := range accounts {
		if a.Id == id {
			return a, nil
		}
	}
	return Account{}, ErrAccountNotFound
}

func (s *Service) List() ([]Account, error) {
	return s.repo.All()
}

// Deposit adds amount to the account balance and returns the new balance.
func (s *Service) Deposit(id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.update(id, amount, func(balance, amt decimal.Decimal) (decimal.Decimal, error) {
		return balance.Add(amt), nil
	})
}

// Withdraw subtracts amount from the account balance. The balance is left
// untouched when funds do not cover the amount.
func (s *Service) Withdraw(id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.update(id, amount, func(balance, amt decimal.Decimal) (decimal.Decimal, error) {
		if amt.GreaterThan(balance) {
			return decimal.Decimal{}, ErrInsufficientFunds
		}
		return balance.Sub(amt), nil
	})
}

func (s *Service) Balance(id uuid.UUID) (decimal.Decimal, error) {
	a, err := s.Get(id)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return a.Balance, nil
}

func (s *Service) update(id uuid.UUID, amount decimal.Decimal, apply func(balance, amount decimal.Decimal) (decimal.Decimal, error)) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	accounts, err := s.repo.All()
	if err != nil {
		return decimal.Decimal{}, err
	}
	for i, a := range accounts {
		if a.Id != id {
			continue
		}
		newBalance, err := apply(a.Balance, amount)
		if err != nil {
			return decimal.Decimal{}, err
		}
		accounts[i].Balance = newBalance
		if err := s.repo.Save(accounts); err != nil {
			return decimal.Decimal{}, err
		}
		return newBalance, nil
	}
	return decimal.Decimal{}, ErrAccountNotFound
}
