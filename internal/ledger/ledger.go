// Package ledger ties the account store and the transaction log together.
// Balance mutations go through the account service first; the audit record is
// appended only after the mutation has been persisted.
package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger/account"
	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger/transaction"
)

type Ledger struct {
	accounts     *account.Service
	transactions *transaction.Log
}

func New(accounts *account.Service, transactions *transaction.Log) *Ledger {
	return &Ledger{accounts: accounts, transactions: transactions}
}

func (l *Ledger) CreateAccount(ownerName string) (account.Account, error) {
	return l.accounts.Create(ownerName)
}

func (l *Ledger) GetAccount(id uuid.UUID) (account.Account, error) {
	return l.accounts.Get(id)
}

func (l *Ledger) ListAccounts() ([]account.Account, error) {
	return l.accounts.List()
}

func (l *Ledger) Balance(id uuid.UUID) (decimal.Decimal, error) {
	return l.accounts.Balance(id)
}

// Deposit credits the account and records the audit entry. A failed deposit
// leaves the log untouched.
func (l *Ledger) Deposit(id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	newBalance, err := l.accounts.Deposit(id, amount)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if err := l.transactions.Record(id, transaction.Deposit, amount, newBalance); err != nil {
		return decimal.Decimal{}, err
	}
	return newBalance, nil
}

// Withdraw debits the account and records the audit entry. A rejected
// withdrawal leaves both the balance and the log untouched.
func (l *Ledger) Withdraw(id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	newBalance, err := l.accounts.Withdraw(id, amount)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if err := l.transactions.Record(id, transaction.Withdraw, amount, newBalance); err != nil {
		return decimal.Decimal{}, err
	}
	return newBalance, nil
}

func (l *Ledger) History(id uuid.UUID) ([]transaction.Record, error) {
	if _, err := l.accounts.Get(id); err != nil {
		return nil, err
	}
	return l.transactions.ListForAccount(id)
}
