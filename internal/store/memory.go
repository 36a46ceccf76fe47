package store

import (
	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger/account"
	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger/transaction"
)

// AccountMemory keeps accounts in a slice. Used by tests in place of the
// file-backed store; business logic never sees the difference.
type AccountMemory struct {
	accounts []account.Account
}

func NewAccountMemory() *AccountMemory {
	return &AccountMemory{}
}

func (s *AccountMemory) All() ([]account.Account, error) {
	out := make([]account.Account, len(s.accounts))
	copy(out, s.accounts)
	return out, nil
}

func (s *AccountMemory) Save(accounts []account.Account) error {
	s.accounts = make([]account.Account, len(accounts))
	copy(s.accounts, accounts)
	return nil
}

// TransactionMemory keeps audit records in append order.
type TransactionMemory struct {
	records []transaction.Record
}

func NewTransactionMemory() *TransactionMemory {
	return &TransactionMemory{}
}

func (s *TransactionMemory) Append(rec transaction.Record) error {
	s.records = append(s.records, rec)
	return nil
}

func (s *TransactionMemory) All() ([]transaction.Record, error) {
	out := make([]transaction.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}
