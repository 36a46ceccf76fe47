// Package store persists ledger state to flat files. Each record set lives in
// its own file: accounts are rewritten whole on every mutation, transactions
// are append-only. In-memory variants back tests.
package store

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger/account"
	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger/transaction"
)

// ErrFileAccess marks I/O failures on either backing file. It is the only
// error the menu loop treats as fatal.
var ErrFileAccess = errors.New("file access error")

const fileModeReadWrite fs.FileMode = 0644

// Compile-time checks that both backends satisfy the repository interfaces.
var (
	_ account.Repository     = (*AccountFile)(nil)
	_ account.Repository     = (*AccountMemory)(nil)
	_ transaction.Repository = (*TransactionFile)(nil)
	_ transaction.Repository = (*TransactionMemory)(nil)
)

func fileErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrFileAccess, op, err)
}
