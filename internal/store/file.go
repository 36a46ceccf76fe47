package store

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger/account"
	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger/transaction"
)

// AccountFile stores accounts as one CSV record per line: id,owner_name,balance.
type AccountFile struct {
	path string
	log  *slog.Logger
}

func NewAccountFile(path string, logger *slog.Logger) *AccountFile {
	return &AccountFile{path: path, log: logger}
}

// All reads the entire file. A missing file is an empty record set, not an
// error. Blank or malformed lines are skipped with a warning.
func (s *AccountFile) All() ([]account.Account, error) {
	rows, err := readRows(s.path, "read accounts file", s.log)
	if err != nil {
		return nil, err
	}

	var accounts []account.Account
	for _, row := range rows {
		if len(row) != 3 {
			s.log.Warn("skipping malformed account record", "file", s.path, "fields", len(row))
			continue
		}
		id, err := uuid.Parse(row[0])
		if err != nil {
			s.log.Warn("skipping account record with bad id", "file", s.path, "id", row[0])
			continue
		}
		balance, err := decimal.NewFromString(row[2])
		if err != nil {
			s.log.Warn("skipping account record with bad balance", "file", s.path, "id", row[0])
			continue
		}
		accounts = append(accounts, account.Account{Id: id, OwnerName: row[1], Balance: balance})
	}
	return accounts, nil
}

// Save rewrites the whole file atomically: write to a temp file, then rename
// over the original so a failed write never corrupts existing data.
func (s *AccountFile) Save(accounts []account.Account) error {
	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileModeReadWrite)
	if err != nil {
		return fileErr("create accounts temp file", err)
	}

	w := csv.NewWriter(f)
	for _, a := range accounts {
		if err := w.Write([]string{a.Id.String(), a.OwnerName, a.Balance.String()}); err != nil {
			f.Close()
			os.Remove(tmp)
			return fileErr("write accounts file", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fileErr("write accounts file", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fileErr("close accounts file", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fileErr("replace accounts file", err)
	}
	return nil
}

// TransactionFile stores audit records as one CSV record per line:
// account_id,kind,amount,resulting_balance,timestamp.
type TransactionFile struct {
	path string
	log  *slog.Logger
}

func NewTransactionFile(path string, logger *slog.Logger) *TransactionFile {
	return &TransactionFile{path: path, log: logger}
}

// Append writes a single record at the end of the file, creating it on first
// use. Existing records are never touched.
func (s *TransactionFile) Append(rec transaction.Record) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileModeReadWrite)
	if err != nil {
		return fileErr("open transactions file", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		rec.AccountId.String(),
		string(rec.Kind),
		rec.Amount.String(),
		rec.ResultingBalance.String(),
		rec.Timestamp.Format(transaction.TimestampLayout),
	}); err != nil {
		return fileErr("append transactions file", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fileErr("append transactions file", err)
	}
	return nil
}

func (s *TransactionFile) All() ([]transaction.Record, error) {
	rows, err := readRows(s.path, "read transactions file", s.log)
	if err != nil {
		return nil, err
	}

	var records []transaction.Record
	for _, row := range rows {
		if len(row) != 5 {
			s.log.Warn("skipping malformed transaction record", "file", s.path, "fields", len(row))
			continue
		}
		rec, ok := parseTransaction(row)
		if !ok {
			s.log.Warn("skipping unparsable transaction record", "file", s.path, "account_id", row[0])
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseTransaction(row []string) (transaction.Record, bool) {
	id, err := uuid.Parse(row[0])
	if err != nil {
		return transaction.Record{}, false
	}
	kind := transaction.Kind(row[1])
	if kind != transaction.Deposit && kind != transaction.Withdraw {
		return transaction.Record{}, false
	}
	amount, err := decimal.NewFromString(row[2])
	if err != nil {
		return transaction.Record{}, false
	}
	resulting, err := decimal.NewFromString(row[3])
	if err != nil {
		return transaction.Record{}, false
	}
	ts, err := time.ParseInLocation(transaction.TimestampLayout, row[4], time.Local)
	if err != nil {
		return transaction.Record{}, false
	}
	return transaction.Record{
		AccountId:        id,
		Kind:             kind,
		Amount:           amount,
		ResultingBalance: resulting,
		Timestamp:        ts,
	}, true
}

func readRows(path, op string, logger *slog.Logger) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fileErr(op, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		// A line the CSV parser cannot make sense of is a corrupt record,
		// not an I/O failure; skip it and keep the rest of the file readable
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			logger.Warn("skipping unreadable record", "file", path, "line", parseErr.Line)
			continue
		}
		if err != nil {
			return nil, fileErr(op, err)
		}
		rows = append(rows, row)
	}
}
