package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Log appends audit records for successful deposits and withdrawals. Callers
// are expected to have validated the operation already; Record only stamps
// and stores.
type Log struct {
	repo Repository
	now  func() time.Time
}

func NewLog(repo Repository) *Log {
	return &Log{repo: repo, now: time.Now}
}

func (l *Log) Record(accountId uuid.UUID, kind Kind, amount, resultingBalance decimal.Decimal) error {
	return l.repo.Append(Record{
		AccountId:        accountId,
		Kind:             kind,
		Amount:           amount,
		ResultingBalance: resultingBalance,
		Timestamp:        l.now(),
	})
}

// ListForAccount returns the account's records in file order, oldest first.
// The backing file is re-read on every call.
func (l *Log) ListForAccount(accountId uuid.UUID) ([]Record, error) {
	all, err := l.repo.All()
	if err != nil {
		return nil, err
	}
	var records []Record
	for _, rec := range all {
		if rec.AccountId == accountId {
			records = append(records, rec)
		}
	}
	return records, nil
}
