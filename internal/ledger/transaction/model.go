package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	Deposit  Kind = "DEPOSIT"
	Withdraw Kind = "WITHDRAW"
)

// TimestampLayout is the wire format used in the transactions file.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one immutable audit entry. File append order is the only
// ordering that matters.
type Record struct {
	AccountId        uuid.UUID       `json:"account_id"`
	Kind             Kind            `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`
	ResultingBalance decimal.Decimal `json:"resulting_balance"`
	Timestamp        time.Time       `json:"timestamp"`
}

// Repository is the persistence boundary for the audit trail. Append never
// rewrites existing records.
type Repository interface {
	Append(rec Record) error
	All() ([]Record, error)
}
