package account

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Account struct {
	Id        uuid.UUID       `json:"id"`
	OwnerName string          `json:"owner_name"`
	Balance   decimal.Decimal `json:"balance"`
}

// Repository is the persistence boundary for accounts. The flat-file store
// reads and rewrites the whole record set on every call; the in-memory store
// backs tests without touching disk.
type Repository interface {
	All() ([]Account, error)
	Save(accounts []Account) error
}
