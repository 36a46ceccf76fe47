package account

import "errors"

var (
	ErrDuplicateAccount  = errors.New("account id already exists")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidAmount     = errors.New("amount must be greater than 0")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
