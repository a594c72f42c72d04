package service

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

var ErrAccountNotFound = errors.New("account not found")

// Account is an account with its current balance.
type Account struct {
	ID           uuid.UUID
	Name         string
	CreatedAt    time.Time
	BalanceCents int64
	Balance      string
	Summary      string
}

// AccountDetail is an account together with its transfers in creation
// order.
type AccountDetail struct {
	Account
	Transfers []Transfer
}

// Transfer is one line of an account statement.
type Transfer struct {
	ID          uuid.UUID
	EventID     uuid.UUID
	Date        time.Time
	Description string
	AmountCents int64
	Amount      string
}
