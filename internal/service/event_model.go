package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/shared-ledger/internal/ledger"
)

// Event is a payment or purchase as shown to users.
type Event struct {
	ID          uuid.UUID
	Date        time.Time
	Type        ledger.EventType
	Details     string
	Description string
	AmountCents int64
	Amount      string
	CreatedAt   time.Time
}

// PaymentInput is the raw user input for a payment.
type PaymentInput struct {
	PayerID string
	PayeeID string
	Amount  string
	Date    string
}

// PurchaseInput is the raw user input for a purchase.
type PurchaseInput struct {
	PurchaserID string
	Amount      string
	Date        string
	Details     string
}

// EventCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type EventCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}
