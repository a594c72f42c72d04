package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Transfer is one signed cent amount applied to one account by one event.
type Transfer struct {
	ID          uuid.UUID
	Account     *Account
	Event       *Event
	AmountCents int64
}

// Date is the date of the owning event.
func (t *Transfer) Date() time.Time {
	if t.Event == nil {
		return time.Time{}
	}
	return t.Event.Date
}

// Description tells the owning account what the transfer was for.
func (t *Transfer) Description() (string, error) {
	if t.Event == nil {
		return "", errors.New("transfer has no event")
	}

	v, err := t.Event.Variant()
	if err != nil {
		return "", err
	}
	switch v := v.(type) {
	case Payment:
		if t.AmountCents > 0 {
			return "Payment to " + v.Payee.Name, nil
		}
		return "Payment from " + v.Payer.Name, nil
	case Purchase:
		if t.AmountCents > 0 {
			return "Payment for " + v.Details, nil
		}
		return "Share of " + v.Details, nil
	}
	return "", fmt.Errorf("%w: unknown variant %T", ErrMalformedEvent, v)
}
