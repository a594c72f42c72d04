package ledger

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/shared-ledger/internal/money"
)

// EventType is the persisted tag of an event variant.
type EventType string

const (
	EventTypePayment  EventType = "payment"
	EventTypePurchase EventType = "purchase"
)

// Event is one financial occurrence. Its transfers always sum to zero.
type Event struct {
	ID        uuid.UUID
	Date      time.Time
	Type      EventType
	Details   string
	CreatedAt time.Time
	Transfers []*Transfer
}

// Variant is either a Payment or a Purchase.
type Variant interface {
	isVariant()
}

// Payment is money handed from Payer to Payee.
type Payment struct {
	Payer       *Account
	Payee       *Account
	AmountCents int64
}

// Purchase is something bought by Purchaser and shared by every account.
type Purchase struct {
	Purchaser   *Account
	AmountCents int64
	Details     string
}

func (Payment) isVariant()  {}
func (Purchase) isVariant() {}

// Variant derives the typed view of the event from its transfers. The
// positive transfer belongs to the payer or the purchaser.
func (e *Event) Variant() (Variant, error) {
	switch e.Type {
	case EventTypePayment:
		var payment Payment
		for _, t := range e.Transfers {
			if t.AmountCents > 0 {
				payment.Payer = t.Account
				payment.AmountCents = t.AmountCents
			} else {
				payment.Payee = t.Account
			}
		}
		if payment.Payer == nil || payment.Payee == nil {
			return nil, fmt.Errorf("%w: payment %s needs a payer and a payee", ErrMalformedEvent, e.ID)
		}
		return payment, nil
	case EventTypePurchase:
		purchase := Purchase{Details: e.Details}
		for _, t := range e.Transfers {
			if t.AmountCents > 0 {
				purchase.Purchaser = t.Account
				purchase.AmountCents = t.AmountCents
			}
		}
		if purchase.Purchaser == nil {
			return nil, fmt.Errorf("%w: purchase %s has no purchaser", ErrMalformedEvent, e.ID)
		}
		return purchase, nil
	default:
		return nil, fmt.Errorf("%w: unknown event type %q", ErrMalformedEvent, e.Type)
	}
}

func (e *Event) payment(accessor string) (Payment, error) {
	v, err := e.Variant()
	if err != nil {
		return Payment{}, err
	}
	payment, ok := v.(Payment)
	if !ok {
		return Payment{}, fmt.Errorf("%w: %s called on %s event", ErrEventTypeMismatch, accessor, e.Type)
	}
	return payment, nil
}

func (e *Event) Payer() (*Account, error) {
	payment, err := e.payment("payer")
	if err != nil {
		return nil, err
	}
	return payment.Payer, nil
}

func (e *Event) Payee() (*Account, error) {
	payment, err := e.payment("payee")
	if err != nil {
		return nil, err
	}
	return payment.Payee, nil
}

func (e *Event) Purchaser() (*Account, error) {
	v, err := e.Variant()
	if err != nil {
		return nil, err
	}
	purchase, ok := v.(Purchase)
	if !ok {
		return nil, fmt.Errorf("%w: purchaser called on %s event", ErrEventTypeMismatch, e.Type)
	}
	return purchase.Purchaser, nil
}

// AmountCents is the headline amount of the event: what was paid or spent.
func (e *Event) AmountCents() int64 {
	var amount int64
	for _, t := range e.Transfers {
		if t.AmountCents > 0 {
			amount += t.AmountCents
		}
	}
	return amount
}

// SumCents is zero for every well formed event.
func (e *Event) SumCents() int64 {
	var sum int64
	for _, t := range e.Transfers {
		sum += t.AmountCents
	}
	return sum
}

// Description reads like "Alice paid £20.16 to Bob" or
// "Alice paid £20.16 for gas bill".
func (e *Event) Description(f money.Formatter) (string, error) {
	v, err := e.Variant()
	if err != nil {
		return "", err
	}
	switch v := v.(type) {
	case Payment:
		return fmt.Sprintf("%s paid %s to %s", v.Payer.Name, f.Format(v.AmountCents), v.Payee.Name), nil
	case Purchase:
		return fmt.Sprintf("%s paid %s for %s", v.Purchaser.Name, f.Format(v.AmountCents), v.Details), nil
	}
	return "", fmt.Errorf("%w: unknown variant %T", ErrMalformedEvent, v)
}
