package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/shared-ledger/internal/money"
)

// AccountRepository resolves the accounts an event is built against.
type AccountRepository interface {
	// FindAccount returns nil, nil when no account has the id.
	FindAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
}

// EventRecorder persists an event together with all of its transfers as a
// single unit.
type EventRecorder interface {
	RecordEvent(ctx context.Context, event *Event) error
}

// PaymentRequest is the raw user input for a payment.
type PaymentRequest struct {
	PayerID string
	PayeeID string
	Amount  string
	Date    string
}

// PurchaseRequest is the raw user input for a purchase.
type PurchaseRequest struct {
	PurchaserID string
	Amount      string
	Date        string
	Details     string
}

// Builder validates event requests and turns them into balanced transfer
// sets.
type Builder struct {
	accounts AccountRepository
	recorder EventRecorder
	splitter *Splitter
	now      func() time.Time
}

func NewBuilder(accounts AccountRepository, recorder EventRecorder, splitter *Splitter) *Builder {
	if splitter == nil {
		splitter = DefaultSplitter()
	}
	return &Builder{
		accounts: accounts,
		recorder: recorder,
		splitter: splitter,
		now:      time.Now,
	}
}

// CreatePayment records the payer handing amount to the payee. The payer
// receives +amount and the payee -amount.
func (b *Builder) CreatePayment(ctx context.Context, req PaymentRequest) (*Event, error) {
	payer, err := b.findAccount(ctx, req.PayerID)
	if err != nil {
		return nil, err
	}
	payee, err := b.findAccount(ctx, req.PayeeID)
	if err != nil {
		return nil, err
	}
	if payer.ID == payee.ID {
		return nil, invalidInput(MsgPayerPayeeSame)
	}
	amount, err := parsePositiveAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, err
	}

	event, err := b.newEvent(EventTypePayment, date, "")
	if err != nil {
		return nil, err
	}
	if err := addTransfer(event, payer, amount); err != nil {
		return nil, err
	}
	if err := addTransfer(event, payee, -amount); err != nil {
		return nil, err
	}

	return b.record(ctx, event)
}

// CreatePurchase records a purchase shared equally by every account,
// including the purchaser. Each account receives -share and the purchaser
// additionally receives +amount.
func (b *Builder) CreatePurchase(ctx context.Context, req PurchaseRequest) (*Event, error) {
	purchaser, err := b.findAccount(ctx, req.PurchaserID)
	if err != nil {
		return nil, err
	}
	amount, err := parsePositiveAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, err
	}
	details := strings.TrimSpace(req.Details)
	if details == "" {
		return nil, invalidInput(MsgDetailsMissing)
	}

	everyone, err := b.accounts.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	shares, err := b.splitter.Split(amount, len(everyone))
	if err != nil {
		return nil, err
	}

	event, err := b.newEvent(EventTypePurchase, date, details)
	if err != nil {
		return nil, err
	}
	if err := addTransfer(event, purchaser, amount); err != nil {
		return nil, err
	}
	for i, account := range everyone {
		if err := addTransfer(event, account, -shares[i]); err != nil {
			return nil, err
		}
	}

	return b.record(ctx, event)
}

func (b *Builder) findAccount(ctx context.Context, rawID string) (*Account, error) {
	id, err := uuid.FromString(rawID)
	if err != nil {
		return nil, accountNotFound(rawID)
	}
	account, err := b.accounts.FindAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find account %s: %w", id, err)
	}
	if account == nil {
		return nil, accountNotFound(rawID)
	}
	return account, nil
}

func (b *Builder) newEvent(eventType EventType, date time.Time, details string) (*Event, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &Event{
		ID:        id,
		Date:      date,
		Type:      eventType,
		Details:   details,
		CreatedAt: b.now(),
	}, nil
}

func (b *Builder) record(ctx context.Context, event *Event) (*Event, error) {
	if sum := event.SumCents(); sum != 0 {
		return nil, fmt.Errorf("%w: event %s sums to %d", ErrUnbalancedEvent, event.ID, sum)
	}
	if err := b.recorder.RecordEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("record event: %w", err)
	}
	return event, nil
}

func addTransfer(event *Event, account *Account, amountCents int64) error {
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	event.Transfers = append(event.Transfers, &Transfer{
		ID:          id,
		Account:     account,
		Event:       event,
		AmountCents: amountCents,
	})
	return nil
}

func parsePositiveAmount(text string) (int64, error) {
	amount, err := money.ParseAmount(text)
	if err != nil {
		return 0, invalidInput(MsgAmountUnparsable)
	}
	if amount <= 0 {
		return 0, invalidInput(MsgAmountNotPos)
	}
	return amount, nil
}

func parseEventDate(text string) (time.Time, error) {
	date, err := ParseDate(text)
	if err != nil {
		return time.Time{}, invalidInput(MsgDateUnparsable)
	}
	return date, nil
}
