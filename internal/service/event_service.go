package service

import (
	"context"
	"fmt"
	"time"

	"github.com/carson-networks/shared-ledger/internal/ledger"
	"github.com/carson-networks/shared-ledger/internal/money"
	"github.com/carson-networks/shared-ledger/internal/operator/actions"
	"github.com/carson-networks/shared-ledger/internal/storage"
	"github.com/carson-networks/shared-ledger/internal/storage/event"
)

const defaultEventLimit = 50

// EventService handles payment and purchase business logic.
type EventService struct {
	storage   *storage.Storage
	processor Processor
	formatter money.Formatter
	splitter  *ledger.Splitter
}

// NewEventService creates a new EventService.
func NewEventService(store *storage.Storage, processor Processor, formatter money.Formatter, splitter *ledger.Splitter) *EventService {
	return &EventService{
		storage:   store,
		processor: processor,
		formatter: formatter,
		splitter:  splitter,
	}
}

// CreatePayment records a payment. Bad input is a *ledger.InvalidInputError.
func (s *EventService) CreatePayment(ctx context.Context, input PaymentInput) (*Event, error) {
	action := &actions.CreatePayment{
		Request: ledger.PaymentRequest{
			PayerID: input.PayerID,
			PayeeID: input.PayeeID,
			Amount:  input.Amount,
			Date:    input.Date,
		},
		Splitter: s.splitter,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return s.created(action.Event)
}

// CreatePurchase records a purchase shared by every account. Bad input is a
// *ledger.InvalidInputError.
func (s *EventService) CreatePurchase(ctx context.Context, input PurchaseInput) (*Event, error) {
	action := &actions.CreatePurchase{
		Request: ledger.PurchaseRequest{
			PurchaserID: input.PurchaserID,
			Amount:      input.Amount,
			Date:        input.Date,
			Details:     input.Details,
		},
		Splitter: s.splitter,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return s.created(action.Event)
}

func (s *EventService) created(e *ledger.Event) (*Event, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: no event was recorded", ledger.ErrMalformedEvent)
	}
	result, err := toEvent(e, s.formatter)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListEvents returns a page of events ordered by date using cursor-based
// pagination.
func (s *EventService) ListEvents(ctx context.Context, cursor *EventCursor) ([]Event, *EventCursor, error) {
	limit := defaultEventLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	requestTime := time.Now()
	rows, err := s.storage.Events.List(ctx, &event.EventFilter{
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("list events: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *EventCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := requestTime
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &EventCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	_, events, err := loadBook(ctx, s.storage, rows)
	if err != nil {
		return nil, nil, err
	}

	result := make([]Event, len(events))
	for i, e := range events {
		result[i], err = toEvent(e, s.formatter)
		if err != nil {
			return nil, nil, fmt.Errorf("describe event %s: %w", e.ID, err)
		}
	}
	return result, nextCursor, nil
}
