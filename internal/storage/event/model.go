package event

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
)

var ErrNotFound = errors.New("event not found")

// Event represents an event record. Details is null for payments.
type Event struct {
	ID        uuid.UUID        `db:"id"`
	Date      time.Time        `db:"date"`
	EventType string           `db:"event_type"`
	Details   null.Val[string] `db:"details"`
	CreatedAt time.Time        `db:"created_at"`
}

// EventCreate is the input for creating a new event. CreatedAt is stored
// as given so the row matches the event the caller built.
type EventCreate struct {
	ID        uuid.UUID
	Date      time.Time
	EventType string
	Details   null.Val[string]
	CreatedAt time.Time
}

// EventFilter specifies filters for listing events. Nil IDs means all
// events. MaxCreationTime hides events created after a listing began.
type EventFilter struct {
	IDs             []uuid.UUID
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// IEventReader defines the read-only event storage operations.
type IEventReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Event, error)
	List(ctx context.Context, filter *EventFilter) ([]*Event, error)
}

var eventColumns = []any{"id", "date", "event_type", "details", "created_at"}
