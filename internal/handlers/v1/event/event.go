package event

import (
	"time"

	"github.com/carson-networks/shared-ledger/internal/ledger"
	"github.com/carson-networks/shared-ledger/internal/service"
)

// Event is the API response model for a payment or purchase.
type Event struct {
	ID          string `json:"id" doc:"Event UUID"`
	Date        string `json:"date" doc:"Event date, YYYY-MM-DD"`
	Type        string `json:"type" enum:"payment,purchase" doc:"Event type"`
	Details     string `json:"details,omitempty" doc:"What was bought, purchases only"`
	Description string `json:"description" doc:"e.g. 'Alice paid £20.16 to Bob'"`
	AmountCents int64  `json:"amountCents" doc:"Amount paid or spent in cents"`
	Amount      string `json:"amount" doc:"Formatted amount"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func toAPIEvent(e service.Event) Event {
	return Event{
		ID:          e.ID.String(),
		Date:        e.Date.Format(ledger.DateLayout),
		Type:        string(e.Type),
		Details:     e.Details,
		Description: e.Description,
		AmountCents: e.AmountCents,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
