package event

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/shared-ledger/internal/handlers/apierr"
	"github.com/carson-networks/shared-ledger/internal/logging"
	"github.com/carson-networks/shared-ledger/internal/service"
)

// ListEventsInput is the Huma input for listing events. Paging parameters
// come from the nextCursor of a previous response.
type ListEventsInput struct {
	Position        int    `query:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit           int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size, default 50"`
	MaxCreationTime string `query:"maxCreationTime" doc:"Upper bound on createdAt locked in from the first page"`
}

// ListEventsCursor represents a pagination cursor in response bodies.
type ListEventsCursor struct {
	Position        int    `json:"position" doc:"Numeric offset position for the next page"`
	Limit           int    `json:"limit" doc:"Page size used for this cursor"`
	MaxCreationTime string `json:"maxCreationTime" doc:"Upper bound on createdAt locked in from the first page"`
}

// ListEventsResponseBody is the response body for listing events.
type ListEventsResponseBody struct {
	Events     []Event           `json:"events" doc:"Page of events ordered by date"`
	NextCursor *ListEventsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListEventsOutput is the Huma output for listing events.
type ListEventsOutput struct {
	Body ListEventsResponseBody
}

// eventLister is the interface for listing events.
type eventLister interface {
	ListEvents(ctx context.Context, cursor *service.EventCursor) ([]service.Event, *service.EventCursor, error)
}

// ListEventsHandler handles GET /v1/events.
type ListEventsHandler struct {
	EventService eventLister
}

// NewListEventsHandler creates a new ListEventsHandler.
func NewListEventsHandler(svc eventLister) *ListEventsHandler {
	return &ListEventsHandler{EventService: svc}
}

// Register registers the list events endpoint with the Huma API.
func (h *ListEventsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-events",
		Method:      http.MethodGet,
		Path:        "/v1/events",
		Summary:     "List events",
		Description: "Returns a paginated list of payments and purchases with descriptions.",
		Tags:        []string{"Events"},
	}, h.handle)
}

// parseListEventsInput builds the service cursor. Without maxCreationTime
// this is a first page request.
func parseListEventsInput(input *ListEventsInput) (*service.EventCursor, error) {
	if input.MaxCreationTime == "" {
		if input.Position == 0 && input.Limit == 0 {
			return nil, nil
		}
		return &service.EventCursor{
			Position:        input.Position,
			Limit:           input.Limit,
			MaxCreationTime: time.Now(),
		}, nil
	}

	maxCreationTime, err := time.Parse(time.RFC3339Nano, input.MaxCreationTime)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid maxCreationTime", err)
	}

	return &service.EventCursor{
		Position:        input.Position,
		Limit:           input.Limit,
		MaxCreationTime: maxCreationTime,
	}, nil
}

func (h *ListEventsHandler) handle(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	logData := logging.GetLogData(ctx)
	requestCursor, err := parseListEventsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listEventsMs")
	}
	events, nextCursor, err := h.EventService.ListEvents(ctx, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.From(err, "failed to list events")
	}

	if logData != nil {
		logData.AddData("eventCount", len(events))
	}

	resp := ListEventsResponseBody{
		Events: make([]Event, len(events)),
	}
	for i, e := range events {
		resp.Events[i] = toAPIEvent(e)
	}

	if nextCursor != nil {
		resp.NextCursor = &ListEventsCursor{
			Position:        nextCursor.Position,
			Limit:           nextCursor.Limit,
			MaxCreationTime: nextCursor.MaxCreationTime.Format(time.RFC3339Nano),
		}
	}

	return &ListEventsOutput{Body: resp}, nil
}
