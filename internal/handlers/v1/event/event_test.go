package event

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/shared-ledger/internal/ledger"
	"github.com/carson-networks/shared-ledger/internal/service"
)

type mockEventService struct {
	mock.Mock
}

func (m *mockEventService) CreatePayment(ctx context.Context, input service.PaymentInput) (*service.Event, error) {
	args := m.Called(ctx, input)
	e, _ := args.Get(0).(*service.Event)
	return e, args.Error(1)
}

func (m *mockEventService) CreatePurchase(ctx context.Context, input service.PurchaseInput) (*service.Event, error) {
	args := m.Called(ctx, input)
	e, _ := args.Get(0).(*service.Event)
	return e, args.Error(1)
}

func (m *mockEventService) ListEvents(ctx context.Context, cursor *service.EventCursor) ([]service.Event, *service.EventCursor, error) {
	args := m.Called(ctx, cursor)
	events, _ := args.Get(0).([]service.Event)
	next, _ := args.Get(1).(*service.EventCursor)
	return events, next, args.Error(2)
}

func newTestAPI(t *testing.T, svc *mockEventService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreatePaymentHandler(svc).Register(api)
	NewCreatePurchaseHandler(svc).Register(api)
	NewListEventsHandler(svc).Register(api)
	return api
}

func samplePayment() *service.Event {
	return &service.Event{
		ID:          uuid.Must(uuid.NewV4()),
		Date:        time.Date(2016, 3, 4, 0, 0, 0, 0, time.UTC),
		Type:        ledger.EventTypePayment,
		Description: "Alice paid £20.16 to Bob",
		AmountCents: 2016,
		Amount:      "£20.16",
		CreatedAt:   time.Date(2016, 3, 4, 12, 0, 0, 0, time.UTC),
	}
}

// -- POST /v1/payment --

func TestHTTP_CreatePayment_Success(t *testing.T) {
	created := samplePayment()
	svc := new(mockEventService)
	svc.On("CreatePayment", mock.Anything, service.PaymentInput{
		PayerID: "payer",
		PayeeID: "payee",
		Amount:  "20.16",
		Date:    "2016-03-04",
	}).Return(created, nil)

	resp := newTestAPI(t, svc).Post("/v1/payment", CreatePaymentBody{
		PayerID: "payer",
		PayeeID: "payee",
		Amount:  "20.16",
		Date:    "2016-03-04",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Event
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Event{
		ID:          created.ID.String(),
		Date:        "2016-03-04",
		Type:        "payment",
		Description: "Alice paid £20.16 to Bob",
		AmountCents: 2016,
		Amount:      "£20.16",
		CreatedAt:   "2016-03-04T12:00:00Z",
	}, body)
	svc.AssertExpectations(t)
}

func TestHTTP_CreatePayment_InvalidInput(t *testing.T) {
	messages := []string{
		"Could not find account with id nope",
		ledger.MsgPayerPayeeSame,
		ledger.MsgAmountUnparsable,
		ledger.MsgAmountNotPos,
		ledger.MsgDateUnparsable,
	}
	for _, message := range messages {
		t.Run(message, func(t *testing.T) {
			svc := new(mockEventService)
			svc.On("CreatePayment", mock.Anything, mock.Anything).
				Return(nil, ledger.NewInvalidInputError(message))

			resp := newTestAPI(t, svc).Post("/v1/payment", CreatePaymentBody{PayerID: "nope"})

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			var model huma.ErrorModel
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&model))
			assert.Equal(t, message, model.Detail)
		})
	}
}

func TestHTTP_CreatePayment_ServiceError(t *testing.T) {
	svc := new(mockEventService)
	svc.On("CreatePayment", mock.Anything, mock.Anything).Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, svc).Post("/v1/payment", CreatePaymentBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

// -- POST /v1/purchase --

func TestHTTP_CreatePurchase_Success(t *testing.T) {
	created := &service.Event{
		ID:          uuid.Must(uuid.NewV4()),
		Date:        time.Date(2016, 3, 5, 0, 0, 0, 0, time.UTC),
		Type:        ledger.EventTypePurchase,
		Details:     "gas bill",
		Description: "Alice paid £20.16 for gas bill",
		AmountCents: 2016,
		Amount:      "£20.16",
	}
	svc := new(mockEventService)
	svc.On("CreatePurchase", mock.Anything, service.PurchaseInput{
		PurchaserID: "alice",
		Amount:      "20.16",
		Date:        "2016-03-05",
		Details:     "gas bill",
	}).Return(created, nil)

	resp := newTestAPI(t, svc).Post("/v1/purchase", CreatePurchaseBody{
		PurchaserID: "alice",
		Amount:      "20.16",
		Date:        "2016-03-05",
		Details:     "gas bill",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Event
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "purchase", body.Type)
	assert.Equal(t, "gas bill", body.Details)
	assert.Equal(t, "2016-03-05", body.Date)
}

func TestHTTP_CreatePurchase_DetailsMissing(t *testing.T) {
	svc := new(mockEventService)
	svc.On("CreatePurchase", mock.Anything, mock.Anything).
		Return(nil, ledger.NewInvalidInputError(ledger.MsgDetailsMissing))

	resp := newTestAPI(t, svc).Post("/v1/purchase", CreatePurchaseBody{PurchaserID: "alice"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	var model huma.ErrorModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&model))
	assert.Equal(t, ledger.MsgDetailsMissing, model.Detail)
}

// -- parseListEventsInput unit tests --

func TestParseListEventsInput_NoCursor(t *testing.T) {
	cursor, err := parseListEventsInput(&ListEventsInput{})
	assert.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestParseListEventsInput_WithCursor(t *testing.T) {
	cursor, err := parseListEventsInput(&ListEventsInput{
		Position:        40,
		Limit:           10,
		MaxCreationTime: "2025-06-15T08:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 40, cursor.Position)
	assert.Equal(t, 10, cursor.Limit)
	assert.Equal(t, time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), cursor.MaxCreationTime)
}

func TestParseListEventsInput_LimitOnly(t *testing.T) {
	before := time.Now()
	cursor, err := parseListEventsInput(&ListEventsInput{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, cursor.Limit)
	assert.False(t, cursor.MaxCreationTime.Before(before))
}

func TestParseListEventsInput_InvalidMaxCreationTime(t *testing.T) {
	_, err := parseListEventsInput(&ListEventsInput{MaxCreationTime: "not-a-date"})
	assert.Error(t, err)
}

// -- GET /v1/events --

func TestHTTP_ListEvents_WithNextCursor(t *testing.T) {
	payment := samplePayment()
	maxCreation := time.Date(2016, 4, 1, 0, 0, 0, 0, time.UTC)
	svc := new(mockEventService)
	svc.On("ListEvents", mock.Anything, (*service.EventCursor)(nil)).
		Return([]service.Event{*payment}, &service.EventCursor{Position: 1, Limit: 1, MaxCreationTime: maxCreation}, nil)

	resp := newTestAPI(t, svc).Get("/v1/events")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListEventsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Events, 1)
	assert.Equal(t, "Alice paid £20.16 to Bob", body.Events[0].Description)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 1, body.NextCursor.Position)
	assert.Equal(t, "2016-04-01T00:00:00Z", body.NextCursor.MaxCreationTime)
}

func TestHTTP_ListEvents_FollowsCursor(t *testing.T) {
	svc := new(mockEventService)
	svc.On("ListEvents", mock.Anything, mock.MatchedBy(func(c *service.EventCursor) bool {
		return c != nil && c.Position == 1 && c.Limit == 1 &&
			c.MaxCreationTime.Equal(time.Date(2016, 4, 1, 0, 0, 0, 0, time.UTC))
	})).Return(nil, nil, nil)

	resp := newTestAPI(t, svc).Get("/v1/events?position=1&limit=1&maxCreationTime=2016-04-01T00:00:00Z")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListEventsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Events)
	assert.Nil(t, body.NextCursor)
	svc.AssertExpectations(t)
}

func TestHTTP_ListEvents_InvalidMaxCreationTime(t *testing.T) {
	svc := new(mockEventService)

	resp := newTestAPI(t, svc).Get("/v1/events?maxCreationTime=yesterday")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "ListEvents")
}

func TestHTTP_ListEvents_ServiceError(t *testing.T) {
	svc := new(mockEventService)
	svc.On("ListEvents", mock.Anything, mock.Anything).Return(nil, nil, errors.New("timeout"))

	resp := newTestAPI(t, svc).Get("/v1/events")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
