package event

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/shared-ledger/internal/handlers/apierr"
	"github.com/carson-networks/shared-ledger/internal/logging"
	"github.com/carson-networks/shared-ledger/internal/service"
)

// CreatePurchaseBody is the request body for recording a purchase.
type CreatePurchaseBody struct {
	PurchaserID string `json:"purchaserID" doc:"UUID of the account that paid"`
	Amount      string `json:"amount" doc:"Positive amount, e.g. '20.16' or '20'"`
	Date        string `json:"date" doc:"Date of the purchase, YYYY-MM-DD"`
	Details     string `json:"details" doc:"What was bought"`
}

// CreatePurchaseInput is the Huma input for recording a purchase.
type CreatePurchaseInput struct {
	Body CreatePurchaseBody
}

// CreatePurchaseOutput is the Huma output for recording a purchase.
type CreatePurchaseOutput struct {
	Status int
	Body   Event
}

// purchaseCreator is the interface for recording purchases.
type purchaseCreator interface {
	CreatePurchase(ctx context.Context, input service.PurchaseInput) (*service.Event, error)
}

// CreatePurchaseHandler handles POST /v1/purchase.
type CreatePurchaseHandler struct {
	EventService purchaseCreator
}

// NewCreatePurchaseHandler creates a new CreatePurchaseHandler.
func NewCreatePurchaseHandler(svc purchaseCreator) *CreatePurchaseHandler {
	return &CreatePurchaseHandler{EventService: svc}
}

// Register registers the create purchase endpoint with the Huma API.
func (h *CreatePurchaseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-purchase",
		Method:      http.MethodPost,
		Path:        "/v1/purchase",
		Summary:     "Record a purchase",
		Description: "Records something bought by one account and shared equally by every account.",
		Tags:        []string{"Events"},
	}, h.handle)
}

func (h *CreatePurchaseHandler) handle(ctx context.Context, input *CreatePurchaseInput) (*CreatePurchaseOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createPurchaseMs")
	}
	created, err := h.EventService.CreatePurchase(ctx, service.PurchaseInput{
		PurchaserID: input.Body.PurchaserID,
		Amount:      input.Body.Amount,
		Date:        input.Body.Date,
		Details:     input.Body.Details,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.From(err, "failed to create purchase")
	}

	if logData != nil {
		logData.AddData("eventID", created.ID.String())
	}

	return &CreatePurchaseOutput{
		Status: http.StatusCreated,
		Body:   toAPIEvent(*created),
	}, nil
}
