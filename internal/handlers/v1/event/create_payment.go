package event

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/shared-ledger/internal/handlers/apierr"
	"github.com/carson-networks/shared-ledger/internal/logging"
	"github.com/carson-networks/shared-ledger/internal/service"
)

// CreatePaymentBody is the request body for recording a payment. Values are
// validated by the ledger so that the user sees its messages.
type CreatePaymentBody struct {
	PayerID string `json:"payerID" doc:"UUID of the account handing over money"`
	PayeeID string `json:"payeeID" doc:"UUID of the account receiving money"`
	Amount  string `json:"amount" doc:"Positive amount, e.g. '20.16' or '20'"`
	Date    string `json:"date" doc:"Date of the payment, YYYY-MM-DD"`
}

// CreatePaymentInput is the Huma input for recording a payment.
type CreatePaymentInput struct {
	Body CreatePaymentBody
}

// CreatePaymentOutput is the Huma output for recording a payment.
type CreatePaymentOutput struct {
	Status int
	Body   Event
}

// paymentCreator is the interface for recording payments.
type paymentCreator interface {
	CreatePayment(ctx context.Context, input service.PaymentInput) (*service.Event, error)
}

// CreatePaymentHandler handles POST /v1/payment.
type CreatePaymentHandler struct {
	EventService paymentCreator
}

// NewCreatePaymentHandler creates a new CreatePaymentHandler.
func NewCreatePaymentHandler(svc paymentCreator) *CreatePaymentHandler {
	return &CreatePaymentHandler{EventService: svc}
}

// Register registers the create payment endpoint with the Huma API.
func (h *CreatePaymentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-payment",
		Method:      http.MethodPost,
		Path:        "/v1/payment",
		Summary:     "Record a payment",
		Description: "Records money handed from one account to another.",
		Tags:        []string{"Events"},
	}, h.handle)
}

func (h *CreatePaymentHandler) handle(ctx context.Context, input *CreatePaymentInput) (*CreatePaymentOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createPaymentMs")
	}
	created, err := h.EventService.CreatePayment(ctx, service.PaymentInput{
		PayerID: input.Body.PayerID,
		PayeeID: input.Body.PayeeID,
		Amount:  input.Body.Amount,
		Date:    input.Body.Date,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.From(err, "failed to create payment")
	}

	if logData != nil {
		logData.AddData("eventID", created.ID.String())
	}

	return &CreatePaymentOutput{
		Status: http.StatusCreated,
		Body:   toAPIEvent(*created),
	}, nil
}
