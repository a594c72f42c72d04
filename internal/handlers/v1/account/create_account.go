package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/shared-ledger/internal/handlers/apierr"
	"github.com/carson-networks/shared-ledger/internal/logging"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Name string `json:"name" doc:"Account name, must be unique"`
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	ID string `json:"id" doc:"Created account UUID"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, name string) (uuid.UUID, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates a new account with a zero balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	id, err := h.AccountService.CreateAccount(ctx, input.Body.Name)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.From(err, "failed to create account")
	}

	if logData != nil {
		logData.AddData("accountID", id.String())
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{ID: id.String()},
	}, nil
}
