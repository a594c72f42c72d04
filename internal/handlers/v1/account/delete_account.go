package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/shared-ledger/internal/handlers/apierr"
	"github.com/carson-networks/shared-ledger/internal/logging"
)

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	ID string `path:"id" doc:"Account UUID"`
}

// DeleteAccountOutput is the Huma output for deleting an account.
type DeleteAccountOutput struct {
	Status int
}

// accountDeleter is the interface for deleting accounts.
type accountDeleter interface {
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// DeleteAccountHandler handles DELETE /v1/account/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

// Register registers the delete account endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/v1/account/{id}",
		Summary:     "Delete an account",
		Description: "Deletes an account that has not taken part in any payment or purchase.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("account not found")
	}

	if logData != nil {
		logData.AddData("accountID", id.String())
	}

	if err := h.AccountService.DeleteAccount(ctx, id); err != nil {
		return nil, apierr.From(err, "failed to delete account")
	}

	return &DeleteAccountOutput{Status: http.StatusNoContent}, nil
}
