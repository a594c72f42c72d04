package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/shared-ledger/internal/handlers/apierr"
	"github.com/carson-networks/shared-ledger/internal/logging"
	"github.com/carson-networks/shared-ledger/internal/service"
)

// GetAccountInput is the Huma input for fetching one account.
type GetAccountInput struct {
	ID string `path:"id" doc:"Account UUID"`
}

// GetAccountResponseBody is an account with its statement.
type GetAccountResponseBody struct {
	Account
	Transfers []Transfer `json:"transfers" doc:"Transfers in creation order"`
}

// GetAccountOutput is the Huma output for fetching one account.
type GetAccountOutput struct {
	Body GetAccountResponseBody
}

// accountGetter is the interface for fetching an account statement.
type accountGetter interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*service.AccountDetail, error)
}

// GetAccountHandler handles GET /v1/account/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get an account",
		Description: "Returns the account, its balance and every transfer that touched it.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("account not found")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getAccountMs")
	}
	detail, err := h.AccountService.GetAccount(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.From(err, "failed to get account")
	}

	if logData != nil {
		logData.AddData("transferCount", len(detail.Transfers))
	}

	resp := GetAccountResponseBody{
		Account:   toAPIAccount(detail.Account),
		Transfers: make([]Transfer, len(detail.Transfers)),
	}
	for i, t := range detail.Transfers {
		resp.Transfers[i] = toAPITransfer(t)
	}

	return &GetAccountOutput{Body: resp}, nil
}
