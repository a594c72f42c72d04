// Package apierr maps service errors onto huma error responses.
package apierr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/shared-ledger/internal/ledger"
	"github.com/carson-networks/shared-ledger/internal/service"
)

// From converts err into a huma status error. Invalid input becomes a 400
// whose detail is the user facing message, a missing account a 404 and
// anything else a 500 described by message.
func From(err error, message string) error {
	if invalid, ok := ledger.IsInvalidInput(err); ok {
		return huma.Error400BadRequest(invalid.Message)
	}
	if errors.Is(err, service.ErrAccountNotFound) {
		return huma.Error404NotFound("account not found")
	}
	return huma.NewError(http.StatusInternalServerError, message, err)
}
