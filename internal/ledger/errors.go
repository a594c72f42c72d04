package ledger

import (
	"errors"
	"fmt"
)

// Messages shown to the user when an event cannot be created.
const (
	MsgPayerPayeeSame   = "Payer and payee must be different"
	MsgAmountUnparsable = "Could not parse amount"
	MsgAmountNotPos     = "Amount must be positive"
	MsgDateUnparsable   = "Could not parse date"
	MsgDetailsMissing   = "Details were missing"

	MsgNameBlank           = "Name can't be blank"
	MsgNameTaken           = "Name has already been taken"
	MsgAccountHasTransfers = "Account has transfers"
)

var (
	// ErrEventTypeMismatch is returned when a payment accessor is used on a
	// purchase or the other way round.
	ErrEventTypeMismatch = errors.New("event type mismatch")

	// ErrMalformedEvent means the stored transfers do not have the shape
	// required by the event type.
	ErrMalformedEvent = errors.New("malformed event")

	// ErrUnbalancedEvent means the transfers of an event do not sum to zero.
	ErrUnbalancedEvent = errors.New("event transfers do not sum to zero")
)

// InvalidInputError carries a message that is shown to the user as-is.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// NewInvalidInputError wraps a user facing message.
func NewInvalidInputError(message string) error {
	return &InvalidInputError{Message: message}
}

func invalidInput(format string, args ...any) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

func accountNotFound(id string) error {
	return invalidInput("Could not find account with id %s", id)
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError and
// returns it.
func IsInvalidInput(err error) (*InvalidInputError, bool) {
	var invalid *InvalidInputError
	if errors.As(err, &invalid) {
		return invalid, true
	}
	return nil, false
}
