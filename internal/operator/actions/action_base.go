package actions

import (
	"context"

	"github.com/carson-networks/shared-ledger/internal/storage"
)

// IAction is one unit of work. Perform runs inside a transaction that is
// rolled back if it returns an error.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
