package ledger

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/shared-ledger/internal/money"
)

// Account is one member of the group. Transfers are kept in creation order.
type Account struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	Transfers []*Transfer
}

// BalanceCents is the sum of the account's transfers. Positive means the
// account is owed money, negative means it owes money.
func (a *Account) BalanceCents() int64 {
	var balance int64
	for _, t := range a.Transfers {
		balance += t.AmountCents
	}
	return balance
}

// Summary describes the balance, e.g. "is owed £36.96" or "owes £23.52".
func (a *Account) Summary(f money.Formatter) string {
	balance := a.BalanceCents()
	switch {
	case balance > 0:
		return "is owed " + f.Format(balance)
	case balance < 0:
		return "owes " + f.Format(-balance)
	default:
		return "is in balance"
	}
}

// NormalizeAccountName trims the name and rejects it when nothing is left.
func NormalizeAccountName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", NewInvalidInputError(MsgNameBlank)
	}
	return name, nil
}
