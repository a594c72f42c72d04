package account

import (
	"time"

	"github.com/carson-networks/shared-ledger/internal/ledger"
	"github.com/carson-networks/shared-ledger/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID           string `json:"id" doc:"Account UUID"`
	Name         string `json:"name" doc:"Account name"`
	BalanceCents int64  `json:"balanceCents" doc:"Signed balance in cents, positive when the account is owed money"`
	Balance      string `json:"balance" doc:"Formatted balance, e.g. '-£3.36'"`
	Summary      string `json:"summary" doc:"Balance in words, e.g. 'owes £3.36'"`
	CreatedAt    string `json:"createdAt" doc:"RFC3339 creation time"`
}

// Transfer is one line of an account statement.
type Transfer struct {
	ID          string `json:"id" doc:"Transfer UUID"`
	EventID     string `json:"eventID" doc:"UUID of the payment or purchase"`
	Date        string `json:"date" doc:"Event date, YYYY-MM-DD"`
	Description string `json:"description" doc:"What the transfer was for"`
	AmountCents int64  `json:"amountCents" doc:"Signed amount in cents"`
	Amount      string `json:"amount" doc:"Formatted signed amount"`
}

func toAPIAccount(a service.Account) Account {
	return Account{
		ID:           a.ID.String(),
		Name:         a.Name,
		BalanceCents: a.BalanceCents,
		Balance:      a.Balance,
		Summary:      a.Summary,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
}

func toAPITransfer(t service.Transfer) Transfer {
	return Transfer{
		ID:          t.ID.String(),
		EventID:     t.EventID.String(),
		Date:        t.Date.Format(ledger.DateLayout),
		Description: t.Description,
		AmountCents: t.AmountCents,
		Amount:      t.Amount,
	}
}
