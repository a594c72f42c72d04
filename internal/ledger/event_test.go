package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/shared-ledger/internal/money"
)

func TestEvent_Description(t *testing.T) {
	_, builder, a := newTestLedger(t)
	ctx := context.Background()
	formatter := money.NewFormatter("")

	payment, err := builder.CreatePayment(ctx, testPayment(a))
	require.NoError(t, err)
	description, err := payment.Description(formatter)
	require.NoError(t, err)
	assert.Equal(t, "Alice paid £20.16 to Bob", description)

	purchase, err := builder.CreatePurchase(ctx, testPurchase(a))
	require.NoError(t, err)
	description, err = purchase.Description(formatter)
	require.NoError(t, err)
	assert.Equal(t, "Alice paid £20.16 for gas bill", description)
}

func TestTransfer_DescriptionForPayment(t *testing.T) {
	_, builder, a := newTestLedger(t)

	_, err := builder.CreatePayment(context.Background(), testPayment(a))
	require.NoError(t, err)

	description, err := a.alice.Transfers[0].Description()
	require.NoError(t, err)
	assert.Equal(t, "Payment to Bob", description)

	description, err = a.bob.Transfers[0].Description()
	require.NoError(t, err)
	assert.Equal(t, "Payment from Alice", description)
}

func TestTransfer_Date(t *testing.T) {
	_, builder, a := newTestLedger(t)

	event, err := builder.CreatePayment(context.Background(), testPayment(a))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), event.Transfers[0].Date())
	assert.True(t, (&Transfer{}).Date().IsZero())
}

func TestTransfer_DescriptionWithoutEvent(t *testing.T) {
	_, err := (&Transfer{}).Description()
	assert.Error(t, err)
}

func TestEvent_AccessorsOnWrongVariant(t *testing.T) {
	_, builder, a := newTestLedger(t)
	ctx := context.Background()

	purchase, err := builder.CreatePurchase(ctx, testPurchase(a))
	require.NoError(t, err)
	payment, err := builder.CreatePayment(ctx, testPayment(a))
	require.NoError(t, err)

	_, err = purchase.Payer()
	assert.ErrorIs(t, err, ErrEventTypeMismatch)
	_, err = purchase.Payee()
	assert.ErrorIs(t, err, ErrEventTypeMismatch)
	_, err = payment.Purchaser()
	assert.ErrorIs(t, err, ErrEventTypeMismatch)

	purchaser, err := purchase.Purchaser()
	require.NoError(t, err)
	assert.Equal(t, a.alice.ID, purchaser.ID)
}

func TestEvent_Variant(t *testing.T) {
	_, builder, a := newTestLedger(t)

	event, err := builder.CreatePurchase(context.Background(), testPurchase(a))
	require.NoError(t, err)

	v, err := event.Variant()
	require.NoError(t, err)
	purchase, ok := v.(Purchase)
	require.True(t, ok)
	assert.Equal(t, "gas bill", purchase.Details)
	assert.Equal(t, int64(2016), purchase.AmountCents)
	assert.Equal(t, a.alice.ID, purchase.Purchaser.ID)
}

func TestEvent_MalformedVariant(t *testing.T) {
	_, err := (&Event{Type: EventTypePayment}).Variant()
	assert.ErrorIs(t, err, ErrMalformedEvent)

	_, err = (&Event{Type: EventTypePurchase}).Variant()
	assert.ErrorIs(t, err, ErrMalformedEvent)

	_, err = (&Event{Type: "refund"}).Variant()
	assert.ErrorIs(t, err, ErrMalformedEvent)

	_, err = (&Event{Type: "refund"}).Description(money.NewFormatter(""))
	assert.ErrorIs(t, err, ErrMalformedEvent)
}

func TestAccount_Summary(t *testing.T) {
	formatter := money.NewFormatter("")

	owed := &Account{Name: "Alice", Transfers: []*Transfer{{AmountCents: 1000}, {AmountCents: -500}}}
	assert.Equal(t, int64(500), owed.BalanceCents())
	assert.Equal(t, "is owed £5.00", owed.Summary(formatter))

	owes := &Account{Name: "Bob", Transfers: []*Transfer{{AmountCents: -1000}, {AmountCents: 500}}}
	assert.Equal(t, "owes £5.00", owes.Summary(formatter))

	balanced := &Account{Name: "Carol"}
	assert.Zero(t, balanced.BalanceCents())
	assert.Equal(t, "is in balance", balanced.Summary(formatter))
}

func TestBook_Post(t *testing.T) {
	alice := &Account{ID: uuid.Must(uuid.NewV4()), Name: "Alice"}
	bob := &Account{ID: uuid.Must(uuid.NewV4()), Name: "Bob"}
	event := &Event{ID: uuid.Must(uuid.NewV4()), Type: EventTypePayment, Date: time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)}
	book := NewBook([]*Account{alice, bob}, []*Event{event})

	_, err := book.Post(uuid.Must(uuid.NewV4()), alice.ID, event.ID, 1000)
	require.NoError(t, err)
	_, err = book.Post(uuid.Must(uuid.NewV4()), bob.ID, event.ID, -1000)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), alice.BalanceCents())
	assert.Len(t, event.Transfers, 2)
	description, err := bob.Transfers[0].Description()
	require.NoError(t, err)
	assert.Equal(t, "Payment from Alice", description)

	found, ok := book.Account(alice.ID)
	assert.True(t, ok)
	assert.Same(t, alice, found)
	_, ok = book.Event(uuid.Must(uuid.NewV4()))
	assert.False(t, ok)
}

func TestBook_PostWithoutEvent(t *testing.T) {
	alice := &Account{ID: uuid.Must(uuid.NewV4()), Name: "Alice"}
	book := NewBook([]*Account{alice}, nil)

	transfer, err := book.Post(uuid.Must(uuid.NewV4()), alice.ID, uuid.Must(uuid.NewV4()), -250)
	require.NoError(t, err)
	assert.Nil(t, transfer.Event)
	assert.Equal(t, int64(-250), alice.BalanceCents())

	_, err = book.Post(uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), uuid.Nil, 1)
	assert.Error(t, err)
}

func TestNormalizeAccountName(t *testing.T) {
	name, err := NormalizeAccountName("  Alice \n")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	for _, blank := range []string{"", "   ", "\t\n"} {
		_, err := NormalizeAccountName(blank)
		invalid, ok := IsInvalidInput(err)
		require.True(t, ok, "%q should be rejected", blank)
		assert.Equal(t, MsgNameBlank, invalid.Message)
	}
}
