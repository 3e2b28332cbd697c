package transfer_test

import (
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/transaction"
	"github.com/amirasaad/ledger/pkg/domain/transfer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validCommand() transfer.Command {
	return transfer.Command{
		Description:   ptr("Regular transfer"),
		Date:          ptr(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)),
		Ammount:       ptr(decimal.NewFromInt(100)),
		OriginID:      ptr(int64(10000)),
		DestinationID: ptr(int64(10001)),
	}
}

func TestCommandValidateOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *transfer.Command)
		code    string
		message string
	}{
		{"missing description wins over everything", func(c *transfer.Command) { *c = transfer.Command{} }, domain.CodeDescriptionRequired, "description is a required attribute"},
		{"missing ammount", func(c *transfer.Command) { c.Ammount = nil; c.Date = nil }, domain.CodeAmmountRequired, "ammount is a required attribute"},
		{"sub-cent ammount", func(c *transfer.Command) { c.Ammount = ptr(decimal.RequireFromString("0.004")) }, domain.CodeAmmountPrecision, "ammount must have at most 2 decimal places"},
		{"ammount beyond numeric(15,2)", func(c *transfer.Command) { c.Ammount = ptr(decimal.RequireFromString("10000000000000")) }, domain.CodeAmmountTooLarge, "ammount is too large"},
		{"missing date", func(c *transfer.Command) { c.Date = nil; c.OriginID = nil }, domain.CodeDateRequired, "date is a required attribute"},
		{"missing origin", func(c *transfer.Command) { c.OriginID = nil }, domain.CodeOriginRequired, "origin account is a required attribute"},
		{"missing destination", func(c *transfer.Command) { c.DestinationID = nil }, domain.CodeDestinationRequired, "destination account is a required attribute"},
		{"self transfer", func(c *transfer.Command) { c.DestinationID = ptr(int64(10000)) }, domain.CodeSelfTransfer, "cannot transfer an account to itself"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := validCommand()
			tc.mutate(&cmd)
			err := cmd.Validate()
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.code, verr.Code)
			assert.Equal(t, tc.message, verr.Message)
		})
	}
}

func TestLegsMirrorEachOther(t *testing.T) {
	cmd := validCommand()
	cmd.Ammount = ptr(decimal.NewFromInt(-100))
	tr, err := transfer.New(1, cmd)
	require.NoError(t, err)
	tr.ID = 42

	out, in := tr.Outflow(), tr.Inflow()

	assert.True(t, tr.Ammount.Equal(decimal.NewFromInt(100)))
	assert.True(t, out.Ammount.Equal(in.Ammount.Neg()))
	assert.Equal(t, transaction.Outflow, out.Type)
	assert.Equal(t, transaction.Inflow, in.Type)
	assert.Equal(t, int64(10000), out.AccountID)
	assert.Equal(t, int64(10001), in.AccountID)
	assert.Equal(t, "Transfer to acc #10001", out.Description)
	assert.Equal(t, "Transfer from acc #10000", in.Description)
	require.NotNil(t, out.TransferID)
	require.NotNil(t, in.TransferID)
	assert.Equal(t, int64(42), *out.TransferID)
	assert.Equal(t, *out.TransferID, *in.TransferID)
	assert.True(t, out.Status)
	assert.True(t, in.Status)
}

func TestApplyKeepsIdentity(t *testing.T) {
	tr, err := transfer.New(7, validCommand())
	require.NoError(t, err)
	tr.ID = 3

	cmd := validCommand()
	cmd.Ammount = ptr(decimal.RequireFromString("250.5"))
	cmd.Description = ptr("Updated")
	require.NoError(t, tr.Apply(cmd))

	assert.Equal(t, int64(3), tr.ID)
	assert.Equal(t, int64(7), tr.UserID)
	assert.Equal(t, "Updated", tr.Description)
	assert.Equal(t, "250.50", tr.Ammount.StringFixed(2))

	cmd.DestinationID = cmd.OriginID
	assert.ErrorIs(t, tr.Apply(cmd), domain.ErrValidation)
	assert.Equal(t, "Updated", tr.Description)
}
