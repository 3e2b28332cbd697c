package reconcile_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/infra/repository/model"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/handler/reconcile"
	"github.com/amirasaad/ledger/pkg/service/transfer"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leg(txType, ammount string) *dto.TransactionRead {
	return &dto.TransactionRead{Type: txType, Ammount: decimal.RequireFromString(ammount)}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		legs []*dto.TransactionRead
		ok   bool
	}{
		{"balanced", []*dto.TransactionRead{leg("O", "-10"), leg("I", "10")}, true},
		{"one leg", []*dto.TransactionRead{leg("O", "-10")}, false},
		{"same type", []*dto.TransactionRead{leg("I", "10"), leg("I", "-10")}, false},
		{"drifted", []*dto.TransactionRead{leg("O", "-10"), leg("I", "9.99")}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := reconcile.Check(tc.legs)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, reconcile.ErrUnbalanced)
		})
	}
}

func TestHandleTransferWritten(t *testing.T) {
	db := testutils.NewTestDB(t)
	fx := testutils.Seed(t, db)
	uow := infra.NewUoW(db)
	ctx := context.Background()

	created, err := transfer.New(uow, nil, testutils.Logger()).Create(ctx, fx.Owner.ID, dto.TransferCommand{
		Description:   testutils.Ptr("Savings"),
		Date:          testutils.Ptr(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)),
		Ammount:       testutils.Ptr(decimal.NewFromInt(25)),
		OriginID:      testutils.Ptr(testutils.OriginAccountID),
		DestinationID: testutils.Ptr(testutils.DestinationAccountID),
	})
	require.NoError(t, err)

	handler := reconcile.HandleTransferWritten(uow, testutils.Logger())
	evt := &events.TransferCreated{TransferPayload: events.TransferPayload{TransferID: created.ID, UserID: fx.Owner.ID}}
	require.NoError(t, handler(ctx, evt))

	require.NoError(t, db.Model(&model.Transaction{}).
		Where("transfer_id = ? AND type = ?", created.ID, "I").
		Update("ammount", decimal.NewFromInt(24)).Error)
	assert.ErrorIs(t, handler(ctx, evt), reconcile.ErrUnbalanced)

	assert.Error(t, handler(ctx, &events.TransferDeleted{}))
}
