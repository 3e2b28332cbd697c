package app_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/infra/eventbus"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestNewWiresServices(t *testing.T) {
	db := testutils.NewTestDB(t)
	fx := testutils.Seed(t, db)
	bus := eventbus.NewWithMemory(testutils.Logger())

	closed := 0
	a := app.New(&app.Deps{
		Uow:      infra.NewUoW(db),
		EventBus: bus,
		Logger:   testutils.Logger(),
		Closers: []io.Closer{
			closerFunc(func() error { closed++; return errors.New("boom") }),
			closerFunc(func() error { closed++; return nil }),
		},
	}, &config.App{Auth: &config.Auth{Jwt: &config.Jwt{Secret: "s", Expiry: time.Hour}}})

	require.NotNil(t, a.AuthService)
	require.NotNil(t, a.UserService)
	require.NotNil(t, a.AccountService)
	require.NotNil(t, a.TransactionService)
	require.NotNil(t, a.TransferService)

	_, err := a.TransferService.Create(context.Background(), fx.Owner.ID, dto.TransferCommand{
		Description:   testutils.Ptr("Savings"),
		Date:          testutils.Ptr(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)),
		Ammount:       testutils.Ptr(decimal.NewFromInt(5)),
		OriginID:      testutils.Ptr(testutils.OriginAccountID),
		DestinationID: testutils.Ptr(testutils.DestinationAccountID),
	})
	require.NoError(t, err)
	assert.Len(t, bus.Published(), 1)

	assert.EqualError(t, a.Close(), "boom")
	assert.Equal(t, 2, closed)
}
