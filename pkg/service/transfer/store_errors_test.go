package transfer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/amirasaad/ledger/infra/eventbus"
	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/service/transfer"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("connection reset by peer")

const ownerID int64 = 1

func validCommand() dto.TransferCommand {
	return command(25, testutils.OriginAccountID, testutils.DestinationAccountID)
}

func TestCreateStoreFailure(t *testing.T) {
	uow := mocks.NewUnitOfWork(t)
	accounts := mocks.NewAccountRepository(t)
	transfers := mocks.NewTransferRepository(t)
	bus := eventbus.NewWithMemory(testutils.Logger())

	uow.On("AccountRepository").Return(accounts, nil)
	uow.On("TransferRepository").Return(transfers, nil)
	accounts.On("FindOwned", mock.Anything, testutils.DestinationAccountID, ownerID).
		Return(&dto.AccountRead{ID: testutils.DestinationAccountID, UserID: ownerID}, nil)
	accounts.On("FindOwned", mock.Anything, testutils.OriginAccountID, ownerID).
		Return(&dto.AccountRead{ID: testutils.OriginAccountID, UserID: ownerID}, nil)
	transfers.On("Create", mock.Anything, mock.AnythingOfType("dto.TransferCreate")).Return(nil, errStore)

	svc := transfer.New(uow, bus, testutils.Logger())
	got, err := svc.Create(context.Background(), ownerID, validCommand())

	require.ErrorIs(t, err, errStore)
	assert.Nil(t, got)
	assert.Empty(t, bus.Published())
	uow.AssertNotCalled(t, "TransactionRepository")
}

func TestCreateOwnershipLookupFailureIsNotAValidationError(t *testing.T) {
	uow := mocks.NewUnitOfWork(t)
	accounts := mocks.NewAccountRepository(t)

	uow.On("AccountRepository").Return(accounts, nil)
	accounts.On("FindOwned", mock.Anything, testutils.DestinationAccountID, ownerID).Return(nil, errStore)

	svc := transfer.New(uow, nil, testutils.Logger())
	_, err := svc.Create(context.Background(), ownerID, validCommand())

	require.ErrorIs(t, err, errStore)
	var verr *domain.ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestDeleteStopsOnLegFailure(t *testing.T) {
	uow := mocks.NewUnitOfWork(t)
	transfers := mocks.NewTransferRepository(t)
	txs := mocks.NewTransactionRepository(t)
	bus := eventbus.NewWithMemory(testutils.Logger())

	uow.On("TransferRepository").Return(transfers, nil)
	uow.On("TransactionRepository").Return(txs, nil)
	transfers.On("Get", mock.Anything, int64(7)).Return(&dto.TransferRead{
		ID:            7,
		UserID:        ownerID,
		Ammount:       decimal.NewFromInt(25),
		OriginID:      testutils.OriginAccountID,
		DestinationID: testutils.DestinationAccountID,
	}, nil)
	txs.On("Find", mock.Anything, ownerID, mock.AnythingOfType("dto.TransactionFilter")).
		Return([]*dto.TransactionRead{{ID: 70}, {ID: 71}}, nil)
	txs.On("Remove", mock.Anything, int64(70)).Return(errStore)

	svc := transfer.New(uow, bus, testutils.Logger())
	err := svc.Delete(context.Background(), ownerID, 7)

	require.ErrorIs(t, err, errStore)
	transfers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	txs.AssertNotCalled(t, "Remove", mock.Anything, int64(71))
	assert.Empty(t, bus.Published())
}

func TestRepositoryUnavailable(t *testing.T) {
	uow := mocks.NewUnitOfWork(t)
	uow.On("TransferRepository").Return(nil, errStore)

	svc := transfer.New(uow, nil, testutils.Logger())
	_, err := svc.List(context.Background(), ownerID)
	require.ErrorIs(t, err, errStore)
}
