package transaction_test

import (
	"context"
	"errors"
	"testing"

	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/service/transaction"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreFailuresPropagate(t *testing.T) {
	errStore := errors.New("too many connections")

	t.Run("balance", func(t *testing.T) {
		uow := mocks.NewUnitOfWork(t)
		txs := mocks.NewTransactionRepository(t)
		uow.On("TransactionRepository").Return(txs, nil)
		txs.On("Balance", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).Return(nil, errStore)

		got, err := transaction.New(uow, nil, testutils.Logger()).Balance(context.Background(), 1)
		require.ErrorIs(t, err, errStore)
		assert.Nil(t, got)
	})

	t.Run("get", func(t *testing.T) {
		uow := mocks.NewUnitOfWork(t)
		txs := mocks.NewTransactionRepository(t)
		uow.On("TransactionRepository").Return(txs, nil)
		txs.On("FindOne", mock.Anything, mock.AnythingOfType("dto.TransactionFilter")).Return(nil, errStore)

		_, err := transaction.New(uow, nil, testutils.Logger()).Get(context.Background(), 1, 5)
		require.ErrorIs(t, err, errStore)
	})

	t.Run("list", func(t *testing.T) {
		uow := mocks.NewUnitOfWork(t)
		txs := mocks.NewTransactionRepository(t)
		uow.On("TransactionRepository").Return(txs, nil)
		txs.On("Find", mock.Anything, int64(1), dto.TransactionFilter{}).Return(nil, errStore)

		_, err := transaction.New(uow, nil, testutils.Logger()).List(context.Background(), 1, dto.TransactionFilter{})
		require.ErrorIs(t, err, errStore)
	})
}
