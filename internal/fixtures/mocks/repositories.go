package mocks

import (
	"context"
	"time"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/amirasaad/ledger/pkg/repository/transaction"
	"github.com/amirasaad/ledger/pkg/repository/transfer"
	"github.com/amirasaad/ledger/pkg/repository/user"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func track(m *mock.Mock, t testingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// AccountRepository is a mock of account.Repository.
type AccountRepository struct{ mock.Mock }

func NewAccountRepository(t testingT) *AccountRepository {
	m := &AccountRepository{}
	track(&m.Mock, t)
	return m
}

func (m *AccountRepository) Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error) {
	ret := m.Called(ctx, create)
	acc, _ := ret.Get(0).(*dto.AccountRead)
	return acc, ret.Error(1)
}

func (m *AccountRepository) Get(ctx context.Context, id int64) (*dto.AccountRead, error) {
	ret := m.Called(ctx, id)
	acc, _ := ret.Get(0).(*dto.AccountRead)
	return acc, ret.Error(1)
}

func (m *AccountRepository) FindOwned(ctx context.Context, id, userID int64) (*dto.AccountRead, error) {
	ret := m.Called(ctx, id, userID)
	acc, _ := ret.Get(0).(*dto.AccountRead)
	return acc, ret.Error(1)
}

func (m *AccountRepository) ListByUser(ctx context.Context, userID int64) ([]*dto.AccountRead, error) {
	ret := m.Called(ctx, userID)
	accs, _ := ret.Get(0).([]*dto.AccountRead)
	return accs, ret.Error(1)
}

func (m *AccountRepository) Update(ctx context.Context, id int64, update dto.AccountUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *AccountRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *AccountRepository) HasTransactions(ctx context.Context, id int64) (bool, error) {
	ret := m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

// TransactionRepository is a mock of transaction.Repository.
type TransactionRepository struct{ mock.Mock }

func NewTransactionRepository(t testingT) *TransactionRepository {
	m := &TransactionRepository{}
	track(&m.Mock, t)
	return m
}

func (m *TransactionRepository) Find(
	ctx context.Context,
	userID int64,
	filter dto.TransactionFilter,
) ([]*dto.TransactionRead, error) {
	ret := m.Called(ctx, userID, filter)
	rows, _ := ret.Get(0).([]*dto.TransactionRead)
	return rows, ret.Error(1)
}

func (m *TransactionRepository) FindOne(ctx context.Context, filter dto.TransactionFilter) (*dto.TransactionRead, error) {
	ret := m.Called(ctx, filter)
	row, _ := ret.Get(0).(*dto.TransactionRead)
	return row, ret.Error(1)
}

func (m *TransactionRepository) Save(ctx context.Context, create dto.TransactionCreate) (*dto.TransactionRead, error) {
	ret := m.Called(ctx, create)
	row, _ := ret.Get(0).(*dto.TransactionRead)
	return row, ret.Error(1)
}

func (m *TransactionRepository) Update(
	ctx context.Context,
	id int64,
	update dto.TransactionUpdate,
) (*dto.TransactionRead, error) {
	ret := m.Called(ctx, id, update)
	row, _ := ret.Get(0).(*dto.TransactionRead)
	return row, ret.Error(1)
}

func (m *TransactionRepository) Remove(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *TransactionRepository) Balance(
	ctx context.Context,
	userID int64,
	asOf time.Time,
) ([]*dto.AccountBalance, error) {
	ret := m.Called(ctx, userID, asOf)
	sums, _ := ret.Get(0).([]*dto.AccountBalance)
	return sums, ret.Error(1)
}

// TransferRepository is a mock of transfer.Repository.
type TransferRepository struct{ mock.Mock }

func NewTransferRepository(t testingT) *TransferRepository {
	m := &TransferRepository{}
	track(&m.Mock, t)
	return m
}

func (m *TransferRepository) Create(ctx context.Context, create dto.TransferCreate) (*dto.TransferRead, error) {
	ret := m.Called(ctx, create)
	t, _ := ret.Get(0).(*dto.TransferRead)
	return t, ret.Error(1)
}

func (m *TransferRepository) Get(ctx context.Context, id int64) (*dto.TransferRead, error) {
	ret := m.Called(ctx, id)
	t, _ := ret.Get(0).(*dto.TransferRead)
	return t, ret.Error(1)
}

func (m *TransferRepository) ListByUser(ctx context.Context, userID int64) ([]*dto.TransferRead, error) {
	ret := m.Called(ctx, userID)
	ts, _ := ret.Get(0).([]*dto.TransferRead)
	return ts, ret.Error(1)
}

func (m *TransferRepository) Update(ctx context.Context, id int64, update dto.TransferUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *TransferRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// UserRepository is a mock of user.Repository.
type UserRepository struct{ mock.Mock }

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	track(&m.Mock, t)
	return m
}

func (m *UserRepository) Create(ctx context.Context, create dto.UserCreate) (*dto.UserRead, error) {
	ret := m.Called(ctx, create)
	u, _ := ret.Get(0).(*dto.UserRead)
	return u, ret.Error(1)
}

func (m *UserRepository) Get(ctx context.Context, id int64) (*dto.UserRead, error) {
	ret := m.Called(ctx, id)
	u, _ := ret.Get(0).(*dto.UserRead)
	return u, ret.Error(1)
}

func (m *UserRepository) GetByMail(ctx context.Context, mail string) (*dto.UserRead, error) {
	ret := m.Called(ctx, mail)
	u, _ := ret.Get(0).(*dto.UserRead)
	return u, ret.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]*dto.UserRead, error) {
	ret := m.Called(ctx)
	us, _ := ret.Get(0).([]*dto.UserRead)
	return us, ret.Error(1)
}

var (
	_ account.Repository     = (*AccountRepository)(nil)
	_ transaction.Repository = (*TransactionRepository)(nil)
	_ transfer.Repository    = (*TransferRepository)(nil)
	_ user.Repository        = (*UserRepository)(nil)
)
