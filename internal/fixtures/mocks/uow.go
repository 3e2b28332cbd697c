// Package mocks holds testify mocks of the repository contracts.
package mocks

import (
	"context"
	"reflect"

	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/amirasaad/ledger/pkg/repository/transaction"
	"github.com/amirasaad/ledger/pkg/repository/transfer"
	"github.com/amirasaad/ledger/pkg/repository/user"
	"github.com/stretchr/testify/mock"
)

// UnitOfWork is a mock of repository.UnitOfWork. Do runs fn against the
// mock itself, so only the repository getters need expectations.
type UnitOfWork struct {
	mock.Mock
}

func (m *UnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(m)
}

func (m *UnitOfWork) GetRepository(repoType reflect.Type) (any, error) {
	ret := m.Called(repoType)
	return ret.Get(0), ret.Error(1)
}

func (m *UnitOfWork) AccountRepository() (account.Repository, error) {
	ret := m.Called()
	repo, _ := ret.Get(0).(account.Repository)
	return repo, ret.Error(1)
}

func (m *UnitOfWork) TransactionRepository() (transaction.Repository, error) {
	ret := m.Called()
	repo, _ := ret.Get(0).(transaction.Repository)
	return repo, ret.Error(1)
}

func (m *UnitOfWork) TransferRepository() (transfer.Repository, error) {
	ret := m.Called()
	repo, _ := ret.Get(0).(transfer.Repository)
	return repo, ret.Error(1)
}

func (m *UnitOfWork) UserRepository() (user.Repository, error) {
	ret := m.Called()
	repo, _ := ret.Get(0).(user.Repository)
	return repo, ret.Error(1)
}

// NewUnitOfWork creates a UnitOfWork mock whose expectations are asserted
// when the test ends.
func NewUnitOfWork(t testingT) *UnitOfWork {
	m := &UnitOfWork{}
	track(&m.Mock, t)
	return m
}

var _ repository.UnitOfWork = (*UnitOfWork)(nil)
