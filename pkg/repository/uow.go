package repository

import (
	"context"
	"reflect"

	"github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/amirasaad/ledger/pkg/repository/transaction"
	"github.com/amirasaad/ledger/pkg/repository/transfer"
	"github.com/amirasaad/ledger/pkg/repository/user"
)

// UnitOfWork runs work inside one database transaction and hands out
// repositories bound to that transaction.
//
// Example usage:
//
//	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
//		repo, err := uow.TransferRepository()
//		...
//	})
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. A returned error rolls
	// the whole transaction back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the current transaction.
	GetRepository(repoType reflect.Type) (any, error)

	AccountRepository() (account.Repository, error)
	TransactionRepository() (transaction.Repository, error)
	TransferRepository() (transfer.Repository, error)
	UserRepository() (user.Repository, error)
}
