package infra

import (
	"context"
	"fmt"
	"reflect"

	accountrepo "github.com/amirasaad/ledger/infra/repository/account"
	transactionrepo "github.com/amirasaad/ledger/infra/repository/transaction"
	transferrepo "github.com/amirasaad/ledger/infra/repository/transfer"
	userrepo "github.com/amirasaad/ledger/infra/repository/user"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/amirasaad/ledger/pkg/repository/transaction"
	"github.com/amirasaad/ledger/pkg/repository/transfer"
	"github.com/amirasaad/ledger/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories obtained inside Do share its database transaction.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*account.Repository)(nil)).Elem():     func(db *gorm.DB) any { return accountrepo.New(db) },
			reflect.TypeOf((*transaction.Repository)(nil)).Elem(): func(db *gorm.DB) any { return transactionrepo.New(db) },
			reflect.TypeOf((*transfer.Repository)(nil)).Elem():    func(db *gorm.DB) any { return transferrepo.New(db) },
			reflect.TypeOf((*user.Repository)(nil)).Elem():        func(db *gorm.DB) any { return userrepo.New(db) },
		},
	}
}

// Do runs fn inside a database transaction. Returning an error rolls back.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry})
	})
}

// GetRepository returns the repository registered for repoType, bound to
// the current transaction or, outside Do, to the plain connection.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return constructor(session), nil
}

func (u *UoW) AccountRepository() (account.Repository, error) {
	return getRepository[account.Repository](u)
}

func (u *UoW) TransactionRepository() (transaction.Repository, error) {
	return getRepository[transaction.Repository](u)
}

func (u *UoW) TransferRepository() (transfer.Repository, error) {
	return getRepository[transfer.Repository](u)
}

func (u *UoW) UserRepository() (user.Repository, error) {
	return getRepository[user.Repository](u)
}

func getRepository[T any](u *UoW) (T, error) {
	var zero T
	repoAny, err := u.GetRepository(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("repository type mismatch: %T", repoAny)
	}
	return repo, nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
