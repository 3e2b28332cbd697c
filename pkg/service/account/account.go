// Package account provides the user scoped account store.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	accountrepo "github.com/amirasaad/ledger/pkg/repository/account"
)

// Service provides account operations for a single owner.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CheckOwnership returns a not_owned ValidationError naming accountID when
// userID does not own it. A missing account is reported the same way.
func CheckOwnership(
	ctx context.Context,
	repo accountrepo.Repository,
	userID, accountID int64,
	field string,
) error {
	if _, err := repo.FindOwned(ctx, accountID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotOwned(field, accountID)
		}
		return err
	}
	return nil
}

// Create adds an account for userID.
func (s *Service) Create(ctx context.Context, userID int64, name string) (*dto.AccountRead, error) {
	log := s.logger.With("userID", userID)
	log.Info("CreateAccount started")

	acc, err := account.New(userID, name)
	if err != nil {
		log.Error("CreateAccount failed: invalid input", "error", err)
		return nil, err
	}

	var created *dto.AccountRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		created, err = repo.Create(ctx, dto.AccountCreate{Name: acc.Name, UserID: acc.UserID})
		return err
	})
	if err != nil {
		log.Error("CreateAccount failed", "error", err)
		return nil, err
	}
	log.Info("CreateAccount successful", "accountID", created.ID)
	return created, nil
}

// List returns the accounts of userID.
func (s *Service) List(ctx context.Context, userID int64) (accounts []*dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		accounts, err = repo.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		s.logger.Error("ListAccounts failed", "userID", userID, "error", err)
		return nil, err
	}
	return accounts, nil
}

// Get returns account id, or an AuthorizationError when another user owns it.
func (s *Service) Get(ctx context.Context, userID, id int64) (acc *dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acc, err = getOwned(ctx, repo, userID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// Rename changes the name of an owned account.
func (s *Service) Rename(ctx context.Context, userID, id int64, name string) (acc *dto.AccountRead, err error) {
	log := s.logger.With("userID", userID, "accountID", id)
	log.Info("RenameAccount started")

	renamed, err := account.New(userID, name)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err := getOwned(ctx, repo, userID, id); err != nil {
			return err
		}
		if err := repo.Update(ctx, id, dto.AccountUpdate{Name: &renamed.Name}); err != nil {
			return err
		}
		acc, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		log.Error("RenameAccount failed", "error", err)
		return nil, err
	}
	log.Info("RenameAccount successful")
	return acc, nil
}

// Delete removes an owned account that has no transactions.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	log := s.logger.With("userID", userID, "accountID", id)
	log.Info("DeleteAccount started")

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err := getOwned(ctx, repo, userID, id); err != nil {
			return err
		}
		inUse, err := repo.HasTransactions(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return domain.NewValidationError(domain.CodeAccountInUse, "id",
				fmt.Sprintf("account #%d has associated transactions", id))
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		log.Error("DeleteAccount failed", "error", err)
		return err
	}
	log.Info("DeleteAccount successful")
	return nil
}

func getOwned(ctx context.Context, repo accountrepo.Repository, userID, id int64) (*dto.AccountRead, error) {
	acc, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc.UserID != userID {
		return nil, domain.NewAuthorizationError("account", id)
	}
	return acc, nil
}
