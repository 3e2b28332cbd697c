// Package transaction provides validated, owner scoped access to plain
// ledger rows. Rows that belong to a transfer are changed through the
// transfer service only.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/repository"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
)

// CodeTransferLeg rejects a direct write to one leg of a transfer.
const CodeTransferLeg = "transfer_leg"

// Service wraps the transaction repository with ownership checks.
type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	logger *slog.Logger
	now    func() time.Time
}

// New creates a transaction service. bus may be nil.
func New(uow repository.UnitOfWork, bus eventbus.Bus, logger *slog.Logger) *Service {
	return &Service{uow: uow, bus: bus, logger: logger, now: time.Now}
}

// List returns the rows of userID narrowed by filter.
func (s *Service) List(
	ctx context.Context,
	userID int64,
	filter dto.TransactionFilter,
) (rows []*dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		rows, err = repo.Find(ctx, userID, filter)
		return err
	})
	if err != nil {
		s.logger.Error("ListTransactions failed", "userID", userID, "error", err)
		return nil, err
	}
	return rows, nil
}

// Get returns row id. A missing row is domain.ErrNotFound, a row on an
// account of another user is an AuthorizationError.
func (s *Service) Get(ctx context.Context, userID, id int64) (row *dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		row, err = s.getOwned(ctx, uow, userID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Create validates and stores a plain transaction on an account of userID.
func (s *Service) Create(
	ctx context.Context,
	userID int64,
	create dto.TransactionCreate,
) (*dto.TransactionRead, error) {
	log := s.logger.With("userID", userID)
	log.Info("CreateTransaction started")

	draft := create.Draft()
	draft.TransferID = nil
	if err := draft.Validate(); err != nil {
		log.Error("CreateTransaction failed: invalid input", "error", err)
		return nil, err
	}
	create.TransferID = nil

	var saved *dto.TransactionRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if err := accountsvc.CheckOwnership(ctx, accounts, userID, *create.AccountID, "acc_id"); err != nil {
			return err
		}
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		saved, err = repo.Save(ctx, create)
		return err
	})
	if err != nil {
		log.Error("CreateTransaction failed", "error", err)
		return nil, err
	}
	log.Info("CreateTransaction successful", "transactionID", saved.ID)
	s.emit(ctx, &events.TransactionSaved{TransactionPayload: events.NewTransactionPayload(userID, saved.Domain())})
	return saved, nil
}

// Update replaces every field of a plain transaction. The input goes
// through the same checks as Create.
func (s *Service) Update(
	ctx context.Context,
	userID, id int64,
	update dto.TransactionCreate,
) (*dto.TransactionRead, error) {
	log := s.logger.With("userID", userID, "transactionID", id)
	log.Info("UpdateTransaction started")

	var updated *dto.TransactionRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		current, err := s.getOwned(ctx, uow, userID, id)
		if err != nil {
			return err
		}
		if err := guardTransferLeg(current); err != nil {
			return err
		}
		draft := update.Draft()
		draft.TransferID = nil
		tx, err := draft.Build()
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if err := accountsvc.CheckOwnership(ctx, accounts, userID, tx.AccountID, "acc_id"); err != nil {
			return err
		}
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		txType := string(tx.Type)
		status := current.Status
		if update.Status != nil {
			status = *update.Status
		}
		updated, err = repo.Update(ctx, id, dto.TransactionUpdate{
			Description: &tx.Description,
			Date:        &tx.Date,
			Ammount:     &tx.Ammount,
			Type:        &txType,
			AccountID:   &tx.AccountID,
			Status:      &status,
		})
		return err
	})
	if err != nil {
		log.Error("UpdateTransaction failed", "error", err)
		return nil, err
	}
	log.Info("UpdateTransaction successful")
	s.emit(ctx, &events.TransactionSaved{TransactionPayload: events.NewTransactionPayload(userID, updated.Domain())})
	return updated, nil
}

// Delete removes a plain transaction.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	log := s.logger.With("userID", userID, "transactionID", id)
	log.Info("DeleteTransaction started")

	var removed *dto.TransactionRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		current, err := s.getOwned(ctx, uow, userID, id)
		if err != nil {
			return err
		}
		if err := guardTransferLeg(current); err != nil {
			return err
		}
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		removed = current
		return repo.Remove(ctx, id)
	})
	if err != nil {
		log.Error("DeleteTransaction failed", "error", err)
		return err
	}
	log.Info("DeleteTransaction successful")
	s.emit(ctx, &events.TransactionDeleted{TransactionPayload: events.NewTransactionPayload(userID, removed.Domain())})
	return nil
}

// Balance sums completed transactions up to now, per account of userID.
func (s *Service) Balance(ctx context.Context, userID int64) (balances []*dto.AccountBalance, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		balances, err = repo.Balance(ctx, userID, s.now())
		return err
	})
	if err != nil {
		s.logger.Error("Balance failed", "userID", userID, "error", err)
		return nil, err
	}
	return balances, nil
}

func (s *Service) getOwned(
	ctx context.Context,
	uow repository.UnitOfWork,
	userID, id int64,
) (*dto.TransactionRead, error) {
	repo, err := uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	row, err := repo.FindOne(ctx, dto.TransactionFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	accounts, err := uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	if _, err := accounts.FindOwned(ctx, row.AccountID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewAuthorizationError("transaction", id)
		}
		return nil, err
	}
	return row, nil
}

func guardTransferLeg(row *dto.TransactionRead) error {
	if !row.Domain().BelongsToTransfer() {
		return nil
	}
	return domain.NewValidationError(CodeTransferLeg, "id",
		fmt.Sprintf("transaction #%d belongs to transfer #%d", row.ID, *row.TransferID))
}

func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, event); err != nil {
		s.logger.Error("event emit failed", "type", event.Type(), "error", err)
	}
}
