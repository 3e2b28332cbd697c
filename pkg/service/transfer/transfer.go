// Package transfer orchestrates transfers between two accounts of one user.
//
// A transfer is stored as a transfer row plus two transaction rows, an
// outflow on the origin and an inflow on the destination, all written in a
// single database transaction. The transfer id is the correlation id
// carried by both legs.
package transfer

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/domain/transaction"
	"github.com/amirasaad/ledger/pkg/domain/transfer"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/repository"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
)

// Service is the transfer orchestrator.
type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	logger *slog.Logger
}

// New creates a transfer service. bus may be nil.
func New(uow repository.UnitOfWork, bus eventbus.Bus, logger *slog.Logger) *Service {
	return &Service{uow: uow, bus: bus, logger: logger}
}

// Create validates cmd and books the transfer with both legs.
//
// Checks run in this order and the first failure is returned: description,
// ammount, date, origin, destination, origin differs from destination,
// destination owned by userID, origin owned by userID.
func (s *Service) Create(
	ctx context.Context,
	userID int64,
	cmd dto.TransferCommand,
) (*dto.TransferRead, error) {
	log := s.logger.With("userID", userID)
	log.Info("CreateTransfer started")

	t, err := transfer.New(userID, cmd.Command())
	if err != nil {
		log.Error("CreateTransfer failed: invalid input", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := checkAccounts(ctx, uow, userID, *t); err != nil {
			return err
		}
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		created, err := transfers.Create(ctx, dto.TransferCreate{
			Description:   t.Description,
			Date:          t.Date,
			Ammount:       t.Ammount,
			OriginID:      t.OriginID,
			DestinationID: t.DestinationID,
			UserID:        t.UserID,
		})
		if err != nil {
			return err
		}
		t.ID = created.ID

		txs, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		for _, leg := range t.Legs() {
			if _, err := txs.Save(ctx, legCreate(leg)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("CreateTransfer failed", "error", err)
		return nil, err
	}
	log.Info("CreateTransfer successful", "transferID", t.ID)
	s.emit(ctx, &events.TransferCreated{TransferPayload: events.NewTransferPayload(*t)})
	return toRead(*t), nil
}

// List returns the transfers of userID.
func (s *Service) List(ctx context.Context, userID int64) (transfers []*dto.TransferRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		transfers, err = repo.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		s.logger.Error("ListTransfers failed", "userID", userID, "error", err)
		return nil, err
	}
	return transfers, nil
}

// Get returns transfer id. A missing transfer is domain.ErrNotFound and a
// transfer of another user is an AuthorizationError.
func (s *Service) Get(ctx context.Context, userID, id int64) (t *dto.TransferRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		t, err = getOwned(ctx, uow, userID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Transactions returns the two legs of transfer id.
func (s *Service) Transactions(ctx context.Context, userID, id int64) (legs []*dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := getOwned(ctx, uow, userID, id); err != nil {
			return err
		}
		legs, err = findLegs(ctx, uow, userID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return legs, nil
}

// Update re-validates cmd with the Create checks and rewrites the transfer
// and both legs in place, keeping every id.
func (s *Service) Update(
	ctx context.Context,
	userID, id int64,
	cmd dto.TransferCommand,
) (*dto.TransferRead, error) {
	log := s.logger.With("userID", userID, "transferID", id)
	log.Info("UpdateTransfer started")

	var t transfer.Transfer
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		current, err := getOwned(ctx, uow, userID, id)
		if err != nil {
			return err
		}
		t = current.Domain()
		if err := t.Apply(cmd.Command()); err != nil {
			return err
		}
		if err := checkAccounts(ctx, uow, userID, t); err != nil {
			return err
		}

		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		if err := transfers.Update(ctx, id, dto.TransferUpdate{
			Description:   t.Description,
			Date:          t.Date,
			Ammount:       t.Ammount,
			OriginID:      t.OriginID,
			DestinationID: t.DestinationID,
		}); err != nil {
			return err
		}
		return rewriteLegs(ctx, uow, userID, t)
	})
	if err != nil {
		log.Error("UpdateTransfer failed", "error", err)
		return nil, err
	}
	log.Info("UpdateTransfer successful")
	s.emit(ctx, &events.TransferUpdated{TransferPayload: events.NewTransferPayload(t)})
	return toRead(t), nil
}

// Delete removes the transfer and both legs.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	log := s.logger.With("userID", userID, "transferID", id)
	log.Info("DeleteTransfer started")

	var removed *dto.TransferRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		current, err := getOwned(ctx, uow, userID, id)
		if err != nil {
			return err
		}
		removed = current
		legs, err := findLegs(ctx, uow, userID, id)
		if err != nil {
			return err
		}
		txs, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		for _, leg := range legs {
			if err := txs.Remove(ctx, leg.ID); err != nil {
				return err
			}
		}
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		return transfers.Delete(ctx, id)
	})
	if err != nil {
		log.Error("DeleteTransfer failed", "error", err)
		return err
	}
	log.Info("DeleteTransfer successful")
	s.emit(ctx, &events.TransferDeleted{TransferPayload: events.NewTransferPayload(removed.Domain())})
	return nil
}

// rewriteLegs points the existing legs at t. A leg that went missing is
// booked again so the pair stays complete.
func rewriteLegs(ctx context.Context, uow repository.UnitOfWork, userID int64, t transfer.Transfer) error {
	legs, err := findLegs(ctx, uow, userID, t.ID)
	if err != nil {
		return err
	}
	txs, err := uow.TransactionRepository()
	if err != nil {
		return err
	}
	byType := make(map[transaction.Type]*dto.TransactionRead, len(legs))
	for _, leg := range legs {
		byType[transaction.Type(leg.Type)] = leg
	}
	for _, want := range t.Legs() {
		existing, ok := byType[want.Type]
		if !ok {
			if _, err := txs.Save(ctx, legCreate(want)); err != nil {
				return err
			}
			continue
		}
		txType := string(want.Type)
		if _, err := txs.Update(ctx, existing.ID, dto.TransactionUpdate{
			Description: &want.Description,
			Date:        &want.Date,
			Ammount:     &want.Ammount,
			Type:        &txType,
			AccountID:   &want.AccountID,
			Status:      &want.Status,
		}); err != nil {
			return err
		}
	}
	return nil
}

func checkAccounts(ctx context.Context, uow repository.UnitOfWork, userID int64, t transfer.Transfer) error {
	accounts, err := uow.AccountRepository()
	if err != nil {
		return err
	}
	if err := accountsvc.CheckOwnership(ctx, accounts, userID, t.DestinationID, "acc_dest_id"); err != nil {
		return err
	}
	return accountsvc.CheckOwnership(ctx, accounts, userID, t.OriginID, "acc_ori_id")
}

func getOwned(ctx context.Context, uow repository.UnitOfWork, userID, id int64) (*dto.TransferRead, error) {
	repo, err := uow.TransferRepository()
	if err != nil {
		return nil, err
	}
	t, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != userID {
		return nil, domain.NewAuthorizationError("transfer", id)
	}
	return t, nil
}

func findLegs(ctx context.Context, uow repository.UnitOfWork, userID, id int64) ([]*dto.TransactionRead, error) {
	txs, err := uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return txs.Find(ctx, userID, dto.TransactionFilter{TransferID: &id})
}

func legCreate(leg transaction.Transaction) dto.TransactionCreate {
	txType := string(leg.Type)
	return dto.TransactionCreate{
		Description: &leg.Description,
		Date:        &leg.Date,
		Ammount:     &leg.Ammount,
		Type:        &txType,
		AccountID:   &leg.AccountID,
		TransferID:  leg.TransferID,
		Status:      &leg.Status,
	}
}

func toRead(t transfer.Transfer) *dto.TransferRead {
	return &dto.TransferRead{
		ID:            t.ID,
		Description:   t.Description,
		Date:          t.Date,
		Ammount:       t.Ammount,
		OriginID:      t.OriginID,
		DestinationID: t.DestinationID,
		UserID:        t.UserID,
	}
}

func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, event); err != nil {
		s.logger.Error("event emit failed", "type", event.Type(), "error", err)
	}
}
