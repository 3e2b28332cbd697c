// Package reconcile re-reads a transfer after it is written and reports
// legs that no longer mirror each other.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/shopspring/decimal"
)

// ErrUnbalanced reports a transfer whose legs are not one outflow and one
// inflow of opposite ammounts.
var ErrUnbalanced = errors.New("transfer legs are unbalanced")

// HandleTransferWritten checks the legs of a created or updated transfer.
func HandleTransferWritten(uow repository.UnitOfWork, logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With("handler", "reconcile.HandleTransferWritten", "event_type", e.Type())

		var p events.TransferPayload
		switch evt := e.(type) {
		case *events.TransferCreated:
			p = evt.TransferPayload
		case *events.TransferUpdated:
			p = evt.TransferPayload
		default:
			log.Error("❌ [DISCARD] Unexpected event type", "event", e)
			return fmt.Errorf("unexpected event type: %T", e)
		}
		log = log.With("transfer_id", p.TransferID)

		repo, err := uow.TransactionRepository()
		if err != nil {
			return fmt.Errorf("failed to get transaction repo: %w", err)
		}
		legs, err := repo.Find(ctx, p.UserID, dto.TransactionFilter{TransferID: &p.TransferID})
		if err != nil {
			log.Error("❌ [ERROR] Failed to load legs", "error", err)
			return err
		}
		if err := Check(legs); err != nil {
			log.Error("⚠️ [UNBALANCED] Transfer legs do not mirror", "legs", len(legs), "error", err)
			return err
		}
		log.Debug("✅ [OK] Transfer legs balanced")
		return nil
	}
}

// Check verifies that legs hold exactly one outflow and one inflow that sum to zero.
func Check(legs []*dto.TransactionRead) error {
	if len(legs) != 2 {
		return fmt.Errorf("%w: %d legs", ErrUnbalanced, len(legs))
	}
	seen := map[string]bool{}
	sum := decimal.Zero
	for _, leg := range legs {
		seen[leg.Type] = true
		sum = sum.Add(leg.Ammount)
	}
	if !seen["I"] || !seen["O"] {
		return fmt.Errorf("%w: types %v", ErrUnbalanced, seen)
	}
	if !sum.IsZero() {
		return fmt.Errorf("%w: sum %s", ErrUnbalanced, sum.StringFixed(2))
	}
	return nil
}
