// Package audit logs every committed ledger write.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
)

// HandleEvent returns a handler writing one structured line per event.
func HandleEvent(logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With("handler", "audit.HandleEvent", "event_type", e.Type())
		switch evt := e.(type) {
		case *events.TransferCreated:
			logTransfer(ctx, log, evt.TransferPayload)
		case *events.TransferUpdated:
			logTransfer(ctx, log, evt.TransferPayload)
		case *events.TransferDeleted:
			logTransfer(ctx, log, evt.TransferPayload)
		case *events.TransactionSaved:
			logTransaction(ctx, log, evt.TransactionPayload)
		case *events.TransactionDeleted:
			logTransaction(ctx, log, evt.TransactionPayload)
		default:
			log.Error("❌ [DISCARD] Unexpected event type", "event", e)
			return fmt.Errorf("unexpected event type: %T", e)
		}
		return nil
	}
}

func logTransfer(ctx context.Context, log *slog.Logger, p events.TransferPayload) {
	log.InfoContext(ctx, "📝 [AUDIT] transfer",
		"transfer_id", p.TransferID,
		"user_id", p.UserID,
		"acc_ori_id", p.OriginID,
		"acc_dest_id", p.DestinationID,
		"ammount", p.Ammount,
	)
}

func logTransaction(ctx context.Context, log *slog.Logger, p events.TransactionPayload) {
	log.InfoContext(ctx, "📝 [AUDIT] transaction",
		"transaction_id", p.TransactionID,
		"user_id", p.UserID,
		"acc_id", p.AccountID,
		"type", p.TxType,
		"ammount", p.Ammount,
	)
}
