package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect the configured event bus",
	}

	var timeout time.Duration
	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "Emit a ping event and wait until it is delivered back",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return pingBus(ctx, cmd.OutOrStdout(), cfg, slog.Default())
		},
	}
	pingCmd.Flags().DurationVar(&timeout, "timeout",
		config.GetEnvAsDuration("LEDGER_CLI_PING_TIMEOUT", 30*time.Second), "How long to wait for delivery")

	eventsCmd.AddCommand(pingCmd)
	return eventsCmd
}

// pingBus round-trips a TransactionSaved ping through the bus selected by cfg.
func pingBus(ctx context.Context, out io.Writer, cfg *config.App, logger *slog.Logger) error {
	bus, err := initializer.NewEventBus(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if closer, ok := bus.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	sentAt := time.Now().UTC()
	delivered := make(chan struct{})
	bus.Register(events.EventTypeTransactionSaved, func(_ context.Context, evt events.Event) error {
		saved, ok := evt.(*events.TransactionSaved)
		if ok && saved.OccurredAt.Equal(sentAt) {
			select {
			case <-delivered:
			default:
				close(delivered)
			}
		}
		return nil
	})

	started := time.Now()
	if err := bus.Emit(ctx, &events.TransactionSaved{TransactionPayload: events.TransactionPayload{
		Ammount:    "0.00",
		TxType:     "ping",
		OccurredAt: sentAt,
	}}); err != nil {
		return fmt.Errorf("emit ping: %w", err)
	}

	select {
	case <-delivered:
		fmt.Fprintf(out, "%s %T round trip in %s\n", color.GreenString("ok"), bus, time.Since(started).Round(time.Millisecond))
		return nil
	case <-ctx.Done():
		return fmt.Errorf("ping not delivered through %T: %w", bus, ctx.Err())
	}
}
