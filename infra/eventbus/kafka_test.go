//go:build kafka

package eventbus

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testcontainerskafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

// setupKafkaBus starts a single-node Kafka container and returns a bus
// connected to it.
func setupKafkaBus(tb testing.TB) *KafkaEventBus {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	container, err := testcontainerskafka.Run(ctx, "confluentinc/confluent-local:7.5.0")
	if err != nil {
		tb.Fatalf("failed to start kafka container: %v", err)
	}
	tb.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(tb, err)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	bus, err := NewWithKafka(ctx, brokers, "ledger.test.events", "ledger-test", logger)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = bus.Close() })
	return bus
}

func TestKafkaBusHandlerReceivesEvent(t *testing.T) {
	bus := setupKafkaBus(t)

	received := make(chan *events.TransferDeleted, 1)
	bus.Register(events.EventTypeTransferDeleted, func(ctx context.Context, e events.Event) error {
		received <- e.(*events.TransferDeleted)
		return nil
	})
	bus.Register(events.EventTypeTransferCreated, func(ctx context.Context, e events.Event) error {
		t.Errorf("unexpected %s delivered", e.Type())
		return nil
	})

	err := bus.Emit(context.Background(), &events.TransferDeleted{
		TransferPayload: events.TransferPayload{TransferID: 41, Ammount: "12.50"},
	})
	require.NoError(t, err)

	select {
	case got := <-received:
		assert.Equal(t, int64(41), got.TransferID)
		assert.Equal(t, "12.50", got.Ammount)
	case <-time.After(30 * time.Second):
		t.Fatal("handler did not receive event in time")
	}
}

func TestKafkaBusUnreachableBroker(t *testing.T) {
	_, err := NewWithKafka(context.Background(), []string{"127.0.0.1:1"}, "ledger.test.events", "ledger-test", slog.Default())
	assert.Error(t, err)
}
