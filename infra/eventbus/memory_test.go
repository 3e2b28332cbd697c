package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEventBusDispatch(t *testing.T) {
	bus := NewWithMemory(slog.Default())

	var got []int64
	bus.Register(events.EventTypeTransferCreated, func(ctx context.Context, e events.Event) error {
		got = append(got, e.(*events.TransferCreated).TransferID)
		return nil
	})
	bus.Register(events.EventTypeTransferCreated, func(ctx context.Context, e events.Event) error {
		return errors.New("boom")
	})
	bus.Register(events.EventTypeTransferCreated, func(ctx context.Context, e events.Event) error {
		panic("handler exploded")
	})
	bus.Register(events.EventTypeTransferDeleted, func(ctx context.Context, e events.Event) error {
		t.Fatal("wrong handler invoked")
		return nil
	})

	evt := &events.TransferCreated{TransferPayload: events.TransferPayload{TransferID: 5}}
	require.NoError(t, bus.Emit(context.Background(), evt))

	assert.Equal(t, []int64{5}, got)
	assert.Len(t, bus.Published(), 1)

	bus.ClearPublished()
	assert.Empty(t, bus.Published())
}

func TestEnvelopeRoundTrip(t *testing.T) {
	raw, err := encodeEnvelope(&events.TransferDeleted{TransferPayload: events.TransferPayload{TransferID: 3, Ammount: "10.00"}})
	require.NoError(t, err)

	evt, err := decodeEnvelope(raw)
	require.NoError(t, err)
	deleted, ok := evt.(*events.TransferDeleted)
	require.True(t, ok)
	assert.Equal(t, int64(3), deleted.TransferID)

	_, err = decodeEnvelope([]byte(`{"type":"nope","payload":{}}`))
	assert.Error(t, err)
	_, err = decodeEnvelope([]byte(`not json`))
	assert.Error(t, err)
}

func TestMemoryEventBusKeepsRecentEvents(t *testing.T) {
	bus := NewWithMemory(slog.Default())
	bus.keep = 3

	for id := int64(1); id <= 5; id++ {
		require.NoError(t, bus.Emit(context.Background(), &events.TransferCreated{TransferPayload: events.TransferPayload{TransferID: id}}))
	}

	published := bus.Published()
	require.Len(t, published, 3)
	for i, want := range []int64{3, 4, 5} {
		assert.Equal(t, want, published[i].(*events.TransferCreated).TransferID)
	}
}
