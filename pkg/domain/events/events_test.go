package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/domain/transfer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypesDecode(t *testing.T) {
	tr := transfer.Transfer{
		ID:            9,
		UserID:        1,
		OriginID:      10000,
		DestinationID: 10001,
		Ammount:       decimal.NewFromInt(100),
		Date:          time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(events.TransferCreated{TransferPayload: events.NewTransferPayload(tr)})
	require.NoError(t, err)

	ctor, ok := events.EventTypes[events.EventTypeTransferCreated]
	require.True(t, ok)
	evt := ctor()
	require.NoError(t, json.Unmarshal(raw, evt))

	created, ok := evt.(*events.TransferCreated)
	require.True(t, ok)
	assert.Equal(t, int64(9), created.TransferID)
	assert.Equal(t, "100.00", created.Ammount)
	assert.Equal(t, events.EventTypeTransferCreated, created.Type())
}

func TestEveryTypeRegistered(t *testing.T) {
	for eventType, ctor := range events.EventTypes {
		assert.Equal(t, eventType, ctor().Type())
	}
}
