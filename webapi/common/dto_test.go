package common_test

import (
	"encoding/json"
	"testing"

	"github.com/amirasaad/ledger/webapi/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionInputTransferMode(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		isTransfer bool
		dest       *int64
	}{
		{"omitted", `{"acc_id":10000}`, false, nil},
		{"explicit null", `{"acc_id":10000,"transfer_id":null}`, true, nil},
		{"destination", `{"acc_id":10000,"transfer_id":10001}`, true, ptr(int64(10001))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var in common.TransactionInput
			require.NoError(t, json.Unmarshal([]byte(tc.body), &in))
			assert.Equal(t, tc.isTransfer, in.IsTransfer())

			cmd := in.TransferCommand()
			assert.Equal(t, tc.dest, cmd.DestinationID)
			assert.Equal(t, int64(10000), *cmd.OriginID)
		})
	}
}

func TestOptionalIDRejectsNonNumbers(t *testing.T) {
	var in common.TransactionInput
	assert.Error(t, json.Unmarshal([]byte(`{"transfer_id":"abc"}`), &in))
}

func TestOptionalIDMarshal(t *testing.T) {
	raw, err := json.Marshal(common.OptionalID{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))

	raw, err = json.Marshal(common.OptionalID{Value: ptr(int64(7)), Set: true})
	require.NoError(t, err)
	assert.Equal(t, "7", string(raw))
}

func ptr[T any](v T) *T { return &v }
