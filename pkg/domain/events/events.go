// Package events defines the notifications emitted after ledger writes commit.
package events

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/transaction"
	"github.com/amirasaad/ledger/pkg/domain/transfer"
)

type EventType string

func (t EventType) String() string { return string(t) }

const (
	EventTypeTransferCreated    EventType = "transfer.created"
	EventTypeTransferUpdated    EventType = "transfer.updated"
	EventTypeTransferDeleted    EventType = "transfer.deleted"
	EventTypeTransactionSaved   EventType = "transaction.saved"
	EventTypeTransactionDeleted EventType = "transaction.deleted"
)

// Event is anything the bus can carry.
type Event interface {
	Type() EventType
}

// TransferPayload is the body shared by every transfer event.
type TransferPayload struct {
	TransferID    int64     `json:"transfer_id"`
	UserID        int64     `json:"user_id"`
	OriginID      int64     `json:"acc_ori_id"`
	DestinationID int64     `json:"acc_dest_id"`
	Ammount       string    `json:"ammount"`
	Date          time.Time `json:"date"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type TransferCreated struct{ TransferPayload }

func (TransferCreated) Type() EventType { return EventTypeTransferCreated }

type TransferUpdated struct{ TransferPayload }

func (TransferUpdated) Type() EventType { return EventTypeTransferUpdated }

type TransferDeleted struct{ TransferPayload }

func (TransferDeleted) Type() EventType { return EventTypeTransferDeleted }

// TransactionPayload describes a plain transaction write.
type TransactionPayload struct {
	TransactionID int64     `json:"transaction_id"`
	UserID        int64     `json:"user_id"`
	AccountID     int64     `json:"acc_id"`
	Ammount       string    `json:"ammount"`
	TxType        string    `json:"type"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type TransactionSaved struct{ TransactionPayload }

func (TransactionSaved) Type() EventType { return EventTypeTransactionSaved }

type TransactionDeleted struct{ TransactionPayload }

func (TransactionDeleted) Type() EventType { return EventTypeTransactionDeleted }

// EventTypes maps a wire type to a constructor, used by transports that
// decode events from bytes.
var EventTypes = map[EventType]func() Event{
	EventTypeTransferCreated:    func() Event { return &TransferCreated{} },
	EventTypeTransferUpdated:    func() Event { return &TransferUpdated{} },
	EventTypeTransferDeleted:    func() Event { return &TransferDeleted{} },
	EventTypeTransactionSaved:   func() Event { return &TransactionSaved{} },
	EventTypeTransactionDeleted: func() Event { return &TransactionDeleted{} },
}

// NewTransferPayload snapshots a transfer.
func NewTransferPayload(t transfer.Transfer) TransferPayload {
	return TransferPayload{
		TransferID:    t.ID,
		UserID:        t.UserID,
		OriginID:      t.OriginID,
		DestinationID: t.DestinationID,
		Ammount:       t.Ammount.StringFixed(2),
		Date:          t.Date,
		OccurredAt:    time.Now().UTC(),
	}
}

// NewTransactionPayload snapshots a plain transaction.
func NewTransactionPayload(userID int64, tx transaction.Transaction) TransactionPayload {
	return TransactionPayload{
		TransactionID: tx.ID,
		UserID:        userID,
		AccountID:     tx.AccountID,
		Ammount:       tx.Ammount.StringFixed(2),
		TxType:        string(tx.Type),
		OccurredAt:    time.Now().UTC(),
	}
}
