package dto

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/transfer"
	"github.com/shopspring/decimal"
)

// TransferRead is the stored shape of a transfer.
type TransferRead struct {
	ID            int64
	Description   string
	Date          time.Time
	Ammount       decimal.Decimal
	OriginID      int64
	DestinationID int64
	UserID        int64
}

// Domain converts the stored transfer into the aggregate.
func (r TransferRead) Domain() transfer.Transfer {
	return transfer.Transfer{
		ID:            r.ID,
		Description:   r.Description,
		Date:          r.Date,
		Ammount:       r.Ammount,
		OriginID:      r.OriginID,
		DestinationID: r.DestinationID,
		UserID:        r.UserID,
	}
}

// TransferCreate is a validated transfer ready to insert.
type TransferCreate struct {
	Description   string
	Date          time.Time
	Ammount       decimal.Decimal
	OriginID      int64
	DestinationID int64
	UserID        int64
}

// TransferUpdate overwrites every mutable field of a transfer.
type TransferUpdate struct {
	Description   string
	Date          time.Time
	Ammount       decimal.Decimal
	OriginID      int64
	DestinationID int64
}

// TransferCommand is the caller input for creating or updating a transfer.
type TransferCommand struct {
	Description   *string
	Date          *time.Time
	Ammount       *decimal.Decimal
	OriginID      *int64
	DestinationID *int64
}

// Command converts the input into its domain form.
func (c TransferCommand) Command() transfer.Command {
	return transfer.Command{
		Description:   c.Description,
		Date:          c.Date,
		Ammount:       c.Ammount,
		OriginID:      c.OriginID,
		DestinationID: c.DestinationID,
	}
}
