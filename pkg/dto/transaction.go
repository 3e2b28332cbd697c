package dto

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/transaction"
	"github.com/shopspring/decimal"
)

// TransactionRead is the stored shape of a ledger row.
type TransactionRead struct {
	ID          int64
	Description string
	Date        time.Time
	Ammount     decimal.Decimal
	Type        string
	AccountID   int64
	TransferID  *int64
	Status      bool
}

// TransactionCreate carries caller input for a new row. Nil fields were not sent.
type TransactionCreate struct {
	Description *string
	Date        *time.Time
	Ammount     *decimal.Decimal
	Type        *string
	AccountID   *int64
	TransferID  *int64
	Status      *bool
}

// Draft converts the input into its domain form.
func (c TransactionCreate) Draft() transaction.Draft {
	return transaction.Draft{
		Description: c.Description,
		Date:        c.Date,
		Ammount:     c.Ammount,
		Type:        c.Type,
		AccountID:   c.AccountID,
		TransferID:  c.TransferID,
		Status:      c.Status,
	}
}

// TransactionUpdate lists the fields to overwrite. Nil fields are left alone.
type TransactionUpdate struct {
	Description *string
	Date        *time.Time
	Ammount     *decimal.Decimal
	Type        *string
	AccountID   *int64
	Status      *bool
}

// TransactionFilter narrows a listing by equality on the set fields.
type TransactionFilter struct {
	ID         *int64
	AccountID  *int64
	TransferID *int64
	Type       *string
	Status     *bool
}

// AccountBalance is the running total of one account.
type AccountBalance struct {
	AccountID int64
	Sum       decimal.Decimal
}

// Domain converts a stored row into the domain model.
func (r TransactionRead) Domain() transaction.Transaction {
	return transaction.Transaction{
		ID:          r.ID,
		Description: r.Description,
		Date:        r.Date,
		Ammount:     r.Ammount,
		Type:        transaction.Type(r.Type),
		AccountID:   r.AccountID,
		TransferID:  r.TransferID,
		Status:      r.Status,
	}
}
