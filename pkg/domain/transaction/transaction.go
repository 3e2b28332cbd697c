// Package transaction holds the ledger row model: a signed amount booked on
// one account, typed as an inflow or an outflow.
package transaction

import (
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/shopspring/decimal"
)

// Type tells whether a transaction moves money into or out of its account.
type Type string

const (
	Inflow  Type = "I"
	Outflow Type = "O"
)

// Ammounts are stored as numeric(15,2).
const ammountScale = 2

var maxAmmount = decimal.New(1, 13)

// CheckAmmount rejects a missing or zero ammount, one with more than two
// decimal places, and one whose magnitude does not fit numeric(15,2).
func CheckAmmount(ammount *decimal.Decimal) error {
	if ammount == nil || ammount.IsZero() {
		return domain.Required(domain.CodeAmmountRequired, "ammount", "ammount")
	}
	if !ammount.Equal(ammount.Round(ammountScale)) {
		return domain.NewValidationError(domain.CodeAmmountPrecision, "ammount",
			"ammount must have at most 2 decimal places")
	}
	if ammount.Abs().GreaterThanOrEqual(maxAmmount) {
		return domain.NewValidationError(domain.CodeAmmountTooLarge, "ammount", "ammount is too large")
	}
	return nil
}

// Valid reports whether t is one of the known types.
func (t Type) Valid() bool {
	return t == Inflow || t == Outflow
}

// Transaction is a single ledger row.
// An inflow never carries a negative amount and an outflow never a positive one.
type Transaction struct {
	ID          int64
	Description string
	Date        time.Time
	Ammount     decimal.Decimal
	Type        Type
	AccountID   int64
	TransferID  *int64
	Status      bool
}

// Draft carries caller supplied fields. Nil means the field was not sent.
type Draft struct {
	Description *string
	Date        *time.Time
	Ammount     *decimal.Decimal
	Type        *string
	AccountID   *int64
	TransferID  *int64
	Status      *bool
}

// Validate checks required fields in a fixed order and returns the first failure.
func (d Draft) Validate() error {
	if d.Description == nil || strings.TrimSpace(*d.Description) == "" {
		return domain.Required(domain.CodeDescriptionRequired, "description", "description")
	}
	if err := CheckAmmount(d.Ammount); err != nil {
		return err
	}
	if d.Date == nil || d.Date.IsZero() {
		return domain.Required(domain.CodeDateRequired, "date", "date")
	}
	if d.AccountID == nil || *d.AccountID == 0 {
		return domain.Required(domain.CodeAccountRequired, "acc_id", "account")
	}
	if d.Type == nil || *d.Type == "" {
		return domain.Required(domain.CodeTypeRequired, "type", "type")
	}
	if !Type(*d.Type).Valid() {
		return domain.NewValidationError(domain.CodeTypeInvalid, "type", "invalid type")
	}
	return nil
}

// Build validates the draft and returns the normalised transaction.
func (d Draft) Build() (*Transaction, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	t := Type(*d.Type)
	tx := &Transaction{
		Description: *d.Description,
		Date:        *d.Date,
		Ammount:     NormalizeSign(t, *d.Ammount),
		Type:        t,
		AccountID:   *d.AccountID,
		TransferID:  d.TransferID,
	}
	if d.Status != nil {
		tx.Status = *d.Status
	}
	return tx, nil
}

// NormalizeSign makes the sign of ammount agree with t. A mismatch is
// flipped, never rejected.
func NormalizeSign(t Type, ammount decimal.Decimal) decimal.Decimal {
	if (t == Inflow && ammount.IsNegative()) || (t == Outflow && ammount.IsPositive()) {
		return ammount.Neg()
	}
	return ammount
}

// BelongsToTransfer reports whether the row is one leg of a transfer.
func (t Transaction) BelongsToTransfer() bool {
	return t.TransferID != nil
}
