// Package transfer models a movement of money between two accounts of the
// same user. A transfer owns exactly two transaction rows, an outflow on the
// origin and an inflow on the destination, both carrying the transfer id.
package transfer

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/transaction"
	"github.com/shopspring/decimal"
)

// Transfer is the aggregate root. Its ID is the correlation id stored on both legs.
type Transfer struct {
	ID            int64
	Description   string
	Date          time.Time
	Ammount       decimal.Decimal
	OriginID      int64
	DestinationID int64
	UserID        int64
}

// Command is a create or update request. Nil means the field was not sent.
type Command struct {
	Description   *string
	Date          *time.Time
	Ammount       *decimal.Decimal
	OriginID      *int64
	DestinationID *int64
}

// Validate runs the field checks that need no storage, in order, and
// returns the first failure. Account ownership is checked by the caller.
func (c Command) Validate() error {
	if c.Description == nil || strings.TrimSpace(*c.Description) == "" {
		return domain.Required(domain.CodeDescriptionRequired, "description", "description")
	}
	if err := transaction.CheckAmmount(c.Ammount); err != nil {
		return err
	}
	if c.Date == nil || c.Date.IsZero() {
		return domain.Required(domain.CodeDateRequired, "date", "date")
	}
	if c.OriginID == nil || *c.OriginID == 0 {
		return domain.Required(domain.CodeOriginRequired, "acc_ori_id", "origin account")
	}
	if c.DestinationID == nil || *c.DestinationID == 0 {
		return domain.Required(domain.CodeDestinationRequired, "acc_dest_id", "destination account")
	}
	if *c.OriginID == *c.DestinationID {
		return domain.NewValidationError(domain.CodeSelfTransfer, "acc_dest_id", "cannot transfer an account to itself")
	}
	return nil
}

// New validates cmd and returns an unsaved transfer owned by userID.
// The stored amount is always positive.
func New(userID int64, cmd Command) (*Transfer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return &Transfer{
		Description:   *cmd.Description,
		Date:          *cmd.Date,
		Ammount:       cmd.Ammount.Abs(),
		OriginID:      *cmd.OriginID,
		DestinationID: *cmd.DestinationID,
		UserID:        userID,
	}, nil
}

// Apply copies a validated command onto an existing transfer, keeping its id and owner.
func (t *Transfer) Apply(cmd Command) error {
	next, err := New(t.UserID, cmd)
	if err != nil {
		return err
	}
	next.ID = t.ID
	*t = *next
	return nil
}

// Outflow is the leg debiting the origin account.
func (t Transfer) Outflow() transaction.Transaction {
	id := t.ID
	return transaction.Transaction{
		Description: fmt.Sprintf("Transfer to acc #%d", t.DestinationID),
		Date:        t.Date,
		Ammount:     t.Ammount.Abs().Neg(),
		Type:        transaction.Outflow,
		AccountID:   t.OriginID,
		TransferID:  &id,
		Status:      true,
	}
}

// Inflow is the leg crediting the destination account.
func (t Transfer) Inflow() transaction.Transaction {
	id := t.ID
	return transaction.Transaction{
		Description: fmt.Sprintf("Transfer from acc #%d", t.OriginID),
		Date:        t.Date,
		Ammount:     t.Ammount.Abs(),
		Type:        transaction.Inflow,
		AccountID:   t.DestinationID,
		TransferID:  &id,
		Status:      true,
	}
}

// Legs returns the outflow and the inflow, in that order.
func (t Transfer) Legs() [2]transaction.Transaction {
	return [2]transaction.Transaction{t.Outflow(), t.Inflow()}
}
