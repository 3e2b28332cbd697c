package common

import (
	"encoding/json"
	"time"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/shopspring/decimal"
)

// OptionalID is an id field that remembers whether its key was present in
// the body, so `"transfer_id": null` differs from an omitted transfer_id.
type OptionalID struct {
	Value *int64
	Set   bool
}

func (o *OptionalID) UnmarshalJSON(raw []byte) error {
	o.Set = true
	o.Value = nil
	if string(raw) == "null" {
		return nil
	}
	var id int64
	if err := json.Unmarshal(raw, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}

func (o OptionalID) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

// TransactionInput is the body of transaction and transfer writes.
// When the transfer_id key is present, even as null, the body describes a
// transfer and transfer_id is the destination account id.
type TransactionInput struct {
	Description *string          `json:"description" validate:"omitempty,max=255" example:"Regular transfer"`
	Date        *time.Time       `json:"date" example:"2021-01-01T00:00:00Z"`
	Ammount     *decimal.Decimal `json:"ammount" swaggertype:"number" example:"100"`
	Type        *string          `json:"type" example:"I"`
	AccID       *int64           `json:"acc_id" example:"10000"`
	TransferID  OptionalID       `json:"transfer_id" swaggertype:"integer" example:"10001"`
	Status      *bool            `json:"status" example:"true"`
}

// IsTransfer reports whether the body asks for a transfer.
func (in TransactionInput) IsTransfer() bool {
	return in.TransferID.Set
}

// TransactionCreate converts the body into a plain transaction.
func (in TransactionInput) TransactionCreate() dto.TransactionCreate {
	return dto.TransactionCreate{
		Description: in.Description,
		Date:        in.Date,
		Ammount:     in.Ammount,
		Type:        in.Type,
		AccountID:   in.AccID,
		Status:      in.Status,
	}
}

// TransferCommand converts the body into a transfer from acc_id to transfer_id.
func (in TransactionInput) TransferCommand() dto.TransferCommand {
	return dto.TransferCommand{
		Description:   in.Description,
		Date:          in.Date,
		Ammount:       in.Ammount,
		OriginID:      in.AccID,
		DestinationID: in.TransferID.Value,
	}
}

// TransactionResponse is a stored ledger row.
type TransactionResponse struct {
	ID          int64     `json:"id" example:"1"`
	Description string    `json:"description" example:"Transfer to acc #10001"`
	Date        time.Time `json:"date"`
	Ammount     string    `json:"ammount" example:"-100.00"`
	Type        string    `json:"type" example:"O"`
	AccID       int64     `json:"acc_id" example:"10000"`
	TransferID  *int64    `json:"transfer_id" example:"1"`
	Status      bool      `json:"status" example:"true"`
}

// NewTransactionResponse renders row with a fixed two decimal ammount.
func NewTransactionResponse(row *dto.TransactionRead) TransactionResponse {
	return TransactionResponse{
		ID:          row.ID,
		Description: row.Description,
		Date:        row.Date.UTC(),
		Ammount:     row.Ammount.StringFixed(2),
		Type:        row.Type,
		AccID:       row.AccountID,
		TransferID:  row.TransferID,
		Status:      row.Status,
	}
}

// NewTransactionListResponse renders rows, never as null.
func NewTransactionListResponse(rows []*dto.TransactionRead) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, NewTransactionResponse(row))
	}
	return out
}

// TransferResponse is a stored transfer. Its id is the transfer_id of both legs.
type TransferResponse struct {
	ID          int64     `json:"id" example:"1"`
	Description string    `json:"description" example:"Regular transfer"`
	Date        time.Time `json:"date"`
	Ammount     string    `json:"ammount" example:"100.00"`
	AccOriID    int64     `json:"acc_ori_id" example:"10000"`
	AccDestID   int64     `json:"acc_dest_id" example:"10001"`
	UserID      int64     `json:"user_id" example:"1"`
}

func NewTransferResponse(t *dto.TransferRead) TransferResponse {
	return TransferResponse{
		ID:          t.ID,
		Description: t.Description,
		Date:        t.Date.UTC(),
		Ammount:     t.Ammount.StringFixed(2),
		AccOriID:    t.OriginID,
		AccDestID:   t.DestinationID,
		UserID:      t.UserID,
	}
}

func NewTransferListResponse(transfers []*dto.TransferRead) []TransferResponse {
	out := make([]TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, NewTransferResponse(t))
	}
	return out
}

// AccountResponse is an account of the current user.
type AccountResponse struct {
	ID     int64  `json:"id" example:"10000"`
	Name   string `json:"name" example:"Wallet"`
	UserID int64  `json:"user_id" example:"1"`
}

func NewAccountResponse(a *dto.AccountRead) AccountResponse {
	return AccountResponse{ID: a.ID, Name: a.Name, UserID: a.UserID}
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"User #1"`
	Mail string `json:"mail" example:"user1@mail.com"`
}

func NewUserResponse(u *dto.UserRead) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Mail: u.Mail}
}

// BalanceResponse is the completed total of one account.
type BalanceResponse struct {
	ID  int64  `json:"id" example:"10000"`
	Sum string `json:"sum" example:"0.00"`
}

func NewBalanceResponse(balances []*dto.AccountBalance) []BalanceResponse {
	out := make([]BalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, BalanceResponse{ID: b.AccountID, Sum: b.Sum.StringFixed(2)})
	}
	return out
}
