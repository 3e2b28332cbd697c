// Package model holds the GORM row types shared by the repositories.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a row of users.
type User struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"size:255;not null"`
	Mail   string `gorm:"size:255;uniqueIndex;not null"`
	Passwd string `gorm:"size:255;not null"`
}

func (User) TableName() string { return "users" }

// Account is a row of accounts.
type Account struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"size:255;not null"`
	UserID int64  `gorm:"column:user_id;not null;index"`
}

func (Account) TableName() string { return "accounts" }

// Transfer is a row of transfers. Its id is stored on both legs.
type Transfer struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Description string          `gorm:"size:255;not null"`
	Date        time.Time       `gorm:"not null"`
	Ammount     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	AccOriID    int64           `gorm:"column:acc_ori_id;not null"`
	AccDestID   int64           `gorm:"column:acc_dest_id;not null"`
	UserID      int64           `gorm:"column:user_id;not null;index"`
}

func (Transfer) TableName() string { return "transfers" }

// Transaction is a row of transactions.
type Transaction struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Description string          `gorm:"size:255;not null"`
	Date        time.Time       `gorm:"not null"`
	Ammount     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Type        string          `gorm:"size:1;not null"`
	AccID       int64           `gorm:"column:acc_id;not null;index"`
	TransferID  *int64          `gorm:"column:transfer_id;index"`
	Status      bool            `gorm:"not null;default:false"`
}

func (Transaction) TableName() string { return "transactions" }

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{&User{}, &Account{}, &Transfer{}, &Transaction{}}
}
