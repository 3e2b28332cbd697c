package account

import (
	"strings"

	"github.com/amirasaad/ledger/pkg/domain"
)

// Account is a named bucket of transactions owned by one user.
type Account struct {
	ID     int64
	Name   string
	UserID int64
}

// New returns an unsaved account for userID.
func New(userID int64, name string) (*Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Required(domain.CodeNameRequired, "name", "name")
	}
	return &Account{Name: name, UserID: userID}, nil
}

// OwnedBy reports whether userID owns the account.
func (a Account) OwnedBy(userID int64) bool {
	return a.UserID == userID
}
