package user

import (
	"strings"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/utils"
)

// User owns accounts. Passwd holds the bcrypt hash, never the plain text.
type User struct {
	ID     int64
	Name   string
	Mail   string
	Passwd string
}

// New validates the signup fields and hashes the password.
func New(name, mail, passwd string) (*User, error) {
	name = strings.TrimSpace(name)
	mail = strings.TrimSpace(mail)
	if name == "" {
		return nil, domain.Required(domain.CodeNameRequired, "name", "name")
	}
	if mail == "" {
		return nil, domain.Required(domain.CodeMailRequired, "mail", "mail")
	}
	if !utils.IsEmail(mail) {
		return nil, domain.NewValidationError(domain.CodeMailInvalid, "mail", "invalid mail")
	}
	if passwd == "" {
		return nil, domain.Required(domain.CodePasswdRequired, "passwd", "passwd")
	}
	hash, err := utils.HashPassword(passwd)
	if err != nil {
		return nil, err
	}
	return &User{Name: name, Mail: mail, Passwd: hash}, nil
}

// CheckPassword reports whether passwd matches the stored hash.
func (u User) CheckPassword(passwd string) bool {
	return utils.CheckPasswordHash(passwd, u.Passwd)
}
