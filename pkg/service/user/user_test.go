package user_test

import (
	"context"
	"testing"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/service/user"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	db := testutils.NewTestDB(t)
	fx := testutils.Seed(t, db)
	svc := user.New(infra.NewUoW(db), testutils.Logger())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Ada", "ada@mail.com", "secret")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "secret", created.Passwd)
	assert.True(t, utils.CheckPasswordHash("secret", created.Passwd))

	_, err = svc.Create(ctx, "Ada again", "ada@mail.com", "secret")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.CodeMailTaken, verr.Code)

	_, err = svc.Create(ctx, "Owner", fx.Owner.Mail, "secret")
	assert.ErrorIs(t, err, domain.ErrValidation)

	found, err := svc.GetByMail(ctx, "ada@mail.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByMail(ctx, "nobody@mail.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestCreateUserValidation(t *testing.T) {
	db := testutils.NewTestDB(t)
	svc := user.New(infra.NewUoW(db), testutils.Logger())

	tests := []struct {
		name, user, mail, passwd, code string
	}{
		{"missing name", "", "a@mail.com", "x", domain.CodeNameRequired},
		{"missing mail", "A", "", "x", domain.CodeMailRequired},
		{"invalid mail", "A", "not-a-mail", "x", domain.CodeMailInvalid},
		{"missing password", "A", "a@mail.com", "", domain.CodePasswdRequired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.user, tc.mail, tc.passwd)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.code, verr.Code)
		})
	}
}
