package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newService(t *testing.T) (*auth.Service, testutils.Fixture) {
	t.Helper()
	db := testutils.NewTestDB(t)
	fx := testutils.Seed(t, db)
	cfg := &config.Jwt{Secret: secret, Expiry: time.Hour}
	return auth.NewWithJWT(infra.NewUoW(db), cfg, testutils.Logger()), fx
}

func TestLogin(t *testing.T) {
	svc, fx := newService(t)
	ctx := context.Background()

	u, err := svc.Login(ctx, fx.Owner.Mail, testutils.Password)
	require.NoError(t, err)
	assert.Equal(t, fx.Owner.ID, u.ID)

	_, err = svc.Login(ctx, fx.Owner.Mail, "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Login(ctx, "ghost@mail.com", testutils.Password)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGenerateToken(t *testing.T) {
	svc, fx := newService(t)

	token, err := svc.GenerateToken(&dto.UserRead{ID: fx.Owner.ID, Name: fx.Owner.Name, Mail: fx.Owner.Mail})
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &auth.Claims{}, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(*auth.Claims)
	require.True(t, ok)
	assert.Equal(t, fx.Owner.ID, claims.ID)
	assert.Equal(t, fx.Owner.Mail, claims.Mail)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	id, err := auth.CurrentUserID(parsed)
	require.NoError(t, err)
	assert.Equal(t, fx.Owner.ID, id)
}

func TestCurrentUserID(t *testing.T) {
	tests := []struct {
		name    string
		token   *jwt.Token
		want    int64
		wantErr bool
	}{
		{"nil token", nil, 0, true},
		{"map claims", &jwt.Token{Claims: jwt.MapClaims{"id": float64(7)}}, 7, false},
		{"map claims without id", &jwt.Token{Claims: jwt.MapClaims{"name": "x"}}, 0, true},
		{"typed claims", &jwt.Token{Claims: &auth.Claims{ID: 3}}, 3, false},
		{"zero id", &jwt.Token{Claims: &auth.Claims{}}, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := auth.CurrentUserID(tc.token)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnauthorized)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}
