package account_test

import (
	"testing"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	acc, err := account.New(10, "  Wallet ")
	require.NoError(t, err)
	assert.Equal(t, "Wallet", acc.Name)
	assert.True(t, acc.OwnedBy(10))
	assert.False(t, acc.OwnedBy(11))

	_, err = account.New(10, " ")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.EqualError(t, err, "name is a required attribute")
}
