package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorKind(t *testing.T) {
	err := fmt.Errorf("save transaction: %w", Required(CodeDescriptionRequired, "description", "description"))

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrForbidden)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, CodeDescriptionRequired, verr.Code)
	assert.Equal(t, "description is a required attribute", verr.Error())
}

func TestNotOwned(t *testing.T) {
	err := NotOwned("transfer_id", 10002)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, CodeNotOwned, err.Code)
	assert.Equal(t, "account #10002 does not belong to the user", err.Error())
}

func TestAuthorizationErrorKind(t *testing.T) {
	err := fmt.Errorf("get transfer: %w", NewAuthorizationError("transfer", 7))

	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Equal(t, "get transfer: this resource does not belong to the user", err.Error())
}
