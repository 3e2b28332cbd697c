package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when the caller is not authenticated
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when a user is not allowed to touch a resource
	ErrForbidden = errors.New("forbidden")
)

// Validation codes. Stable identifiers clients can branch on.
const (
	CodeDescriptionRequired = "description_required"
	CodeAmmountRequired     = "ammount_required"
	CodeAmmountPrecision    = "ammount_precision"
	CodeAmmountTooLarge     = "ammount_too_large"
	CodeDateRequired        = "date_required"
	CodeAccountRequired     = "account_required"
	CodeTypeRequired        = "type_required"
	CodeTypeInvalid         = "type_invalid"
	CodeOriginRequired      = "origin_required"
	CodeDestinationRequired = "destination_required"
	CodeSelfTransfer        = "self_transfer"
	CodeNotOwned            = "not_owned"
	CodeAccountInUse        = "account_in_use"
	CodeNameRequired        = "name_required"
	CodeMailRequired        = "mail_required"
	CodeMailInvalid         = "mail_invalid"
	CodePasswdRequired      = "passwd_required"
	CodeMailTaken           = "mail_taken"
	CodeInvalid             = "invalid"
)

// ValidationError reports a rejected input. It matches ErrValidation.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError builds a ValidationError.
func NewValidationError(code, field, message string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Message: message}
}

// Required reports a missing attribute.
func Required(code, field, attribute string) *ValidationError {
	return NewValidationError(code, field, attribute+" is a required attribute")
}

// NotOwned reports a write that references an account of another user.
func NotOwned(field string, accountID int64) *ValidationError {
	return NewValidationError(CodeNotOwned, field,
		fmt.Sprintf("account #%d does not belong to the user", accountID))
}

// AuthorizationError reports access to a resource owned by someone else.
// It matches ErrForbidden.
type AuthorizationError struct {
	Resource string
	ID       int64
}

func (e *AuthorizationError) Error() string { return "this resource does not belong to the user" }

func (e *AuthorizationError) Is(target error) bool { return target == ErrForbidden }

// NewAuthorizationError builds an AuthorizationError.
func NewAuthorizationError(resource string, id int64) *AuthorizationError {
	return &AuthorizationError{Resource: resource, ID: id}
}
