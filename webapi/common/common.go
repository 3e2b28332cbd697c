// Package common holds the request binding, error mapping and response
// shapes shared by every ledger handler.
package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"description is a required attribute"`
}

// ErrorResponseJSON writes {"error": message} with status.
func ErrorResponseJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// ErrorToStatusCode maps a domain error kind to its HTTP status.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleError writes err with the status of its kind. Store failures are
// logged and answered with a generic message.
func HandleError(c *fiber.Ctx, err error) error {
	status := ErrorToStatusCode(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s %s failed: %v", c.Method(), c.Path(), err)
		return ErrorResponseJSON(c, status, "internal server error")
	}
	return ErrorResponseJSON(c, status, err.Error())
}

// BindAndValidate parses the JSON body into T and runs its validate tags.
// On failure the 400 response is already written and the returned pointer is nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, validationMessage(err))
	}
	return &input, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is a required attribute", field)
	case "max":
		return fmt.Sprintf("%s is too long", field)
	default:
		return fmt.Sprintf("invalid %s", field)
	}
}

// ParseID reads the positive integer route param name. A bad value writes
// a 400 and returns ok false.
func ParseID(c *fiber.Ctx, name string) (int64, bool, error) {
	id, ok := utils.ParseID(c.Params(name))
	if !ok {
		return 0, false, ErrorResponseJSON(c, fiber.StatusBadRequest, fmt.Sprintf("invalid %s", name))
	}
	return id, true, nil
}

// CurrentUserID returns the id of the authenticated user.
func CurrentUserID(c *fiber.Ctx) (int64, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	return auth.CurrentUserID(token)
}
