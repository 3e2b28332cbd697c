// Package account serves /v1/accounts for the current user.
package account

import (
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the handlers on an authenticated router.
func Routes(r fiber.Router, svc *accountsvc.Service) {
	r.Get("/accounts", ListAccounts(svc))
	r.Post("/accounts", CreateAccount(svc))
	r.Get("/accounts/:id", GetAccount(svc))
	r.Put("/accounts/:id", RenameAccount(svc))
	r.Delete("/accounts/:id", DeleteAccount(svc))
}

// ListAccounts returns the accounts of the current user.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} common.AccountResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /v1/accounts [get]
// @Security BearerAuth
func ListAccounts(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		accounts, err := svc.List(c.UserContext(), userID)
		if err != nil {
			return common.HandleError(c, err)
		}
		out := make([]common.AccountResponse, 0, len(accounts))
		for _, a := range accounts {
			out = append(out, common.NewAccountResponse(a))
		}
		return c.JSON(out)
	}
}

// CreateAccount opens an account for the current user.
// @Summary Create account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body AccountInput true "Account"
// @Success 201 {object} common.AccountResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /v1/accounts [post]
// @Security BearerAuth
func CreateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		input, err := common.BindAndValidate[AccountInput](c)
		if input == nil {
			return err
		}
		acc, err := svc.Create(c.UserContext(), userID, input.Name)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(common.NewAccountResponse(acc))
	}
}

// GetAccount returns one account.
// @Summary Get account
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} common.AccountResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /v1/accounts/{id} [get]
// @Security BearerAuth
func GetAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		acc, err := svc.Get(c.UserContext(), userID, id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(common.NewAccountResponse(acc))
	}
}

// RenameAccount changes the account name.
// @Summary Rename account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body AccountInput true "Account"
// @Success 200 {object} common.AccountResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /v1/accounts/{id} [put]
// @Security BearerAuth
func RenameAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[AccountInput](c)
		if input == nil {
			return err
		}
		acc, err := svc.Rename(c.UserContext(), userID, id, input.Name)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(common.NewAccountResponse(acc))
	}
}

// DeleteAccount removes an account without transactions.
// @Summary Delete account
// @Tags accounts
// @Param id path int true "Account ID"
// @Success 204
// @Failure 400 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /v1/accounts/{id} [delete]
// @Security BearerAuth
func DeleteAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		if err := svc.Delete(c.UserContext(), userID, id); err != nil {
			return common.HandleError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
