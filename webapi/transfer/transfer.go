// Package transfer serves /v1/transfers, addressed by transfer id.
package transfer

import (
	transfersvc "github.com/amirasaad/ledger/pkg/service/transfer"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the handlers on an authenticated router.
func Routes(r fiber.Router, svc *transfersvc.Service) {
	r.Get("/transfers", ListTransfers(svc))
	r.Get("/transfers/:id", GetTransfer(svc))
	r.Get("/transfers/:id/transactions", TransferTransactions(svc))
	r.Post("/transfers", CreateTransfer(svc))
	r.Put("/transfers/:id", UpdateTransfer(svc))
	r.Delete("/transfers/:id", DeleteTransfer(svc))
}

// ListTransfers returns the transfers of the current user.
// @Summary List transfers
// @Tags transfers
// @Produce json
// @Success 200 {array} common.TransferResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /v1/transfers [get]
// @Security BearerAuth
func ListTransfers(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		transfers, err := svc.List(c.UserContext(), userID)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(common.NewTransferListResponse(transfers))
	}
}

// GetTransfer returns one transfer.
// @Summary Get transfer
// @Tags transfers
// @Produce json
// @Param id path int true "Transfer ID"
// @Success 200 {object} common.TransferResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /v1/transfers/{id} [get]
// @Security BearerAuth
func GetTransfer(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		t, err := svc.Get(c.UserContext(), userID, id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(common.NewTransferResponse(t))
	}
}

// TransferTransactions returns the outflow and inflow of a transfer.
// @Summary Transfer legs
// @Tags transfers
// @Produce json
// @Param id path int true "Transfer ID"
// @Success 200 {array} common.TransactionResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /v1/transfers/{id}/transactions [get]
// @Security BearerAuth
func TransferTransactions(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		legs, err := svc.Transactions(c.UserContext(), userID, id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(common.NewTransactionListResponse(legs))
	}
}

// CreateTransfer moves money from acc_id to the account transfer_id.
// @Summary Create transfer
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body common.TransactionInput true "Transfer"
// @Success 201 {object} common.TransferResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /v1/transfers [post]
// @Security BearerAuth
func CreateTransfer(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		input, err := common.BindAndValidate[common.TransactionInput](c)
		if input == nil {
			return err
		}
		t, err := svc.Create(c.UserContext(), userID, input.TransferCommand())
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(common.NewTransferResponse(t))
	}
}

// UpdateTransfer rewrites a transfer and both legs.
// @Summary Update transfer
// @Tags transfers
// @Accept json
// @Produce json
// @Param id path int true "Transfer ID"
// @Param request body common.TransactionInput true "Transfer"
// @Success 200 {object} common.TransferResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /v1/transfers/{id} [put]
// @Security BearerAuth
func UpdateTransfer(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[common.TransactionInput](c)
		if input == nil {
			return err
		}
		t, err := svc.Update(c.UserContext(), userID, id, input.TransferCommand())
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(common.NewTransferResponse(t))
	}
}

// DeleteTransfer removes a transfer and both legs.
// @Summary Delete transfer
// @Tags transfers
// @Param id path int true "Transfer ID"
// @Success 204
// @Failure 401 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /v1/transfers/{id} [delete]
// @Security BearerAuth
func DeleteTransfer(svc *transfersvc.Service) fiber.Handler {
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
