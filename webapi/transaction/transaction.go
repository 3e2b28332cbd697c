// Package transaction serves /v1/transactions and /v1/balance.
//
// A body carrying transfer_id books a transfer. Writes addressed to a row
// that belongs to a transfer act on the whole transfer.
package transaction

import (
	"strconv"

	"github.com/amirasaad/ledger/pkg/dto"
	transactionsvc "github.com/amirasaad/ledger/pkg/service/transaction"
	transfersvc "github.com/amirasaad/ledger/pkg/service/transfer"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the handlers on an authenticated router.
func Routes(r fiber.Router, txSvc *transactionsvc.Service, transferSvc *transfersvc.Service) {
	r.Get("/transactions", ListTransactions(txSvc))
	r.Get("/transactions/:id", GetTransaction(txSvc))
	r.Post("/transactions", CreateTransaction(txSvc, transferSvc))
	r.Put("/transactions/:id", UpdateTransaction(txSvc, transferSvc))
	r.Delete("/transactions/:id", DeleteTransaction(txSvc, transferSvc))
	r.Get("/balance", Balance(txSvc))
}

// ListTransactions returns the rows of the current user.
// @Summary List transactions
// @Description List the transactions of the current user, optionally filtered
// @Tags transactions
// @Produce json
// @Param acc_id query int false "Account ID"
// @Param type query string false "I or O"
// @Param transfer_id query int false "Transfer ID"
// @Param status query bool false "Completed"
// @Success 200 {array} common.TransactionResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /v1/transactions [get]
// @Security BearerAuth
func ListTransactions(txSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		filter, ok := parseFilter(c)
		if !ok {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "invalid filter")
		}
		rows, err := txSvc.List(c.UserContext(), userID, filter)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(common.NewTransactionListResponse(rows))
	}
}

// GetTransaction returns one row.
// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} common.TransactionResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /v1/transactions/{id} [get]
// @Security BearerAuth
func GetTransaction(txSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		row, err := txSvc.Get(c.UserContext(), userID, id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(common.NewTransactionResponse(row))
	}
}

// CreateTransaction books a transaction, or a transfer when transfer_id is sent.
// @Summary Create transaction or transfer
// @Description With transfer_id the body is a transfer from acc_id to the account transfer_id and the transfer is returned
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body common.TransactionInput true "Transaction"
// @Success 201 {object} common.TransactionResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /v1/transactions [post]
// @Security BearerAuth
func CreateTransaction(txSvc *transactionsvc.Service, transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		input, err := common.BindAndValidate[common.TransactionInput](c)
		if input == nil {
			return err
		}
		if input.IsTransfer() {
			t, err := transferSvc.Create(c.UserContext(), userID, input.TransferCommand())
			if err != nil {
				return common.HandleError(c, err)
			}
			return c.Status(fiber.StatusCreated).JSON(common.NewTransferResponse(t))
		}
		row, err := txSvc.Create(c.UserContext(), userID, input.TransactionCreate())
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(common.NewTransactionResponse(row))
	}
}

// UpdateTransaction rewrites a row, or its whole transfer for a transfer leg.
// @Summary Update transaction
// @Description Every field is required again. For a transfer leg the body is a transfer body and the transfer is returned
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body common.TransactionInput true "Transaction"
// @Success 200 {object} common.TransactionResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /v1/transactions/{id} [put]
// @Security BearerAuth
func UpdateTransaction(txSvc *transactionsvc.Service, transferSvc *transfersvc.Service) fiber.Handler {
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
		current, err := txSvc.Get(c.UserContext(), userID, id)
		if err != nil {
			return common.HandleError(c, err)
		}
		if current.TransferID != nil {
			t, err := transferSvc.Update(c.UserContext(), userID, *current.TransferID, input.TransferCommand())
			if err != nil {
				return common.HandleError(c, err)
			}
			return c.JSON(common.NewTransferResponse(t))
		}
		row, err := txSvc.Update(c.UserContext(), userID, id, input.TransactionCreate())
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(common.NewTransactionResponse(row))
	}
}

// DeleteTransaction removes a row, or its whole transfer for a transfer leg.
// @Summary Delete transaction
// @Tags transactions
// @Param id path int true "Transaction ID"
// @Success 204
// @Failure 401 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /v1/transactions/{id} [delete]
// @Security BearerAuth
func DeleteTransaction(txSvc *transactionsvc.Service, transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		current, err := txSvc.Get(c.UserContext(), userID, id)
		if err != nil {
			return common.HandleError(c, err)
		}
		if current.TransferID != nil {
			err = transferSvc.Delete(c.UserContext(), userID, *current.TransferID)
		} else {
			err = txSvc.Delete(c.UserContext(), userID, id)
		}
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// Balance sums the completed transactions of every account.
// @Summary Account balances
// @Tags transactions
// @Produce json
// @Success 200 {array} common.BalanceResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /v1/balance [get]
// @Security BearerAuth
func Balance(txSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		balances, err := txSvc.Balance(c.UserContext(), userID)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(common.NewBalanceResponse(balances))
	}
}

func parseFilter(c *fiber.Ctx) (dto.TransactionFilter, bool) {
	var filter dto.TransactionFilter
	if raw := c.Query("acc_id"); raw != "" {
		id, ok := utils.ParseID(raw)
		if !ok {
			return filter, false
		}
		filter.AccountID = &id
	}
	if raw := c.Query("transfer_id"); raw != "" {
		id, ok := utils.ParseID(raw)
		if !ok {
			return filter, false
		}
		filter.TransferID = &id
	}
	if raw := c.Query("type"); raw != "" {
		filter.Type = &raw
	}
	if raw := c.Query("status"); raw != "" {
		status, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, false
		}
		filter.Status = &status
	}
	return filter, true
}
