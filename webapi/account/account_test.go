package account_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra/repository/model"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/amirasaad/ledger/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountTestSuite struct {
	testutils.E2ETestSuite
	token string
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}

func (s *AccountTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.token = s.OwnerToken()
}

func (s *AccountTestSuite) TestCRUD() {
	resp := s.MakeRequest(fiber.MethodPost, "/v1/accounts", `{"name":"Wallet"}`, s.token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	created := testutils.Decode[common.AccountResponse](s.T(), resp)
	s.Equal("Wallet", created.Name)

	resp = s.MakeRequest(fiber.MethodGet, "/v1/accounts", "", s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Len(testutils.Decode[[]common.AccountResponse](s.T(), resp), 3)

	path := fmt.Sprintf("/v1/accounts/%d", created.ID)
	resp = s.MakeRequest(fiber.MethodPut, path, `{"name":"Pocket"}`, s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("Pocket", testutils.Decode[common.AccountResponse](s.T(), resp).Name)

	resp = s.MakeRequest(fiber.MethodDelete, path, "", s.token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodGet, path, "", s.token)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *AccountTestSuite) TestValidationAndOwnership() {
	resp := s.MakeRequest(fiber.MethodPost, "/v1/accounts", `{}`, s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("name is a required attribute", testutils.Decode[common.ErrorResponse](s.T(), resp).Error)

	resp = s.MakeRequest(fiber.MethodGet, "/v1/accounts/10002", "", s.token)
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
}

func (s *AccountTestSuite) TestDeleteInUse() {
	s.Require().NoError(s.DB.Create(&model.Transaction{
		Description: "Coffee",
		Date:        time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		Ammount:     decimal.NewFromInt(-3),
		Type:        "O",
		AccID:       10000,
	}).Error)

	resp := s.MakeRequest(fiber.MethodDelete, "/v1/accounts/10000", "", s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("account #10000 has associated transactions", testutils.Decode[common.ErrorResponse](s.T(), resp).Error)
}
