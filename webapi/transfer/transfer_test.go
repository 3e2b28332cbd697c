package transfer_test

import (
	"fmt"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/amirasaad/ledger/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

const route = "/v1/transfers"

const body = `{"description":"Savings","date":"2021-02-01T00:00:00Z","ammount":"42.5","acc_id":10000,"transfer_id":10001}`

type TransferTestSuite struct {
	testutils.E2ETestSuite
	token string
}

func TestTransferTestSuite(t *testing.T) {
	suite.Run(t, new(TransferTestSuite))
}

func (s *TransferTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.token = s.OwnerToken()
}

func (s *TransferTestSuite) create() common.TransferResponse {
	resp := s.MakeRequest(fiber.MethodPost, route, body, s.token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	return testutils.Decode[common.TransferResponse](s.T(), resp)
}

func (s *TransferTestSuite) TestLifecycle() {
	created := s.create()
	s.Equal("42.50", created.Ammount)
	s.Equal(int64(10000), created.AccOriID)
	s.Equal(int64(10001), created.AccDestID)
	s.Equal(s.Fixture.Owner.ID, created.UserID)

	resp := s.MakeRequest(fiber.MethodGet, route, "", s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Len(testutils.Decode[[]common.TransferResponse](s.T(), resp), 1)

	resp = s.MakeRequest(fiber.MethodGet, fmt.Sprintf("%s/%d/transactions", route, created.ID), "", s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	legs := testutils.Decode[[]common.TransactionResponse](s.T(), resp)
	s.Require().Len(legs, 2)
	byType := map[string]common.TransactionResponse{legs[0].Type: legs[0], legs[1].Type: legs[1]}
	s.Equal("-42.50", byType["O"].Ammount)
	s.Equal("42.50", byType["I"].Ammount)

	update := `{"description":"Savings","date":"2021-02-01T00:00:00Z","ammount":10,"acc_id":10001,"transfer_id":10000}`
	resp = s.MakeRequest(fiber.MethodPut, fmt.Sprintf("%s/%d", route, created.ID), update, s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	updated := testutils.Decode[common.TransferResponse](s.T(), resp)
	s.Equal(int64(10001), updated.AccOriID)
	s.Equal("10.00", updated.Ammount)

	resp = s.MakeRequest(fiber.MethodDelete, fmt.Sprintf("%s/%d", route, created.ID), "", s.token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodGet, fmt.Sprintf("%s/%d", route, created.ID), "", s.token)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	types := make([]events.EventType, 0, 3)
	for _, e := range s.Bus.Published() {
		types = append(types, e.Type())
	}
	s.Equal([]events.EventType{
		events.EventTypeTransferCreated,
		events.EventTypeTransferUpdated,
		events.EventTypeTransferDeleted,
	}, types)
}

func (s *TransferTestSuite) TestStrangerIsForbidden() {
	created := s.create()
	stranger := s.StrangerToken()

	for _, method := range []string{fiber.MethodGet, fiber.MethodDelete} {
		resp := s.MakeRequest(method, fmt.Sprintf("%s/%d", route, created.ID), "", stranger)
		s.Equal(fiber.StatusForbidden, resp.StatusCode, method)
	}
	resp := s.MakeRequest(fiber.MethodPut, fmt.Sprintf("%s/%d", route, created.ID), body, stranger)
	s.Equal(fiber.StatusForbidden, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodGet, fmt.Sprintf("%s/%d/transactions", route, created.ID), "", stranger)
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
}

func (s *TransferTestSuite) TestMissingDestination() {
	resp := s.MakeRequest(fiber.MethodPost, route,
		`{"description":"x","date":"2021-02-01T00:00:00Z","ammount":1,"acc_id":10000}`, s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("destination account is a required attribute", testutils.Decode[common.ErrorResponse](s.T(), resp).Error)
}
