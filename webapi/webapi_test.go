package webapi_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra/eventbus"
	"github.com/amirasaad/ledger/infra/repository/model"
	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/amirasaad/ledger/webapi"
	"github.com/amirasaad/ledger/webapi/common"
	webtestutils "github.com/amirasaad/ledger/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestHealthAndRequestID(t *testing.T) {
	db := testutils.NewTestDB(t)
	app, _ := webtestutils.NewApp(db, webtestutils.NewConfig())

	resp := webtestutils.MakeRequestWithApp(t, app, fiber.MethodGet, "/", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRateLimit(t *testing.T) {
	db := testutils.NewTestDB(t)
	cfg := webtestutils.NewConfig()
	cfg.RateLimit = &config.RateLimit{MaxRequests: 5, Window: time.Second}
	app, _ := webtestutils.NewApp(db, cfg)

	for i := 0; i < 5; i++ {
		resp := webtestutils.MakeRequestWithApp(t, app, fiber.MethodGet, "/", "", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode, "request %d", i+1)
	}
	resp := webtestutils.MakeRequestWithApp(t, app, fiber.MethodGet, "/", "", "")
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "rate limit exceeded", webtestutils.Decode[common.ErrorResponse](t, resp).Error)
}

func TestUnknownRoute(t *testing.T) {
	db := testutils.NewTestDB(t)
	app, _ := webtestutils.NewApp(db, webtestutils.NewConfig())

	resp := webtestutils.MakeRequestWithApp(t, app, fiber.MethodGet, "/nope", "", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, webtestutils.Decode[common.ErrorResponse](t, resp).Error)
}

func TestStoreFailureIsInternalError(t *testing.T) {
	uow := mocks.NewUnitOfWork(t)
	txs := mocks.NewTransactionRepository(t)
	uow.On("TransactionRepository").Return(txs, nil)
	txs.On("Balance", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("pq: relation \"transactions\" does not exist"))

	a := app.New(&app.Deps{
		Uow:      uow,
		EventBus: eventbus.NewWithMemory(testutils.Logger()),
		Logger:   testutils.Logger(),
	}, webtestutils.NewConfig())
	token, err := a.AuthService.GenerateToken(&dto.UserRead{ID: 1, Name: "Owner", Mail: "owner@mail.com"})
	require.NoError(t, err)

	resp := webtestutils.MakeRequestWithApp(t, webapi.SetupApp(a), fiber.MethodGet, "/v1/balance", "", token)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "internal server error", webtestutils.Decode[common.ErrorResponse](t, resp).Error)
}

// PostgresE2ESuite runs the transfer scenario against a migrated Postgres.
type PostgresE2ESuite struct {
	webtestutils.E2ETestSuite
}

func TestPostgresE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres e2e in short mode")
	}
	s := new(PostgresE2ESuite)
	s.OpenDB = testutils.NewPostgresDB
	suite.Run(t, s)
}

func (s *PostgresE2ESuite) TestTransferScenario() {
	token := s.OwnerToken()
	body := fmt.Sprintf(`{"description":"Regular transfer","date":%q,"ammount":100,"type":"I","acc_id":10000,"transfer_id":10001}`,
		time.Now().UTC().Format(time.RFC3339))

	resp := s.MakeRequest(fiber.MethodPost, "/v1/transactions", body, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	created := webtestutils.Decode[common.TransferResponse](s.T(), resp)

	var rows []model.Transaction
	s.Require().NoError(s.DB.Where("transfer_id = ?", created.ID).Order("ammount").Find(&rows).Error)
	s.Require().Len(rows, 2)
	s.Equal("-100.00", rows[0].Ammount.StringFixed(2))
	s.Equal(int64(10000), rows[0].AccID)
	s.Equal("O", rows[0].Type)
	s.Equal("100.00", rows[1].Ammount.StringFixed(2))
	s.Equal(int64(10001), rows[1].AccID)
	s.Equal("I", rows[1].Type)

	resp = s.MakeRequest(fiber.MethodPost, "/v1/transactions",
		`{"description":"x","date":"2021-01-01T00:00:00Z","ammount":1,"acc_id":10000,"transfer_id":10002}`, token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("account #10002 does not belong to the user", webtestutils.Decode[common.ErrorResponse](s.T(), resp).Error)

	resp = s.MakeRequest(fiber.MethodDelete, fmt.Sprintf("/v1/transactions/%d", rows[0].ID), "", token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)

	var count int64
	s.Require().NoError(s.DB.Model(&model.Transaction{}).Where("transfer_id = ?", created.ID).Count(&count).Error)
	s.Zero(count)
}
