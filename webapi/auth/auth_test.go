package auth_test

import (
	"testing"

	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/amirasaad/ledger/webapi/common"
	webtestutils "github.com/amirasaad/ledger/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	webtestutils.E2ETestSuite
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (s *AuthTestSuite) TestSignupThenSignin() {
	resp := s.MakeRequest(fiber.MethodPost, "/auth/signup",
		`{"name":"Walter","mail":"walter@mail.com","passwd":"`+testutils.Password+`"}`, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	created := webtestutils.Decode[map[string]any](s.T(), resp)
	s.Equal("walter@mail.com", created["mail"])
	s.NotContains(created, "passwd")

	token := s.Login("walter@mail.com")
	resp = s.MakeRequest(fiber.MethodGet, "/v1/accounts", "", token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Empty(webtestutils.Decode[[]common.AccountResponse](s.T(), resp))
}

func (s *AuthTestSuite) TestSignupRejectsDuplicateMail() {
	resp := s.MakeRequest(fiber.MethodPost, "/auth/signup",
		`{"name":"Again","mail":"`+s.Fixture.Owner.Mail+`","passwd":"x"}`, "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("a user with this mail already exists", webtestutils.Decode[common.ErrorResponse](s.T(), resp).Error)
}

func (s *AuthTestSuite) TestSignupRequiresFields() {
	resp := s.MakeRequest(fiber.MethodPost, "/auth/signup", `{"mail":"a@mail.com","passwd":"x"}`, "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("name is a required attribute", webtestutils.Decode[common.ErrorResponse](s.T(), resp).Error)
}

func (s *AuthTestSuite) TestSigninWrongPassword() {
	resp := s.MakeRequest(fiber.MethodPost, "/auth/signin",
		`{"mail":"`+s.Fixture.Owner.Mail+`","passwd":"wrong"}`, "")
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
	s.Equal("invalid mail or password", webtestutils.Decode[common.ErrorResponse](s.T(), resp).Error)
}
