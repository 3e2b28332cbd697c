// Package auth serves the public signup and signin endpoints.
package auth

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	usersvc "github.com/amirasaad/ledger/pkg/service/user"
	"github.com/amirasaad/ledger/webapi/common"
	userweb "github.com/amirasaad/ledger/webapi/user"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the handlers on the public router.
func Routes(r fiber.Router, authSvc *authsvc.Service, userSvc *usersvc.Service) {
	r.Post("/auth/signin", Signin(authSvc))
	r.Post("/auth/signup", userweb.CreateUser(userSvc))
}

// Signin exchanges mail and password for a token.
// @Summary User signin
// @Description Authenticate with mail and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SigninInput true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /auth/signin [post]
func Signin(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SigninInput](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Login(c.UserContext(), input.Mail, input.Passwd)
		if errors.Is(err, domain.ErrUnauthorized) {
			return common.ErrorResponseJSON(c, fiber.StatusUnauthorized, "invalid mail or password")
		}
		if err != nil {
			return common.HandleError(c, err)
		}
		token, err := authSvc.GenerateToken(u)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(TokenResponse{Token: token})
	}
}
