// Package user serves the user listing and signup endpoints.
package user

import (
	usersvc "github.com/amirasaad/ledger/pkg/service/user"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the handlers on an authenticated router.
func Routes(r fiber.Router, svc *usersvc.Service) {
	r.Get("/users", ListUsers(svc))
	r.Post("/users", CreateUser(svc))
}

// ListUsers returns every user.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} common.UserResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /v1/users [get]
// @Security BearerAuth
func ListUsers(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.UserContext())
		if err != nil {
			return common.HandleError(c, err)
		}
		out := make([]common.UserResponse, 0, len(users))
		for _, u := range users {
			out = append(out, common.NewUserResponse(u))
		}
		return c.JSON(out)
	}
}

// CreateUser creates a user.
// @Summary Create a new user
// @Description Create a user with name, mail and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body NewUser true "User creation data"
// @Success 201 {object} common.UserResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /v1/users [post]
// @Security BearerAuth
func CreateUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewUser](c)
		if input == nil {
			return err
		}
		u, err := svc.Create(c.UserContext(), input.Name, input.Mail, input.Passwd)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(common.NewUserResponse(u))
	}
}
