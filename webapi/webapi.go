// Package webapi assembles the ledger HTTP API.
// Handlers live in sub-packages per resource:
// - auth: signup and signin
// - user: user listing and creation
// - account: accounts of the current user
// - transaction: ledger rows, transfer-shaped writes and balances
// - transfer: transfers addressed by transfer id
package webapi

import (
	"strings"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/middleware"
	accountweb "github.com/amirasaad/ledger/webapi/account"
	authweb "github.com/amirasaad/ledger/webapi/auth"
	"github.com/amirasaad/ledger/webapi/common"
	transactionweb "github.com/amirasaad/ledger/webapi/transaction"
	transferweb "github.com/amirasaad/ledger/webapi/transfer"
	userweb "github.com/amirasaad/ledger/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"

	_ "github.com/amirasaad/ledger/docs"
)

// SetupApp builds the fiber app with every route and middleware.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "ledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return common.ErrorResponseJSON(c, e.Code, e.Message)
			}
			return common.HandleError(c, err)
		},
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))

	rl := a.Config.RateLimit
	if rl != nil && rl.MaxRequests > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:        rl.MaxRequests,
			Expiration: rl.Window,
			KeyGenerator: func(c *fiber.Ctx) string {
				if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
					if comma := strings.Index(forwardedFor, ","); comma != -1 {
						return strings.TrimSpace(forwardedFor[:comma])
					}
					return strings.TrimSpace(forwardedFor)
				}
				if realIP := c.Get("X-Real-IP"); realIP != "" {
					return realIP
				}
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "rate limit exceeded")
			},
		}))
	}

	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		PersistAuthorization: true,
	}))

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Ledger API is running")
	})

	authweb.Routes(fiberApp, a.AuthService, a.UserService)

	v1 := fiberApp.Group("/v1", middleware.Protected(a.Config.Auth.Jwt.Secret))
	userweb.Routes(v1, a.UserService)
	accountweb.Routes(v1, a.AccountService)
	transactionweb.Routes(v1, a.TransactionService, a.TransferService)
	transferweb.Routes(v1, a.TransferService)
	return fiberApp
}
