// Package middleware holds the fiber middleware shared by the ledger routes.
package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// Protected rejects requests without a valid HS256 bearer token signed
// with secret. The parsed *jwt.Token is stored under the "user" local.
func Protected(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(secret)},
		ContextKey:   "user",
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	msg := "invalid or expired token"
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		msg = "missing or malformed token"
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
