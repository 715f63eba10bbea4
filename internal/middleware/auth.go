package middleware

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected verifies the bearer access token statelessly; no store access
// happens on this path. A missing or malformed Authorization header is 401; a
// token that is present but fails verification (bad signature, expired) is 403.
func JWTProtected(accessSecret []byte) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: accessSecret},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error:   true,
					Message: "missing or malformed access token",
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "invalid or expired access token",
			})
		},
	})
}
