package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/meinhoongagan/cabinet-api/utils"
)

// Protected validates the bearer access token and puts the caller's identity
// and role into Locals("userID") / Locals("role").
func Protected() fiber.Handler {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "cabinet_secret_key" // Replace with secure key in production
	}

	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return unauthorized(c, "No authentication token")
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c, "Invalid token claims")
			}

			id, ok := claims["id"].(float64)
			if !ok {
				return unauthorized(c, "Invalid user ID in token")
			}
			role, ok := claims["role"].(string)
			if !ok {
				return unauthorized(c, "Invalid role in token")
			}

			c.Locals("userID", uint(id))
			c.Locals("role", role)
			return c.Next()
		},
	})
}

func unauthorized(c *fiber.Ctx, message string) error {
	return utils.Fail(c, utils.ErrAuthentication, message)
}

func jwtError(c *fiber.Ctx, err error) error {
	return unauthorized(c, "Invalid or expired token")
}
