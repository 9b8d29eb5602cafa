package middleware

import (
	config "github.com/codezon/lms-backend/configs"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"success": false, "error": "Unauthorized"})
}

func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := ClaimString(c, "role")
		if role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   "Insufficient permissions",
			})
		}
		return c.Next()
	}
}

// ClaimString reads a string claim off the verified token, returning ""
// when missing or mistyped.
func ClaimString(c *fiber.Ctx, key string) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	v, _ := claims[key].(string)
	return v
}
