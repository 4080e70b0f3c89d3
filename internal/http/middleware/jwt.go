package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AdminIDKey is the c.Locals key holding the authenticated admin id.
const AdminIDKey = "admin_id"

type Authenticator interface {
	Authenticate(accessToken string) (string, error)
}

// AdminAuth accepts the accessToken cookie, or a Bearer header when the
// cookie is absent.
func AdminAuth(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("accessToken")
		if token == "" {
			authHeader := c.Get(fiber.HeaderAuthorization)
			if authHeader == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Missing access token",
				})
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid authorization format",
				})
			}
			token = tokenParts[1]
		}

		adminID, err := auth.Authenticate(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals(AdminIDKey, adminID)
		return c.Next()
	}
}

// AdminID returns the id stored by AdminAuth, or "".
func AdminID(c *fiber.Ctx) string {
	id, _ := c.Locals(AdminIDKey).(string)
	return id
}
