package handler

import (
	"faq-service/internal/config"

	"github.com/gofiber/fiber/v2"
)

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.UserContext(), c.Cookies(string(config.RefreshToken))); err != nil {
		return err
	}

	h.clearCookie(c, config.AccessToken)
	h.clearCookie(c, config.RefreshToken)
	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}
