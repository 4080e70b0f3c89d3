package handler

import (
	"time"

	"faq-service/internal/config"
	"faq-service/internal/models"
	"faq-service/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth          *service.AuthService
	secureCookies bool
}

func NewAuthHandler(auth *service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: auth, secureCookies: secureCookies}
}

func (h *AuthHandler) setCookie(c *fiber.Ctx, kind config.TokenKind, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     string(kind),
		Value:    value,
		Path:     "/",
		MaxAge:   h.auth.TokenTTLSeconds(kind),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) clearCookie(c *fiber.Ctx, kind config.TokenKind) {
	c.Cookie(&fiber.Cookie{
		Name:     string(kind),
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) setSession(c *fiber.Ctx, s *models.Session) {
	h.setCookie(c, config.RefreshToken, s.RefreshToken)
	h.setCookie(c, config.AccessToken, s.AccessToken)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := h.auth.Register(c.UserContext(), req)
	if err != nil {
		return err
	}

	h.setSession(c, session)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Admin registered successfully",
		"admin":   session.Admin,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := h.auth.Login(c.UserContext(), req)
	if err != nil {
		return err
	}

	h.setSession(c, session)
	return c.JSON(fiber.Map{
		"message": "Logged in successfully",
		"admin":   session.Admin,
	})
}

// RefreshToken trades the refresh cookie for a new access token.
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	access, err := h.auth.Refresh(c.UserContext(), c.Cookies(string(config.RefreshToken)))
	if err != nil {
		return err
	}

	h.setCookie(c, config.AccessToken, access)
	return c.JSON(fiber.Map{
		"accessToken": access,
	})
}
