package handler

import (
	"faq-service/internal/realtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RequireUpgrade rejects plain HTTP requests to websocket routes.
func RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// FAQEventsWS streams FAQ change events to an admin dashboard until the
// client goes away.
func FAQEventsWS(hub *realtime.FAQHub) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		if err := c.WriteJSON(fiber.Map{
			"type":    "status",
			"message": "Listening for FAQ changes",
		}); err != nil {
			return
		}

		if !hub.Join(c) {
			return
		}
		defer hub.Leave(c)

		// listen client
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	})
}
