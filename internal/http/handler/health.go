package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "FAQ API is running",
	})
}

// Health pings every dependency and answers 503 when any of them is down.
func Health(checks map[string]Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		status := fiber.StatusOK
		results := fiber.Map{}
		for name, p := range checks {
			if err := p.Ping(ctx); err != nil {
				status = fiber.StatusServiceUnavailable
				results[name] = err.Error()
				continue
			}
			results[name] = "ok"
		}

		overall := "ok"
		if status != fiber.StatusOK {
			overall = "degraded"
		}
		return c.Status(status).JSON(fiber.Map{
			"status": overall,
			"checks": results,
		})
	}
}
