package middleware

import (
	"errors"
	"log/slog"

	"faq-service/internal/helper"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders handler errors as {"error": msg}. Anything that is
// not an AppError or a fiber error is logged and reported as a bare 500.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := helper.AsAppError(err); ok && appErr.Kind != helper.KindInternal {
			return c.Status(appErr.Status()).JSON(fiber.Map{
				"error": appErr.Message,
			})
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{
				"error": fe.Message,
			})
		}

		log.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"error", err,
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
