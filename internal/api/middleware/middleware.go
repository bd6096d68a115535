package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
)

// RequestLogger logs every request with method, path, peer and duration.
func RequestLogger(logger *slog.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		logger.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"ip", c.IP(),
			"duration", time.Since(start),
		)

		return err
	}
}
