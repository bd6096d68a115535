package router

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"

	handlers "github.com/emilioroldan/iban-phones/internal/api/handlers"
	"github.com/emilioroldan/iban-phones/internal/api/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(bankHandler *handlers.BankHandler, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			return c.Status(code).JSON(fiber.Map{
				"message": "Internal server error",
			})
		},
	})

	// Add global middleware
	app.Use(middleware.RequestLogger(logger))
	app.Use(recover.New())

	// API versioning
	v1 := app.Group("/v1")

	// Bank selection endpoints
	v1.Get("/banks", bankHandler.AllBanks)
	v1.Get("/banks/major", bankHandler.MajorBanks)
	v1.Get("/banks/search", bankHandler.SearchBanks)
	v1.Get("/banks/:ibanPrefix", bankHandler.GetBank)

	// Extraction endpoint
	v1.Post("/extract", bankHandler.Extract)

	return app
}
