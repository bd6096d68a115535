package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/emilioroldan/iban-phones/internal/api/handlers"
	"github.com/emilioroldan/iban-phones/internal/api/router"
	service "github.com/emilioroldan/iban-phones/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bank lookup and extraction HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadEnvironment()
		if err != nil {
			return err
		}

		reg, ext, err := loadExtractor(cfg)
		if err != nil {
			return err
		}
		logger.Info("bank registry loaded", "banks", reg.Len())

		svc := service.NewExtractionService(reg, ext)
		handler := handlers.NewBankHandler(svc)
		app := router.SetupRoutes(handler, logger)

		// Start server in a goroutine so we can handle graceful shutdown
		errCh := make(chan error, 1)
		go func() {
			logger.Info("starting server", "address", cfg.Server.Address)
			errCh <- app.Listen(cfg.Server.Address)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
			return err
		}

		logger.Info("server exiting")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
