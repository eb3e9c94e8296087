package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ledgerly/backoffice-api/internal/application/documents"
	"github.com/ledgerly/backoffice-api/internal/infrastructure/docx"
	"github.com/ledgerly/backoffice-api/internal/infrastructure/memory"
	infrapdf "github.com/ledgerly/backoffice-api/internal/infrastructure/pdf"
	httpRouter "github.com/ledgerly/backoffice-api/internal/interfaces/http"
	"github.com/ledgerly/backoffice-api/pkg/config"
	"github.com/ledgerly/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	// The repository ports are backed by the in-memory store; a deployment
	// with real persistence swaps its own implementations in here.
	store := memory.NewStore()
	if cfg.Demo.Seed {
		seeded, err := memory.SeedDemoData(store)
		if err != nil {
			log.Fatal().Err(err).Msg("seed demo data")
		}
		log.Info().
			Str("business_id", seeded.BusinessID).
			Str("quotation_id", seeded.QuotationID).
			Str("invoice_id", seeded.InvoiceID).
			Str("challan_id", seeded.ChallanID).
			Msg("demo data seeded")
	}

	renderUC := documents.NewRenderUseCase(
		store.Quotations(), store.Invoices(), store.Challans(), store.Businesses(),
		infrapdf.NewRenderer(), docx.NewRenderer(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Render:    renderUC,
		Log:       log,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
