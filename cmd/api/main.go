package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appestimate "github.com/remodj/billing-api/internal/application/estimate"
	appgate "github.com/remodj/billing-api/internal/application/gate"
	domaingate "github.com/remodj/billing-api/internal/domain/gate"
	"github.com/remodj/billing-api/internal/infrastructure/assets"
	infrapdf "github.com/remodj/billing-api/internal/infrastructure/pdf"
	httpRouter "github.com/remodj/billing-api/internal/interfaces/http"
	"github.com/remodj/billing-api/pkg/config"
	"github.com/remodj/billing-api/pkg/logger"
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

	// Gate: the 4-digit billing-screen code, injected from config.
	gateUC := appgate.NewUseCase(domaingate.New(cfg.Gate.Code), appgate.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Estimate pipeline: in-memory drafts → validate → snapshot → Maroto PDF.
	builderUC := appestimate.NewBuilderUseCase(time.Now)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	var badge appestimate.BadgeSource
	if cfg.Badge.URL != "" {
		badge = assets.NewHTTPBadgeSource(cfg.Badge.URL)
	}
	generateUC := appestimate.NewGenerateUseCase(
		builderUC, pdfGenerator, badge, cfg.Badge.Timeout(), log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Remo Billing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		GateUC:     gateUC,
		BuilderUC:  builderUC,
		GenerateUC: generateUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
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
