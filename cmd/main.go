package main

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/irendoro/trpis-tdd/config"
	"github.com/irendoro/trpis-tdd/internal/identity/handler"
	"github.com/irendoro/trpis-tdd/internal/identity/service"
	"github.com/irendoro/trpis-tdd/internal/identity/session"
	"github.com/irendoro/trpis-tdd/internal/identity/store/memory"
	"github.com/irendoro/trpis-tdd/internal/logging"
)

func main() {
	cfg := config.Load()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	accounts := memory.NewStore()
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	identity := service.NewIdentityService(accounts, hasher, cfg)
	sessions := session.NewStore()
	authHandler := handler.NewAuthHandler(identity, sessions, cfg.SessionCookie, log)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
