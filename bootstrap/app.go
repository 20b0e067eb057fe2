package bootstrap

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"doc_relay_backend/config"
	"doc_relay_backend/pkg/logging"
)

type App struct {
	Cfg            *config.Config
	Infrastructure *Infrastructure
	Services       *Services
	Handlers       *Handlers
	Server         *fiber.App
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Cfg: cfg}
	infra, err := NewInfrastructure(cfg)
	if err != nil {
		logging.Logger.Error("fail NewInfrastructure", "error", err)
		return nil, err
	}
	app.Infrastructure = infra

	// services
	app.Services = NewServices(infra)

	// handlers
	app.Handlers = NewHandlers(app.Services)

	app.Server = NewServer(cfg, app.Handlers)
	return app, nil
}

func (a *App) Listen() error {
	return a.Server.Listen(":" + a.Cfg.HttpPort)
}

// Shutdown stops accepting requests, waits for in-flight ones, then releases infra.
func (a *App) Shutdown(ctx context.Context) error {
	if a == nil {
		return nil
	}
	if a.Server != nil {
		if err := a.Server.ShutdownWithContext(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}
	if a.Infrastructure != nil {
		if err := a.Infrastructure.Shutdown(); err != nil {
			return err
		}
	}
	return nil
}
