package bootstrap

import (
	"github.com/gofiber/fiber/v2"

	"doc_relay_backend/config"
	"doc_relay_backend/handlers"
	"doc_relay_backend/middleware"
	"doc_relay_backend/routes"
)

func NewServer(cfg *config.Config, h *Handlers) *fiber.App {
	server := fiber.New(fiber.Config{
		AppName:               "doc-relay",
		BodyLimit:             cfg.MaxFileSize,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: cfg.IsProd(),
	})

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.CORS(cfg.AllowOrigins))
	server.Use(middleware.Logger(cfg.AppEnv))

	routes.RegisterRelayRoutes(server, h.RelayHandler)
	return server
}
