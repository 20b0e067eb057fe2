package routes

import (
	"github.com/gofiber/fiber/v2"

	"doc_relay_backend/handlers"
)

func RegisterRelayRoutes(app *fiber.App, handler *handlers.RelayHandler) {
	api := app.Group("/api")
	api.Post("/extract", handler.Extract)
	api.Post("/summarize", handler.Summarize)
}
