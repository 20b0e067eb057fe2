package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"doc_relay_backend/middleware"
	"doc_relay_backend/models"
	"doc_relay_backend/pkg/logging"
	"doc_relay_backend/platform/gemini"
	"doc_relay_backend/services"
)

const msgInternal = "Something went wrong on the server."

// ErrorHandler turns every error returned by a route into {"error": message}.
// Upstream statuses are forwarded, timeouts become 504, anything unknown is a
// 500 whose detail stays in the log.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code, message := classify(err)

	logger := logging.Logger.With(
		"requestID", requestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"status", code,
	)
	if code >= fiber.StatusInternalServerError {
		logger.Error("request failed", "error", err.Error())
	} else {
		logger.Warn("request rejected", "error", err.Error())
	}

	return c.Status(code).JSON(models.ErrorResp{Error: message})
}

func classify(err error) (int, string) {
	var apiErr *gemini.APIError
	var fiberErr *fiber.Error

	code, message := fiber.StatusInternalServerError, msgInternal
	switch {
	case errors.As(err, &apiErr):
		code, message = apiErr.Status, apiErr.Message
	case errors.Is(err, gemini.ErrTimeout):
		code, message = fiber.StatusGatewayTimeout, gemini.ErrTimeout.Error()
	case errors.Is(err, services.ErrInvalidLength):
		code, message = fiber.StatusBadRequest, services.ErrInvalidLength.Error()
	case errors.Is(err, services.ErrNoExtractedText):
		message = services.ErrNoExtractedText.Error()
	case errors.Is(err, services.ErrNoSummary):
		message = services.ErrNoSummary.Error()
	case errors.As(err, &fiberErr):
		code, message = fiberErr.Code, fiberErr.Message
	}
	if message == "" {
		message = msgInternal
	}
	return code, message
}

// requestID falls back to the client header, then to a fresh id, for errors
// raised before the requestid middleware ran (e.g. an over-limit body).
func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.RequestIDKey).(string); ok && id != "" {
		return id
	}
	id := c.Get(fiber.HeaderXRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals(middleware.RequestIDKey, id)
	c.Set(fiber.HeaderXRequestID, id)
	return id
}
