package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"doc_relay_backend/models"
	"doc_relay_backend/pkg/logging"
	"doc_relay_backend/services"
)

const (
	documentField = "document"

	msgNoFile         = "No file uploaded."
	msgMissingFields  = "Missing textToSummarize or length in request body."
	msgInvalidRequest = "Invalid request body."
)

type RelayHandler struct {
	extractService   *services.ExtractService
	summarizeService *services.SummarizeService
}

func NewRelayHandler(extractService *services.ExtractService, summarizeService *services.SummarizeService) *RelayHandler {
	return &RelayHandler{
		extractService:   extractService,
		summarizeService: summarizeService,
	}
}

// Extract expects multipart/form-data with a single file field named "document".
func (h *RelayHandler) Extract(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(documentField)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, msgNoFile)
	}

	data, err := readFormFile(fileHeader)
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}

	text, err := h.extractService.ExtractText(c.UserContext(), models.ExtractionRequest{
		Data:     data,
		MimeType: fileHeader.Header.Get(fiber.HeaderContentType),
	})
	if err != nil {
		return fmt.Errorf("extraction of %q: %w", fileHeader.Filename, err)
	}
	return c.JSON(models.ExtractResp{ExtractedText: text})
}

// Summarize expects a JSON body: {"textToSummarize": "...", "length": "short|medium|long"}.
func (h *RelayHandler) Summarize(c *fiber.Ctx) error {
	var req models.SummarizeReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, msgInvalidRequest)
	}
	if req.TextToSummarize == "" || strings.TrimSpace(req.Length) == "" {
		return fiber.NewError(fiber.StatusBadRequest, msgMissingFields)
	}
	length, err := models.ParseSummaryLength(req.Length)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, services.ErrInvalidLength.Error())
	}

	summary, err := h.summarizeService.Summarize(c.UserContext(), models.SummarizationRequest{
		Text:   req.TextToSummarize,
		Length: length,
	})
	if err != nil {
		return fmt.Errorf("summarization (%s): %w", length, err)
	}
	return c.JSON(models.SummarizeResp{Summary: summary})
}

func readFormFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer func(file multipart.File) {
		if err := file.Close(); err != nil {
			logging.Logger.Warn("fail closing uploaded file", "error", err)
		}
	}(file)

	return io.ReadAll(file)
}
