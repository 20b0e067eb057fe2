package services

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"doc_relay_backend/models"
)

const (
	octetStream        = "application/octet-stream"
	extractInstruction = "Extract all text from this document. Preserve line breaks where appropriate to maintain document structure."
)

type ExtractService struct {
	generator ContentGenerator
}

func NewExtractService(generator ContentGenerator) *ExtractService {
	return &ExtractService{generator: generator}
}

func (s *ExtractService) ExtractText(ctx context.Context, req models.ExtractionRequest) (string, error) {
	payload := BuildExtractPayload(req)

	resp, err := s.generator.GenerateContent(ctx, payload)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", ErrNoExtractedText
	}
	return text, nil
}

func BuildExtractPayload(req models.ExtractionRequest) *models.GenerateContentRequest {
	data := base64.StdEncoding.EncodeToString(req.Data)
	return models.SingleContent(
		models.TextPart(extractInstruction),
		models.InlinePart(ResolveMimeType(req.MimeType, req.Data), data),
	)
}

// ResolveMimeType keeps the declared type and only sniffs the bytes when the
// client sent nothing more specific than application/octet-stream.
func ResolveMimeType(declared string, data []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != octetStream {
		return declared
	}
	detected, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return detected
}
