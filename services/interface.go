package services

import (
	"context"

	"doc_relay_backend/models"
	"doc_relay_backend/platform/gemini"
)

// ContentGenerator performs the single upstream call each relay makes.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, payload *models.GenerateContentRequest) (*gemini.Response, error)
}
