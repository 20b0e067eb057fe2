package services

import (
	"context"
	"fmt"
	"strings"

	"doc_relay_backend/models"
)

var lengthInstructions = map[models.SummaryLength]string{
	models.SummaryShort:  "Provide a 1-2 sentence summary.",
	models.SummaryMedium: "Provide a 1-2 paragraph summary.",
	models.SummaryLong:   "Provide a detailed, multi-paragraph summary highlighting all key points.",
}

type SummarizeService struct {
	generator ContentGenerator
}

func NewSummarizeService(generator ContentGenerator) *SummarizeService {
	return &SummarizeService{generator: generator}
}

func (s *SummarizeService) Summarize(ctx context.Context, req models.SummarizationRequest) (string, error) {
	prompt, err := BuildSummaryPrompt(req.Text, req.Length)
	if err != nil {
		return "", err
	}

	resp, err := s.generator.GenerateContent(ctx, models.SingleContent(models.TextPart(prompt)))
	if err != nil {
		return "", err
	}
	summary := resp.Text()
	if summary == "" {
		return "", ErrNoSummary
	}
	return summary, nil
}

func BuildSummaryPrompt(text string, length models.SummaryLength) (string, error) {
	instruction, ok := lengthInstructions[length]
	if !ok {
		return "", ErrInvalidLength
	}

	var builder strings.Builder
	builder.WriteString("You are an expert summarizer. Provide a concise, easy-to-read summary of the following text. ")
	builder.WriteString(fmt.Sprintf("The summary should be of a '%s' length. %s\n", length, instruction))
	builder.WriteString("Here is the text:\n\n")
	builder.WriteString(text)
	return builder.String(), nil
}
