package bootstrap

import "doc_relay_backend/services"

type Services struct {
	ExtractService   *services.ExtractService
	SummarizeService *services.SummarizeService
}

func NewServices(infra *Infrastructure) *Services {
	return &Services{
		ExtractService:   services.NewExtractService(infra.Gemini),
		SummarizeService: services.NewSummarizeService(infra.Gemini),
	}
}
