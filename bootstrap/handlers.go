package bootstrap

import "doc_relay_backend/handlers"

type Handlers struct {
	RelayHandler *handlers.RelayHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		RelayHandler: handlers.NewRelayHandler(services.ExtractService, services.SummarizeService),
	}
}
