package bootstrap

import (
	"doc_relay_backend/config"
	"doc_relay_backend/platform/gemini"
)

type Infrastructure struct {
	Gemini *gemini.Client
}

func NewInfrastructure(cfg *config.Config) (*Infrastructure, error) {
	infra := &Infrastructure{}

	// upstream generative API
	infra.Gemini = gemini.NewClient(cfg)

	return infra, nil
}

func (infra *Infrastructure) Shutdown() error {
	if infra.Gemini != nil {
		infra.Gemini.CloseIdleConnections()
	}
	return nil
}
