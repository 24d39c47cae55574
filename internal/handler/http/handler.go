package http

import (
	"net/http"

	"github.com/MKhiriev/nekmart-admin/internal/config"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/service"
)

type Handler struct {
	services *service.Services

	graphqlCfg config.GraphQL
	// transport is shared by the GraphQL clients of all requests; each
	// client still gets its own cookie jar.
	transport http.RoundTripper
	imagesDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		graphqlCfg: cfg.GraphQL,
		transport:  http.DefaultTransport.(*http.Transport).Clone(),
		imagesDir:  cfg.Storage.Images.Dir,
		logger:     logger,
	}
}
