package http

import (
	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/observability"
	"github.com/MKhiriev/go-purchase-tracker/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  *observability.HTTPMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	metrics, err := observability.NewHTTPMetrics()
	if err != nil {
		logger.Warn().Err(err).Msg("http metrics are disabled")
		metrics = nil
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger,
	}
}
