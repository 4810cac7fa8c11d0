package grpc

import (
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/service"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// CurrencySyncService is the health service name that reports whether the
// country/currency reference data has been synchronised at least once.
const CurrencySyncService = "currency-sync"

// Handler is the root gRPC transport handler.
//
// It serves the standard gRPC health protocol. The overall server status is
// SERVING from construction; the [CurrencySyncService] status stays
// NOT_SERVING until the first currency sync completes successfully and is
// driven by the sync status observer registered in [NewHandler].
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] and subscribes it to the currency sync
// status changes when a sync service is available.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(CurrencySyncService, healthpb.HealthCheckResponse_NOT_SERVING)

	if services != nil && services.CurrencySyncService != nil {
		services.CurrencySyncService.OnStatusChange(h.onSyncStatus)
	}

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown marks every service NOT_SERVING so that watchers see the server
// going away before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// onSyncStatus flips the sync health to SERVING on the first successful run.
// A later failure keeps the data from the last successful run, so it does
// not flip the status back.
func (h *Handler) onSyncStatus(status models.SyncStatus) {
	if status.State != models.SyncDone {
		return
	}

	h.health.SetServingStatus(CurrencySyncService, healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Str("service", CurrencySyncService).Msg("health status set to SERVING")
}
