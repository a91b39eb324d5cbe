// Package grpc exposes the vault's gRPC surface: the standard health
// checking service, reporting whether the master secret is usable.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/internal/service"
)

// SecretNotesService is the health service name of the secret note API.
const SecretNotesService = "vault.SecretNotes"

// Handler is the root gRPC transport handler.
//
// It owns a health server whose status follows
// [service.SecretNoteService.Healthy]: SERVING when the master secret is
// configured, NOT_SERVING otherwise.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register refreshes the health status and registers the health service on s.
func (h *Handler) Register(s *grpc.Server) {
	h.Refresh()
	healthpb.RegisterHealthServer(s, h.health)
}

// Refresh re-reads the secret note service health.
func (h *Handler) Refresh() {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if h.services != nil && h.services.SecretNoteService != nil && h.services.SecretNoteService.Healthy() {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(SecretNotesService, status)
}

// Watch refreshes the status every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Refresh()
		}
	}
}

// Shutdown marks every service NOT_SERVING so that watchers are told before
// the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
