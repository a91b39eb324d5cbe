package http

import (
	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/internal/metrics"
	"github.com/Art-of-Technology/collab-sub012/internal/service"
)

// Handler serves the REST API. metrics may be nil, which disables the
// /metrics route and request observation.
type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}
