package handler

import (
	"github.com/Art-of-Technology/collab-sub012/internal/config"
	"github.com/Art-of-Technology/collab-sub012/internal/handler/grpc"
	"github.com/Art-of-Technology/collab-sub012/internal/handler/http"
	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/internal/metrics"
	"github.com/Art-of-Technology/collab-sub012/internal/service"
)

// Handlers holds one handler per enabled transport. A nil field means the
// transport has no listen address configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, m, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Msg("handlers created")

	return handlers, nil
}
