package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/Art-of-Technology/collab-sub012/internal/config"
	"github.com/Art-of-Technology/collab-sub012/internal/handler"
	myGRPC "github.com/Art-of-Technology/collab-sub012/internal/handler/grpc"
	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/internal/mock"
	"github.com/Art-of-Technology/collab-sub012/internal/service"
)

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, logger.Nop())}

	_, err := NewServer(handlers, config.Server{GRPCAddress: "256.0.0.1:bad"}, logger.Nop())

	assert.Error(t, err)
}

func TestNewHTTPServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 50 * time.Millisecond}

	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})
	s := newHTTPServer(slow, cfg, logger.Nop())

	assert.Equal(t, cfg.HTTPAddress, s.server.Addr)
	assert.Equal(t, readHeaderTimeout, s.server.ReadHeaderTimeout)

	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGRPCServer_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockSecretNoteService(ctrl)
	notes.EXPECT().Healthy().Return(true).AnyTimes()

	h := myGRPC.NewHandler(&service.Services{SecretNoteService: notes}, logger.Nop())
	s, err := newGRPCServer(h, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	go s.RunServer()
	defer s.Shutdown()

	conn, err := grpc.NewClient(s.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{
		Service: myGRPC.SecretNotesService,
	})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockSecretNoteService(ctrl)
	notes.EXPECT().Healthy().Return(false).AnyTimes()

	h := myGRPC.NewHandler(&service.Services{SecretNoteService: notes}, logger.Nop())
	grpcSrv, err := newGRPCServer(h, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop()),
		gRPCServer: grpcSrv,
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunWithoutServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}
