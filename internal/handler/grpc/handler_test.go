package grpc

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/mock"
	"github.com/MKhiriev/go-purchase-tracker/internal/service"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

// startHealthServer serves h over an in-memory listener and returns a
// connected health client.
func startHealthServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryLoggingInterceptor))
	h.Register(server)

	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

// newSyncMock returns a sync service mock and a pointer to the observer the
// handler registers on it.
func newSyncMock(t *testing.T) (*mock.MockCurrencySyncService, *func(models.SyncStatus)) {
	t.Helper()

	var observer func(models.SyncStatus)
	sync := mock.NewMockCurrencySyncService(gomock.NewController(t))
	sync.EXPECT().OnStatusChange(gomock.Any()).Do(func(fn func(models.SyncStatus)) {
		observer = fn
	})

	return sync, &observer
}

func TestHandler_OverallStatusIsServing(t *testing.T) {
	client := startHealthServer(t, NewHandler(nil, logger.Nop()))

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, CurrencySyncService))
}

func TestHandler_SyncHealthFollowsFirstSuccessfulRun(t *testing.T) {
	sync, observer := newSyncMock(t)
	h := NewHandler(&service.Services{CurrencySyncService: sync}, logger.Nop())
	client := startHealthServer(t, h)

	require.NotNil(t, *observer)

	(*observer)(models.SyncStatus{State: models.SyncFetching, Attempt: 1})
	(*observer)(models.SyncStatus{State: models.SyncFailed, Attempt: 1})
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, CurrencySyncService))

	(*observer)(models.SyncStatus{State: models.SyncDone, Attempt: 2})
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, CurrencySyncService))

	// a later failure does not withdraw the data already synchronised
	(*observer)(models.SyncStatus{State: models.SyncFailed, Attempt: 1})
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, CurrencySyncService))
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startHealthServer(t, h)

	h.Shutdown()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}

func TestHandler_UnknownServiceIsNotFound(t *testing.T) {
	client := startHealthServer(t, NewHandler(nil, logger.Nop()))

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "unknown"})

	assert.Error(t, err)
}

func TestUnaryLoggingInterceptor_LogsMethodAndCode(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(nil, &logger.Logger{Logger: zerolog.New(&buf)})
	client := startHealthServer(t, h)

	check(t, client, "")

	assert.Contains(t, buf.String(), `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, buf.String(), `"code":"OK"`)
	assert.Contains(t, buf.String(), `"trace_id":`)
}
