package server

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MKhiriev/go-custody/internal/config"
	"github.com/MKhiriev/go-custody/internal/handler"
	myGRPC "github.com/MKhiriev/go-custody/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-custody/internal/handler/http"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/service"
	"github.com/MKhiriev/go-custody/internal/workers"
)

type countingPersister struct {
	calls atomic.Int32
	err   error
}

func (p *countingPersister) Persist(context.Context) error {
	p.calls.Add(1)
	return p.err
}

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:     "127.0.0.1:0",
		GRPCAddress:     "127.0.0.1:0",
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
}

func testHandlers() *handler.Handlers {
	services := &service.Services{}
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(services, logger.Nop()),
		GRPC: myGRPC.NewHandler(services, logger.Nop()),
	}
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewServer_NoTransports(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, nil, testServerConfig(), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AddressWithoutHandler(t *testing.T) {
	cfg := testServerConfig()
	cfg.GRPCAddress = ""

	_, err := NewServer(&handler.Handlers{GRPC: testHandlers().GRPC}, nil, nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := testServerConfig()
	cfg.GRPCAddress = busy.Addr().String()

	_, err = NewServer(testHandlers(), nil, nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errGRPCListen)
}

func TestNewServer_BothTransports(t *testing.T) {
	srv, err := NewServer(testHandlers(), nil, nil, testServerConfig(), logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	assert.NotNil(t, s.httpServer)
	require.NotNil(t, s.gRPCServer)
	s.gRPCServer.gRPCNetListener.Close()
}

// ── lifecycle ────────────────────────────────────────────────────────────────

func TestServe_PersistsOnShutdown(t *testing.T) {
	persister := &countingPersister{}
	bg := workers.NewWorkers(config.Workers{SnapshotInterval: time.Hour}, persister, logger.Nop())

	srv, err := NewServer(testHandlers(), bg, persister, testServerConfig(), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.(*server).serve(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}
	assert.Equal(t, int32(1), persister.calls.Load())
}

func TestServe_PersistErrorDoesNotBlock(t *testing.T) {
	persister := &countingPersister{err: errors.New("db down")}
	cfg := testServerConfig()
	cfg.GRPCAddress = ""

	srv, err := NewServer(&handler.Handlers{HTTP: testHandlers().HTTP}, nil, persister, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv.(*server).serve(ctx)
	assert.Equal(t, int32(1), persister.calls.Load())
}

func TestGRPCServer_ServesUntilShutdown(t *testing.T) {
	cfg := testServerConfig()
	g, err := newGRPCServer(testHandlers().GRPC, cfg, logger.Nop())
	require.NoError(t, err)

	stopped := make(chan struct{})
	go func() {
		g.RunServer()
		close(stopped)
	}()

	conn, err := grpc.NewClient(g.gRPCNetListener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	g.Shutdown(ctx)

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("gRPC server did not stop")
	}
}
