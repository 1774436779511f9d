package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-custody/internal/config"
	"github.com/MKhiriev/go-custody/internal/handler"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/workers"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	workers         *workers.Workers
	persister       Persister
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer creates the transports enabled in cfg. On shutdown the returned
// server stops the transports, then the workers, then writes a final
// snapshot through persister.
func NewServer(handlers *handler.Handlers, bg *workers.Workers, persister Persister, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		workers:         bg,
		persister:       persister,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.serve(ctx)
}

func (s *server) serve(ctx context.Context) {
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	var workersDone sync.WaitGroup
	if s.workers != nil {
		workersDone.Go(func() {
			s.workers.Run(workersCtx)
		})
	}

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go s.gRPCServer.RunServer()
	}

	<-ctx.Done()

	shutdownCtx, cancel := s.shutdownContext()
	defer cancel()

	s.Shutdown(shutdownCtx)

	stopWorkers()
	workersDone.Wait()

	if s.persister != nil {
		if err := s.persister.Persist(shutdownCtx); err != nil {
			s.logger.Err(err).Msg("final snapshot failed")
		} else {
			s.logger.Info().Msg("final snapshot saved")
		}
	}

	s.logger.Info().Msg("server Shutdown gracefully")
}

// shutdownContext bounds shutdown and the final snapshot. A zero timeout
// waits for both without limit.
func (s *server) shutdownContext() (context.Context, context.CancelFunc) {
	if s.shutdownTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.shutdownTimeout)
}

func (s *server) Shutdown(ctx context.Context) {
	if s.httpServer != nil {
		s.httpServer.Shutdown(ctx)
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown(ctx)
	}
}
