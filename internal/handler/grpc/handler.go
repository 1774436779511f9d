package grpc

import (
	"google.golang.org/grpc"

	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/service"
)

// Handler is the root gRPC transport handler.
//
// It implements [CustodyServer] on top of the service layer. A handler
// instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the custody service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&custodyServiceDesc, h)
}

// ServerOptions returns the interceptor chain every server hosting this
// handler must install: trace id first, then authentication.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.auth),
	}
}
