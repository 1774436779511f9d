package http

import (
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/service"
)

// Handler serves the custody REST API. Routes are registered by [Handler.Init].
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("HTTP handler created")
	return &Handler{services: services, logger: logger}
}
