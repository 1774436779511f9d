package service

import (
	"fmt"

	"github.com/MKhiriev/go-custody/internal/config"
	"github.com/MKhiriev/go-custody/internal/custody"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/store"
	"github.com/MKhiriev/go-custody/models"
)

type Services struct {
	AuthService    AuthService
	CustodyService CustodyService
	AppInfoService AppInfoService
}

// NewServices wires the service layer. Custody calls pass the access check
// first, then validation of request shape, then reach the component, which
// checks the fee before judging a confidential proof.
func NewServices(component *custody.Component, registry ResourceRegistry, storages *store.Storages, ids IDGenerator, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	var custodyService CustodyService = NewCustodyService(component, registry, storages, ids, logger)
	custodyService = NewCustodyValidationService().Wrap(custodyService)
	custodyService = NewCustodyAccessService(component).Wrap(custodyService)

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		CustodyService: custodyService,
		AppInfoService: appInfo,
	}, nil
}
