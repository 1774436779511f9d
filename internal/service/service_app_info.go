package service

import (
	"context"

	"github.com/MKhiriev/go-custody/internal/config"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/models"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService reports the linker-stamped build version when there is
// one and the configured version otherwise.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := build.BuildVersion()
	if version == "" {
		version = cfg.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().
		Str("version", version).
		Str("build_date", build.BuildDate()).
		Str("build_commit", build.BuildCommit()).
		Msg("app info")

	return &appInfoService{appVersion: version}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
