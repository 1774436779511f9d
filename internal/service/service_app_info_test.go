package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-custody/internal/config"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/service"
	"github.com/MKhiriev/go-custody/models"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.App
		build   models.AppBuildInfo
		want    string
		wantErr error
	}{
		{
			name: "configured version",
			cfg:  config.App{Version: "1.0.0"},
			want: "1.0.0",
		},
		{
			name:  "build version wins",
			cfg:   config.App{Version: "dev"},
			build: models.NewAppBuildInfo("v1.2.3-beta+build.42", "2026-10-01", "abc123"),
			want:  "v1.2.3-beta+build.42",
		},
		{
			name:  "build version only",
			build: models.NewAppBuildInfo("v2", "", ""),
			want:  "v2",
		},
		{
			name:    "no version at all",
			wantErr: service.ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := service.NewAppInfoService(tt.cfg, tt.build, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := service.NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
