package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/service"
	"github.com/MKhiriev/go-custody/models"
)

type TUI struct {
	services *service.ClientServices
	build    models.AppBuildInfo
	logger   *logger.Logger
}

func New(services *service.ClientServices, build models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, build: build, logger: logger}
}

// Dashboard runs the owner dashboard until the user quits. The caller must
// be logged in as owner.
func (t *TUI) Dashboard(ctx context.Context) error {
	model := newDashboardModel(ctx, t.services.CustodyService, t.build)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Msg("dashboard stopped")
		return err
	}
	return nil
}
