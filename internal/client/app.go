package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-custody/internal/adapter"
	"github.com/MKhiriev/go-custody/internal/config"
	"github.com/MKhiriev/go-custody/internal/crypto"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/service"
	"github.com/MKhiriev/go-custody/internal/store"
	"github.com/MKhiriev/go-custody/internal/tui"
	"github.com/MKhiriev/go-custody/models"
)

type App struct {
	cfg    *config.ClientConfig
	build  models.AppBuildInfo
	logger *logger.Logger

	// token skips the owner login when set from --token.
	token string

	adapter  adapter.ServerAdapter
	services *service.ClientServices
	walletDB *store.DB
}

func NewApp(cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{cfg: cfg, build: build, logger: logger}
}

// Run executes the command line until it finishes or the process receives
// SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer a.close()

	return a.Command().ExecuteContext(ctx)
}

// connect builds the adapter, opens the wallet database and wires the client
// services. Flags have been applied to cfg at this point.
func (a *App) connect(ctx context.Context) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(a.cfg.Adapter, a.cfg.App, a.logger)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}
	if a.token != "" {
		serverAdapter.SetToken(a.token)
	}

	db, err := store.NewConnect(ctx, config.DB{DSN: a.cfg.Wallet.Path}, a.logger)
	if err != nil {
		return fmt.Errorf("open wallet database: %w", err)
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return fmt.Errorf("migrate wallet database: %w", err)
	}

	a.adapter = serverAdapter
	a.walletDB = db
	a.services = service.NewClientServices(serverAdapter, store.NewSnapshotRepository(db, a.logger), crypto.NewKeyChain(), a.logger)

	return nil
}

func (a *App) close() error {
	if a.walletDB == nil {
		return nil
	}
	err := a.walletDB.Close()
	a.walletDB = nil
	return err
}

// asOwner logs in with the configured owner secret unless a token was
// given on the command line.
func (a *App) asOwner(ctx context.Context) error {
	if a.token != "" {
		return nil
	}
	if a.cfg.App.OwnerSecret == "" {
		return ErrOwnerSecretRequired
	}

	_, err := a.services.AuthService.LoginOwner(ctx, a.cfg.App.OwnerSecret)
	return err
}

func (a *App) unlockWallet(ctx context.Context) error {
	if a.cfg.Wallet.Passphrase == "" {
		return ErrPassphraseRequired
	}
	return a.services.WalletService.Unlock(ctx, a.cfg.Wallet.Passphrase)
}

func (a *App) dashboard(cmd *cobra.Command) error {
	return tui.New(a.services, a.build, a.logger).Dashboard(cmd.Context())
}
