package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mhoque/drillsight/internal/controllers/restserver"
	"github.com/mhoque/drillsight/internal/database"
	"github.com/mhoque/drillsight/pkg/config"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	configProvider config.ConfigProvider
	logger         *zap.SugaredLogger
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
	}
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := a.configProvider.GetStorageConfig()
	if err != nil {
		return fmt.Errorf("could not load storage configuration: %w", err)
	}
	if cfg == nil || cfg.Postgres == nil || cfg.Postgres.ConnectionString == "" {
		return fmt.Errorf("no storage backend configured")
	}

	db := database.NewClient(a.logger)
	if err := db.Connect(cfg.Postgres.ConnectionString); err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}

	restCfg, err := a.configProvider.GetRESTServerConfig()
	if err != nil {
		return fmt.Errorf("could not load REST server configuration: %w", err)
	}
	var restConfig config.RESTServerData
	if restCfg != nil {
		restConfig = *restCfg
	}

	ctrl, err := restserver.NewController(ctx, &wg, a.configProvider, restConfig, db, a.logger)
	if err != nil {
		return fmt.Errorf("could not create REST server controller: %w", err)
	}
	if err := ctrl.StartController(); err != nil {
		return fmt.Errorf("could not start REST server controller: %w", err)
	}

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Infof("received signal %v, shutting down", sig)
	case <-ctx.Done():
		a.logger.Info("context cancelled, shutting down")
	}

	cancel()
	wg.Wait()

	return nil
}
