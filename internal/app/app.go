package app

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hance08/concil/internal/config"
	"github.com/hance08/concil/internal/constants"
	"github.com/hance08/concil/internal/gateway"
	"github.com/hance08/concil/internal/logger"
	"github.com/hance08/concil/internal/lookup"
	"github.com/hance08/concil/internal/service"
	"github.com/hance08/concil/internal/store"
)

type App struct {
	Config       *config.Config
	Logger       *slog.Logger
	Service      *service.Service
	Store        store.Repository
	Transactions *store.TransactionTable
	Lookup       *lookup.Controller
}

// NewApp initialize config, database and core logic, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	log := logger.New(cfg.Log, os.Stderr)
	slog.SetDefault(log)

	dbPath, err := DatabasePath(cfg)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	table, err := store.NewTransactionTable(store.SampleTransactions()...)
	if err != nil {
		_ = dbStore.Close()
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	controller := lookup.NewController(table,
		lookup.WithDelay(time.Duration(cfg.Lookup.DelayMs)*time.Millisecond),
		lookup.WithLogger(log),
	)

	// the portal client gets a controller of its own so an interactive
	// lookup never races with a reconciliation run
	portalController := lookup.NewController(table,
		lookup.WithDelay(time.Duration(cfg.Lookup.DelayMs)*time.Millisecond),
		lookup.WithLogger(log),
	)

	svc := service.NewService(dbStore, log,
		gateway.NewMockGateway(cfg.Gateway.DivergenceRate, nil),
		gateway.NewPortalGateway(portalController, time.Duration(cfg.Gateway.TimeoutSeconds)*time.Second, log),
	)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}

	return &App{
		Config:       cfg,
		Logger:       log,
		Service:      svc,
		Store:        dbStore,
		Transactions: table,
		Lookup:       controller,
	}, cleanup, nil
}

// DatabasePath resolves the configured database path, defaulting to the
// app data directory.
func DatabasePath(cfg *config.Config) (string, error) {
	if cfg.Database.Path != "" {
		return ExpandPath(cfg.Database.Path)
	}

	appDir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, constants.DatabaseFile), nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

// ExpandPath replaces a leading "~" with the user home directory.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
