// Package initializer builds the runtime dependencies of the ledger from configuration.
package initializer

import (
	"context"
	"fmt"
	"io"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
)

// InitializeDependencies opens the database, applies the migrations when
// enabled and selects the event bus.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := infra.MigrateUp(db); err != nil {
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		logger.Info("Database migrations applied")
	}
	if sqlDB, err := db.DB(); err == nil {
		deps.Closers = append(deps.Closers, sqlDB)
	}

	deps.Uow = infra.NewUoW(db)

	bus, err := NewEventBus(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}
	deps.EventBus = bus
	if closer, ok := bus.(io.Closer); ok {
		deps.Closers = append([]io.Closer{closer}, deps.Closers...)
	}
	return deps, nil
}
