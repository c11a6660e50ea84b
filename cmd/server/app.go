package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/acme-services/catalog-api/internal/config"
	"github.com/acme-services/catalog-api/internal/platform/postgres"
	"github.com/acme-services/catalog-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown. Every dependency is
// injected explicitly; there are no package-level singletons.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (interfaces, so handlers never see the concrete backend)
	productStore store.ProductStore
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the core dependencies that must be established
// before application wiring: configuration, logger, and the database
// connection pool.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.productStore = postgres.NewProductStore(db, logger)

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
	app.logger.Info("Application shutdown completed")
}
