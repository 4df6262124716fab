package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/messagely/internal/messagely/http"
	"github.com/aussiebroadwan/messagely/internal/messagely/service"
	"github.com/aussiebroadwan/messagely/internal/messagely/store"
	"github.com/aussiebroadwan/messagely/internal/messagely/store/drivers/sqlite"
	"github.com/aussiebroadwan/messagely/pkg/cryptox"
	"github.com/aussiebroadwan/messagely/pkg/jwtx"
	"github.com/aussiebroadwan/messagely/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X ...app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application encapsulates the messagely service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier

	// Services
	userService    *service.UserService
	tokenService   *service.TokenService
	messageService *service.MessageService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "messagely",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	signer, verifier, err := InitSigningKey(app.cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.signer = signer
	app.verifier = verifier

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired router.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("messagely starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down messagely...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("messagely stopped")
	return nil
}

// initDatabase opens the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.userService = &service.UserService{
		Store:  app.db,
		Hasher: cryptox.NewBcryptHasher(app.cfg.BcryptWorkFactor),
	}
	app.tokenService = &service.TokenService{
		Signer: app.signer,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.TokenTTL,
	}
	app.messageService = &service.MessageService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.UserService = app.userService
	router.TokenService = app.tokenService
	router.MessageService = app.messageService
	router.StrictLimit = app.cfg.StrictLimit
	router.LenientLimit = app.cfg.LenientLimit
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
