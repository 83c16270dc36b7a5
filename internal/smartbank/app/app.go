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

	httpapi "github.com/aussiebroadwan/smartbank/internal/smartbank/http"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/service"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/postgres"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/sqlite"
	"github.com/aussiebroadwan/smartbank/pkg/cryptox"
	"github.com/aussiebroadwan/smartbank/pkg/jwtx"
	"github.com/aussiebroadwan/smartbank/pkg/slogx"
)

// BuildVersion is overridden at build time with
// -ldflags "-X github.com/aussiebroadwan/smartbank/internal/smartbank/app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application wires the store, services and HTTP server together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	tokens *jwtx.HS256
	hasher cryptox.Hasher

	userService *service.UserService
	kycService  *service.KYCService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "smartbank-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	hasher, err := cryptox.NewHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	app.hasher = hasher

	if err := app.initTokens(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired router.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("smartbank api starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.DatabaseDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

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
	app.logger.Info("shutting down smartbank api...")

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

	app.logger.Info("smartbank api stopped")
	return nil
}

// initTokens builds the HS256 token service. Dev without SECRET_KEY gets a
// random secret, so tokens do not survive a restart.
func (app *Application) initTokens() error {
	secret := app.cfg.SecretKey
	if secret == "" {
		generated, err := cryptox.GenerateSecret(cryptox.SecretSize256)
		if err != nil {
			return err
		}
		secret = generated
		app.logger.Warn("SECRET_KEY not set, using an ephemeral signing secret")
	}

	tokens, err := jwtx.NewHS256([]byte(secret), app.cfg.TokenIssuer, app.cfg.AccessTokenTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}
	app.tokens = tokens
	return nil
}

// initDatabase opens the configured store and applies migrations
func (app *Application) initDatabase() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := openStore(ctx, app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// openStore opens the store selected by cfg and brings its schema up to date.
func openStore(ctx context.Context, cfg Config) (store.Store, error) {
	var (
		db  store.Store
		err error
	)
	switch cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.Open(ctx, cfg.DatabaseURL)
	default:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile)
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

// initHTTP initializes the HTTP router, the services and the server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.tokens,
		app.tokens.TTL(),
		BuildVersion,
		app.db,
		app.logger,
	)
	router.Limits = httpapi.RateLimits{
		Strict:   app.cfg.StrictLimit,
		Moderate: app.cfg.ModerateLimit,
		Lenient:  app.cfg.LenientLimit,
		Public:   app.cfg.PublicLimit,
	}

	app.userService = &service.UserService{
		Store:   app.db,
		Tokens:  app.tokens,
		Hasher:  app.hasher,
		Metrics: router.Metrics,
	}
	app.kycService = &service.KYCService{
		Store:   app.db,
		Metrics: router.Metrics,
	}

	router.UserService = app.userService
	router.KYCService = app.kycService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
