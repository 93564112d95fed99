package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"gpirscli/internal/config"
	apierrors "gpirscli/internal/errors"
	"gpirscli/internal/infrastructure"
	customMiddleware "gpirscli/internal/middleware"
	"gpirscli/internal/services"
	transporthttp "gpirscli/internal/transport/http"
)

const (
	// AppName is the service name used in startup logs.
	AppName = "gpirs-shortage-converter"
	// Version is the service version reported by the health endpoint.
	Version = "v1.0.0"
)

// Application wires configuration, logging, telemetry, the conversion
// service, and the HTTP server into one runnable unit.
type Application struct {
	Config        *config.Config
	Logger        *slog.Logger
	OTelProviders *infrastructure.OTelProviders
	Router        chi.Router
	Server        *http.Server

	ConvertService *services.ConvertService
}

// NewApplication creates a new application instance with dependency injection
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("name", AppName),
		slog.String("version", Version))

	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	otelProviders, err := infrastructure.InitializeOTel(infrastructure.DefaultOTelConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics, err := infrastructure.CreateConversionMetrics(otelProviders.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversion metrics: %w", err)
	}

	app := &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: otelProviders,
		ConvertService: services.NewConvertService(
			logger, otelProviders.Tracer, metrics),
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// setupRouter configures the HTTP router with all routes
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(a.Logger))

	if a.Config.RateLimit.Enabled {
		r.Use(customMiddleware.NewRateLimiter(
			a.Config.RateLimit.RPS,
			a.Config.RateLimit.Burst,
			a.Logger,
		).Handler)
	}

	errorHandler := apierrors.NewErrorHandler(a.Logger)
	convertHandler := transporthttp.NewConvertHandler(a.ConvertService, a.Logger, errorHandler,
		a.Config.Server.MaxUploadBytes)
	healthHandler := transporthttp.NewHealthHandler(a.Logger, Version)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/convert", convertHandler.Routes())
	})
	r.Get("/healthz", healthHandler.HealthCheck)
	r.Get("/healthz/live", healthHandler.LivenessCheck)

	// Prometheus scrape endpoint stays outside the middleware chain.
	if a.OTelProviders.PrometheusHTTP != nil {
		r.Handle("/metrics", a.OTelProviders.PrometheusHTTP)
	}

	a.Router = r
}

// createServer creates the HTTP server
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Start starts the HTTP server in the background.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	a.Logger.InfoContext(ctx, "Starting application",
		slog.String("name", AppName),
		slog.String("version", Version),
		slog.Int("port", a.Config.Server.Port),
		slog.String("level", a.Config.Logging.Level))

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.ErrorContext(ctx, "Server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	a.Logger.InfoContext(ctx, "Application started successfully",
		slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)))

	return nil
}

// Stop gracefully stops the application
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(shutdownCtx); err != nil {
			a.Logger.ErrorContext(ctx, "Error shutting down OpenTelemetry", slog.String("error", err.Error()))
		}
	}

	infrastructure.CloseLogFile()

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}

// Run runs the application until interrupted
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case <-sigChan:
		a.Logger.InfoContext(ctx, "Received interrupt signal")
	case <-ctx.Done():
	}

	return a.Stop(context.Background())
}
