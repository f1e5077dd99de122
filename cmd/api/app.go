package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"heat-risk/internal/alert"
	"heat-risk/internal/config"
	"heat-risk/internal/model"
	"heat-risk/internal/observability"
	"heat-risk/internal/predict"
	"heat-risk/internal/risk"
	"heat-risk/internal/rolling"
	"heat-risk/internal/timezone"
	"heat-risk/internal/types"
	"heat-risk/internal/weather"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

//go:embed templates static
var assets embed.FS

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	cfg            *config.Config
	predictService predict.Service
	metrics        *observability.Metrics
	cities         []types.City
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	metrics := observability.NewMetrics()

	// Load the model once for the lifetime of the process
	riskModel, err := model.New(cfg.Model, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}

	timezones, err := timezone.NewService()
	if err != nil {
		logger.Warn("timezone lookup unavailable, using server timezone", "error", err)
	}

	switch {
	case !cfg.Alert.Enabled():
		logger.Info("email alerts disabled, no sender address configured")
	case cfg.Alert.Threshold == nil:
		logger.Info("email alerts disabled, no threshold configured")
	default:
		logger.Info("email alerts enabled",
			"threshold", *cfg.Alert.Threshold,
			"recipient", alert.RedactEmail(cfg.Alert.Recipient),
		)
	}

	predictSvc := predict.NewPredictService(predict.Dependencies{
		Cities:    types.Cities,
		Weather:   weather.NewWeatherService(cfg, logger),
		Tracker:   rolling.NewTracker(),
		Scorer:    risk.NewScorer(riskModel, metrics, clockwork.NewRealClock(), logger),
		Alerter:   alert.NewNotifier(cfg.Alert, metrics, logger),
		Timezones: timezones,
		Clock:     clockwork.NewRealClock(),
		Metrics:   metrics,
	}, logger)

	return newApp(cfg, logger, predictSvc, metrics)
}

// newApp builds the router around an already constructed prediction service
func newApp(cfg *config.Config, logger *slog.Logger, predictSvc predict.Service, metrics *observability.Metrics) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger, metrics))

	tmpl, err := template.ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to load static assets: %w", err)
	}
	router.StaticFS("/static", http.FS(static))

	app := &App{
		router:         router,
		logger:         logger,
		cfg:            cfg,
		predictService: predictSvc,
		metrics:        metrics,
		cities:         types.Cities,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down", "timeout", app.cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
