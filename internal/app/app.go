// Package app initializes and holds long-lived application services, acting as a dependency injection container.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/taori/benchmark-scraper/internal/api"
	"github.com/taori/benchmark-scraper/internal/cache"
	"github.com/taori/benchmark-scraper/internal/clock/system"
	collyfetcher "github.com/taori/benchmark-scraper/internal/fetcher/colly"
	"github.com/taori/benchmark-scraper/internal/hash/sha256"
	"github.com/taori/benchmark-scraper/internal/id/uuid"
	"github.com/taori/benchmark-scraper/internal/logging"
	"github.com/taori/benchmark-scraper/internal/scraper"
)

// App holds all the shared, long-lived services for the application.
// It is initialized once at startup and passed to the commands that need it.
type App struct {
	logger       *zap.Logger
	cfg          scraper.Config
	orchestrator *scraper.Orchestrator
	ops          *api.Server
}

// NewApp creates and initializes a new App based on the application's
// configuration. It is the central point for service initialization and
// fails fast if any critical service cannot be built.
func NewApp(_ context.Context) (*App, error) {
	logger, err := logging.New(viper.GetBool("logging.development"))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	cfg, err := scraper.LoadConfig(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("load scraper config: %w", err)
	}

	hasher := sha256.New()
	pageCache, err := cache.New(cache.Config{BaseDir: cfg.CacheDir}, hasher)
	if err != nil {
		return nil, fmt.Errorf("init page cache: %w", err)
	}
	logger.Info("page cache ready", zap.String("base_dir", cfg.CacheDir))

	fetcher := collyfetcher.New(collyfetcher.Config{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.RequestTimeout,
	})

	rewriter := scraper.NewRuleRewriter(cfg.RewriteRules)
	loader := scraper.NewLoader(rewriter, pageCache, fetcher, logger)
	orchestrator := scraper.NewOrchestrator(
		loader,
		rewriter,
		system.New(),
		uuid.New(),
		cfg.MaxInFlight,
		logger,
	)

	a := &App{
		logger:       logger,
		cfg:          cfg,
		orchestrator: orchestrator,
	}
	if cfg.OpsAddr != "" {
		a.ops = api.NewServer(cfg.OpsAddr, logger)
		a.ops.Start()
	}
	return a, nil
}

// GetLogger returns the shared zap logger instance.
func (a *App) GetLogger() *zap.Logger {
	return a.logger
}

// GetConfig returns the loaded scraper configuration.
func (a *App) GetConfig() scraper.Config {
	return a.cfg
}

// GetOrchestrator returns the scrape pipeline orchestrator.
func (a *App) GetOrchestrator() *scraper.Orchestrator {
	return a.orchestrator
}

// Close shuts down services gracefully.
func (a *App) Close() {
	if a.ops != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.ops.Shutdown(ctx); err != nil {
			a.logger.Warn("ops server shutdown failed", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
