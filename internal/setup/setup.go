// Package setup bootstraps the engine and its host-side dependencies.
package setup

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/rueidis"
	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/delivery"
	"github.com/robalyx/blogchain/internal/engine/service"
	"github.com/robalyx/blogchain/internal/engine/storage"
	"github.com/robalyx/blogchain/internal/setup/config"
)

// App bundles the core dependencies of a running engine instance.
type App struct {
	Config      *config.Config
	Logger      *zap.Logger
	Store       storage.Store
	Engine      *service.Engine
	redisClient rueidis.Client
	badger      *storage.BadgerStore
}

// Options tweak how the app is initialized.
type Options struct {
	// InMemory replaces the persistent store with an in-memory one.
	InMemory bool
	// NoEvents disables the Redis event publisher.
	NoEvents bool
	// Debug switches the logger to development output.
	Debug bool
}

// InitializeApp bootstraps configuration, logging, storage and the engine in
// dependency order. A missing config file falls back to built-in defaults.
func InitializeApp(_ context.Context, opts Options) (*App, error) {
	cfg, configPath, err := config.LoadConfig()
	if err != nil {
		if !errors.Is(err, config.ErrConfigFileNotFound) {
			return nil, err
		}
		cfg = config.DefaultConfig()
	}

	logger, err := newLogger(opts.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if configPath != "" {
		logger.Info("Loaded engine config", zap.String("path", configPath))
	} else {
		logger.Info("Using built-in engine config defaults")
	}

	app := &App{Config: cfg, Logger: logger}

	if opts.InMemory {
		app.Store = storage.NewMemoryStore()
	} else {
		badgerStore, err := storage.OpenBadger(cfg.Host.DataDir, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open store: %w", err)
		}

		app.Store = badgerStore
		app.badger = badgerStore
	}

	var emitter service.Emitter
	if !opts.NoEvents {
		client, err := delivery.NewRedisClient(&cfg.Host.Redis)
		if err != nil {
			return nil, err
		}

		app.redisClient = client
		emitter = delivery.NewRedisPublisher(client, logger)
	}

	app.Engine = service.NewEngine(app.Store, cfg, emitter, logger)

	return app, nil
}

// Cleanup shuts the components down in reverse initialization order. Errors
// are logged, not returned, so every component gets a cleanup attempt.
func (a *App) Cleanup() {
	if a.redisClient != nil {
		a.redisClient.Close()
	}

	if a.badger != nil {
		if err := a.badger.Close(); err != nil {
			a.Logger.Error("Failed to close store", zap.Error(err))
		}
	}

	_ = a.Logger.Sync()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
