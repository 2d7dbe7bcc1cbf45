package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/heartmarshall/moduleversion/internal/adapter/postgres"
	"github.com/heartmarshall/moduleversion/internal/adapter/postgres/extension"
	"github.com/heartmarshall/moduleversion/internal/adapter/postgres/module"
	pgversion "github.com/heartmarshall/moduleversion/internal/adapter/postgres/version"
	"github.com/heartmarshall/moduleversion/internal/adapter/sqlite"
	"github.com/heartmarshall/moduleversion/internal/config"
	"github.com/heartmarshall/moduleversion/internal/metrics"
	"github.com/heartmarshall/moduleversion/internal/service/version"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/moduleversion/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// Runtime is a wired version service together with the resources it holds.
type Runtime struct {
	Service *version.Service
	Metrics *metrics.Metrics
	Logger  *slog.Logger

	textfile string
	closers  []func()
}

// Bootstrap loads configuration from configPath (CONFIG_PATH when empty),
// initializes the logger and wires the service against the configured
// storage backend.
func Bootstrap(ctx context.Context, configPath string) (*Runtime, error) {
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting",
		slog.String("version", BuildVersion()),
		slog.String("storage", cfg.Storage.Backend),
		slog.Int("versions_max", cfg.Versions.Max),
	)

	return New(ctx, cfg, logger)
}

// New wires the service for cfg. The caller must Close the runtime.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	rt := &Runtime{
		Metrics:  metrics.New(),
		Logger:   logger,
		textfile: cfg.Metrics.TextfilePath,
	}
	policy := version.RetentionPolicy{MaxVersions: cfg.Versions.Max}

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		rt.closers = append(rt.closers, pool.Close)

		rt.Service = version.NewService(logger,
			pgversion.New(pool),
			module.New(pool),
			extension.New(pool),
			postgres.NewTxManager(pool),
			rt.Metrics,
			policy,
			cfg.Versions.PruneConcurrency,
		)

	case config.BackendSQLite:
		store, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		rt.closers = append(rt.closers, func() {
			if err := store.Close(); err != nil {
				logger.Warn("close sqlite store", slog.String("error", err.Error()))
			}
		})

		rt.Service = version.NewService(logger,
			store.Versions(),
			store.Modules(),
			store.Extensions(),
			store.TxManager(),
			rt.Metrics,
			policy,
			cfg.Versions.PruneConcurrency,
		)

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return rt, nil
}

// FlushMetrics writes the collected metrics to the configured textfile.
// Without a configured path it does nothing.
func (r *Runtime) FlushMetrics() error {
	if r.textfile == "" {
		return nil
	}
	if err := r.Metrics.WriteTextfile(r.textfile); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// Close releases the storage backend. It is safe to call more than once.
func (r *Runtime) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
	r.closers = nil
}
