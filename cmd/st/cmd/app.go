package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/skill-transfer/skill-transfer/internal/adapter"
	"github.com/skill-transfer/skill-transfer/internal/config"
	"github.com/skill-transfer/skill-transfer/internal/logging"
)

// app bundles the collaborators every command needs.
type app struct {
	cfg        *config.Config
	configPath string
	store      *config.Store
	logger     *slog.Logger
	registry   *adapter.Registry
	closer     io.Closer
}

// loadApp reads the config, builds the logger and registers the adapters.
// A corrupt config file falls back to defaults with a warning.
func loadApp() (*app, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, loadErr := config.Load(path)
	if loadErr != nil {
		cfg = config.Default()
	}
	cfg.WithEnv()
	if verbose {
		cfg.Logging.Level = config.LogLevelDebug
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	logger, closer, err := logging.NewFromConfig(cfg, filepath.Dir(path))
	if err != nil {
		logger = logging.NewDefault()
		logger.Warn("log file unavailable, logging to stderr", "error", err)
	}
	if loadErr != nil {
		logger.Warn("config unreadable, using defaults", "path", path, "error", loadErr)
	}

	registry, err := adapter.NewRegistryForUser(logger)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}

	return &app{
		cfg:        cfg,
		configPath: path,
		store:      config.NewStore(path, logger),
		logger:     logger,
		registry:   registry,
		closer:     closer,
	}, nil
}

// Close flushes the log file, if any.
func (a *app) Close() {
	if a.closer != nil {
		a.closer.Close()
	}
}
