package config

import (
	"log/slog"
	"strings"

	serrors "github.com/skill-transfer/skill-transfer/internal/errors"
)

// Store persists the chosen skill source directory across sessions.
// Every call re-reads the file; nothing is cached between calls.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a Store backed by the config file at path.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the config. An unreadable or corrupt file is logged and
// treated as defaults, never as a fatal error.
func (s *Store) Load() *Config {
	cfg, err := Load(s.path)
	if err != nil {
		s.logger.Warn("config unreadable, using defaults",
			"path", s.path,
			"error", serrors.ConfigRead(s.path, err))
		return Default()
	}
	return cfg
}

// SourceDir returns the saved source directory, or "" when unset.
func (s *Store) SourceDir() string {
	return strings.TrimSpace(s.Load().Skills.SourceDir)
}

// SetSourceDir saves dir as the source directory, preserving other settings.
func (s *Store) SetSourceDir(dir string) error {
	cfg := s.Load()
	cfg.Skills.SourceDir = dir
	if err := Save(s.path, cfg); err != nil {
		return serrors.ConfigWrite(s.path, err)
	}
	s.logger.Debug("source directory saved", "path", s.path, "source_dir", dir)
	return nil
}
