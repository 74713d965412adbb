package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/skill-transfer/skill-transfer/internal/atomicfile"
)

// Environment overrides.
const (
	EnvConfigPath = "ST_CONFIG"
	EnvLogLevel   = "ST_LOG_LEVEL"
	EnvLogFile    = "ST_LOG_FILE"
)

// LogLevel specifies the logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat specifies the log output format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// SkillsConfig holds the personal skills library location.
type SkillsConfig struct {
	// SourceDir is the last directory the user picked as skill source.
	SourceDir string `toml:"source_dir"`
}

// DefaultsConfig holds default values for prompts and commands.
type DefaultsConfig struct {
	// Target is the tool id preselected in the target prompt.
	Target string `toml:"target"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  LogLevel  `toml:"level"`
	Format LogFormat `toml:"format"`
	// File, when set, sends logs to a rotated file instead of stderr.
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Config is the main configuration struct for skill-transfer.
type Config struct {
	Version  string         `toml:"version"`
	Skills   SkillsConfig   `toml:"skills"`
	Defaults DefaultsConfig `toml:"defaults"`
	Logging  LoggingConfig  `toml:"logging"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Version: "1",
		Defaults: DefaultsConfig{
			Target: "antigravity",
		},
		Logging: LoggingConfig{
			Level:      LogLevelWarn,
			Format:     LogFormatText,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
	}
}

// DefaultDir returns ~/.skill-transfer.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".skill-transfer"), nil
}

// DefaultPath returns the config file location, honoring ST_CONFIG.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads configuration from file, merging with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration atomically.
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := atomicfile.Save(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// WithEnv applies ST_LOG_LEVEL and ST_LOG_FILE overrides.
func (c *Config) WithEnv() *Config {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = LogLevel(strings.ToLower(v))
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		c.Logging.File = v
	}
	return c
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("config version is required")
	}
	switch c.Logging.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("invalid logging format %q", c.Logging.Format)
	}
	return nil
}

// LogFile returns the absolute log file path, or "" when logging to stderr.
// Relative paths resolve against baseDir.
func (c *Config) LogFile(baseDir string) string {
	if c.Logging.File == "" {
		return ""
	}
	if filepath.IsAbs(c.Logging.File) {
		return c.Logging.File
	}
	return filepath.Join(baseDir, c.Logging.File)
}
