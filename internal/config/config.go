package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"userdir/internal/directory"
)

// ErrNotFound is returned when an explicitly requested config file does not exist
var ErrNotFound = errors.New("config file not found")

// EnvPrefix prefixes every environment override
const EnvPrefix = "USERDIR_"

// Config represents the application configuration
type Config struct {
	API API `toml:"api"`
	Log Log `toml:"log"`
}

// API configures the directory endpoint
type API struct {
	BaseURL string   `toml:"base_url" env:"API_URL"`
	Timeout Duration `toml:"timeout" env:"TIMEOUT"` // zero leaves it to the transport
}

// Log configures the log file
type Log struct {
	File  string `toml:"file" env:"LOG_FILE"`
	Level string `toml:"level" env:"LOG_LEVEL"`
}

// Duration is a time.Duration written as text ("5s") in the file and the environment
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		d.Duration = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if v < 0 {
		return fmt.Errorf("invalid duration %q: negative", s)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// SlogLevel parses Log.Level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

// Validate checks the fields a run depends on
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("api.base_url must not be empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the per-user config file
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "userdir", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service whose default file is path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the default config file; a missing file yields the defaults
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to the default file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys absent from
// the file keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays USERDIR_* environment variables onto cfg
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, env.Options{Prefix: EnvPrefix})
}

// ApplyEnvFrom is ApplyEnv reading from environ instead of the process environment
func ApplyEnvFrom(cfg *Config, environ map[string]string) error {
	return applyEnv(cfg, env.Options{Prefix: EnvPrefix, Environment: environ})
}

func applyEnv(cfg *Config, opts env.Options) error {
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: API{
			BaseURL: directory.DefaultBaseURL,
		},
		Log: Log{
			File:  "userdir.log",
			Level: "info",
		},
	}
}
