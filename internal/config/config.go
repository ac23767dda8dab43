package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
// It is read-only after Load() returns and safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Sentry   SentryConfig   `yaml:"-"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int      `yaml:"port"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig selects the SQL driver and its data source.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SnapshotConfig controls database snapshots. Snapshots are written to Dir
// and, when Bucket is set, uploaded to S3-compatible storage.
type SnapshotConfig struct {
	Dir       string   `yaml:"dir"`
	Bucket    string   `yaml:"bucket"`
	Endpoint  string   `yaml:"endpoint"`
	Region    string   `yaml:"region"`
	UseSSL    *bool    `yaml:"use_ssl"` // nil means true
	AccessKey string   `yaml:"-"`       // env-only, never in YAML
	SecretKey string   `yaml:"-"`       // env-only, never in YAML
	URLExpiry Duration `yaml:"url_expiry"`
}

// SentryConfig contains error reporting settings.
type SentryConfig struct {
	DSN string // env-only, never in YAML
}

// Duration is a wrapper around time.Duration that supports YAML string parsing.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Load loads configuration with precedence: defaults → YAML file → .env → env vars.
func Load() (*Config, error) {
	cfg := newDefaults()

	configPath := getEnv("FITLOG_CONFIG_PATH", "config/fitlog.yaml")

	// Missing file is not an error
	if err := loadYAMLFile(cfg, configPath); err != nil {
		return nil, err
	}

	loadDotEnv()

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific path.
// Unlike Load, the file must exist.
func LoadFromFile(path string) (*Config, error) {
	cfg := newDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newDefaults returns a Config with all default values.
func newDefaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     Duration(30 * time.Second),
			WriteTimeout:    Duration(30 * time.Second),
			ShutdownTimeout: Duration(15 * time.Second),
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "data/fitlog.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Snapshot: SnapshotConfig{
			Dir:       "data/snapshots",
			Region:    "us-east-1",
			URLExpiry: Duration(15 * time.Minute),
		},
	}
}

// loadYAMLFile loads configuration from a YAML file if it exists.
func loadYAMLFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// loadDotEnv populates the process environment from ./.env.
// Variables already set in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
// Only non-empty env vars override config values.
func applyEnvOverrides(cfg *Config) error {
	// Server
	if v := os.Getenv("FITLOG_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FITLOG_PORT: invalid port %q", v)
		}
		cfg.Server.Port = port
	}
	durations := []struct {
		key string
		dst *Duration
	}{
		{"FITLOG_READ_TIMEOUT", &cfg.Server.ReadTimeout},
		{"FITLOG_WRITE_TIMEOUT", &cfg.Server.WriteTimeout},
		{"FITLOG_SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout},
		{"FITLOG_S3_URL_EXPIRY", &cfg.Snapshot.URLExpiry},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: invalid duration %q", d.key, v)
		}
		*d.dst = Duration(parsed)
	}

	// Database
	if v := os.Getenv("FITLOG_DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("FITLOG_DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}

	// Log
	if v := os.Getenv("FITLOG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FITLOG_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	// Snapshot
	texts := []struct {
		key string
		dst *string
	}{
		{"FITLOG_SNAPSHOT_DIR", &cfg.Snapshot.Dir},
		{"FITLOG_SNAPSHOT_BUCKET", &cfg.Snapshot.Bucket},
		{"FITLOG_S3_ENDPOINT", &cfg.Snapshot.Endpoint},
		{"FITLOG_S3_REGION", &cfg.Snapshot.Region},
		{"FITLOG_S3_ACCESS_KEY", &cfg.Snapshot.AccessKey},
		{"FITLOG_S3_SECRET_KEY", &cfg.Snapshot.SecretKey},
	}
	for _, sv := range texts {
		if v := os.Getenv(sv.key); v != "" {
			*sv.dst = v
		}
	}
	if v := os.Getenv("FITLOG_S3_USE_SSL"); v != "" {
		useSSL, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FITLOG_S3_USE_SSL: invalid boolean %q", v)
		}
		cfg.Snapshot.UseSSL = &useSSL
	}

	// SENTRY_DSN is the Sentry SDK convention
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		cfg.Sentry.DSN = v
	}

	return nil
}

// validate checks that configuration values are usable.
func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite", "pgx":
	default:
		return fmt.Errorf("database driver %q is not supported (use sqlite or pgx)", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database dsn is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range 1-65535", c.Server.Port)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log format %q is not supported (use json or text)", c.Log.Format)
	}
	if c.Snapshot.Bucket != "" && c.Snapshot.Endpoint == "" {
		return errors.New("snapshot bucket requires FITLOG_S3_ENDPOINT")
	}
	return nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
