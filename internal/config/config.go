// Package config handles application configuration and environment loading.
package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dataset engines.
const (
	EngineAuto   = "auto"
	EngineFrame  = "frame"
	EngineDuckDB = "duckdb"
)

// DatasetConfig describes where the passenger dataset lives and how to read it.
type DatasetConfig struct {
	Path   string // local path or URL (file://, http(s)://, s3://, gs://, azure://)
	Format string // "", "csv" or "parquet"; empty means detect from the extension
	Engine string // auto, frame or duckdb (default auto)
}

// StorageConfig holds optional object-storage credentials for remote datasets.
type StorageConfig struct {
	// S3 fields are nil when not configured.
	S3KeyID    *string
	S3Secret   *string
	S3Endpoint *string
	S3Region   *string

	GCSKeyFile string // service account JSON for gs:// datasets

	AzureAccountName string
	AzureAccountKey  string
}

// HasS3Config returns true if all required S3 fields are set.
func (s *StorageConfig) HasS3Config() bool {
	return s.S3KeyID != nil && s.S3Secret != nil &&
		s.S3Endpoint != nil && s.S3Region != nil
}

// HasAzureConfig returns true when shared-key Azure credentials are set.
func (s *StorageConfig) HasAzureConfig() bool {
	return s.AzureAccountName != "" && s.AzureAccountKey != ""
}

// Config holds the configuration for the dashboard server and CLI.
type Config struct {
	Dataset DatasetConfig
	Storage StorageConfig

	ListenAddr  string // HTTP listen address (default ":8080")
	TLSCertFile string // TLS certificate file path (optional)
	TLSKeyFile  string // TLS private key file path (optional)
	LogLevel    string // log level: debug, info, warn, error (default "info")
	LogFormat   string // "json" or "text"; defaults to json in production
	Env         string // environment: "development" (default) or "production"

	// Rate limiting
	RateLimitRPS   float64 // sustained requests per second (default 50)
	RateLimitBurst int     // burst capacity (default 100)

	// CORS
	CORSAllowedOrigins []string // allowed origins for the JSON API (default: ["*"])

	// Warnings collects non-fatal warnings generated during config loading.
	// These are logged by the caller after the logger is initialised.
	Warnings []string
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction returns true when the server is running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// NewLogger builds the process logger from LogLevel and LogFormat.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	format := strings.ToLower(c.LogFormat)
	if format == "json" || (format == "" && c.IsProduction()) {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// LoadFromEnv loads configuration from environment variables. When CONFIG_FILE
// names a YAML file, its values are exported first for any variable not
// already set, so the environment always wins.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := LoadYAMLFile(path); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Dataset: DatasetConfig{
			Path:   os.Getenv("DATASET_PATH"),
			Format: strings.ToLower(os.Getenv("DATASET_FORMAT")),
			Engine: strings.ToLower(os.Getenv("DATASET_ENGINE")),
		},
		Storage: StorageConfig{
			GCSKeyFile:       os.Getenv("GCS_KEY_FILE"),
			AzureAccountName: os.Getenv("AZURE_ACCOUNT_NAME"),
			AzureAccountKey:  os.Getenv("AZURE_ACCOUNT_KEY"),
		},
		ListenAddr:  os.Getenv("LISTEN_ADDR"),
		TLSCertFile: os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:  os.Getenv("TLS_KEY_FILE"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		LogFormat:   os.Getenv("LOG_FORMAT"),
		Env:         os.Getenv("ENV"),
	}

	// Rate limiting
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", v, err)
		}
		cfg.RateLimitRPS = f
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q: %w", v, err)
		}
		cfg.RateLimitBurst = n
	}

	// S3 fields are only set if present
	if v := os.Getenv("KEY_ID"); v != "" {
		cfg.Storage.S3KeyID = &v
	}
	if v := os.Getenv("SECRET"); v != "" {
		cfg.Storage.S3Secret = &v
	}
	if v := os.Getenv("ENDPOINT"); v != "" {
		cfg.Storage.S3Endpoint = &v
	}
	if v := os.Getenv("REGION"); v != "" {
		cfg.Storage.S3Region = &v
	}

	// CORS
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSAllowedOrigins = compactNonEmpty(origins)
	}

	// Defaults
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = "titanic.csv"
	}
	if cfg.Dataset.Engine == "" {
		cfg.Dataset.Engine = EngineAuto
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.RateLimitRPS == 0 {
		cfg.RateLimitRPS = 50
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 100
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints and production hardening rules.
func (c *Config) Validate() error {
	switch c.Dataset.Engine {
	case EngineAuto, EngineFrame, EngineDuckDB:
	default:
		return fmt.Errorf("unsupported DATASET_ENGINE %q: use auto, frame or duckdb", c.Dataset.Engine)
	}
	switch c.Dataset.Format {
	case "", "csv", "parquet":
	default:
		return fmt.Errorf("unsupported DATASET_FORMAT %q: use csv or parquet", c.Dataset.Format)
	}
	if c.Dataset.Format == "parquet" && c.Dataset.Engine == EngineFrame {
		return fmt.Errorf("DATASET_ENGINE=frame cannot read parquet; use duckdb or auto")
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return fmt.Errorf("both TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit settings must not be negative")
	}

	// Production mode: insecure defaults are fatal errors.
	if c.IsProduction() {
		if len(c.CORSAllowedOrigins) == 1 && c.CORSAllowedOrigins[0] == "*" {
			return fmt.Errorf("CORS wildcard (*) is not allowed in production (ENV=production)")
		}
	} else if c.TLSCertFile == "" {
		c.Warnings = append(c.Warnings, "TLS is not configured; serving plain HTTP")
	}
	return nil
}

func compactNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// LoadYAMLFile reads a flat YAML mapping of environment variable names to
// values and sets any variable not already in the environment.
func LoadYAMLFile(path string) error {
	raw, err := os.ReadFile(path) //nolint:gosec // path is operator-controlled
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	var values map[string]any
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	for key, v := range values {
		if os.Getenv(key) != "" {
			continue
		}
		var value string
		switch tv := v.(type) {
		case nil:
			continue
		case []any:
			parts := make([]string, 0, len(tv))
			for _, item := range tv {
				parts = append(parts, fmt.Sprint(item))
			}
			value = strings.Join(parts, ",")
		default:
			value = fmt.Sprint(tv)
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("setenv %s: %w", key, err)
		}
	}
	return nil
}

// LoadDotEnv reads a .env file and sets any variables not already in the environment.
// Lines must be in KEY=VALUE format. Comments (#) and blank lines are skipped.
func LoadDotEnv(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil // .env not found is not an error
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = stripQuotes(strings.TrimSpace(value))
		// Only set if not already in the environment (env vars take precedence)
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("setenv %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}

// stripQuotes removes surrounding double or single quotes from a value.
// Only strips if both the first and last characters are matching quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
