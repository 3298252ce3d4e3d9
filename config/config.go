// Package config provides configuration loading and validation for the CLI.
// It uses koanf to merge an optional YAML file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration values for the CLI.
type Config struct {
	// Search
	Workers     int `koanf:"workers"`      // 0 means GOMAXPROCS
	DisplaySize int `koanf:"display_size"` // combined results kept

	// Output
	LogLevel  string `koanf:"log_level"`  // debug, info, warn, error
	LogFormat string `koanf:"log_format"` // text, json
	Output    string `koanf:"output"`     // text, json
	Codec     string `koanf:"codec"`      // json, go-json

	// Observability
	MetricsAddr string `koanf:"metrics_addr"` // empty disables the endpoint

	// Dataset loading
	IOLimitBytesPerSec int64 `koanf:"io_limit_bytes_per_sec"` // 0 means unlimited

	S3    S3Config    `koanf:"s3"`
	MinIO MinIOConfig `koanf:"minio"`
}

// S3Config configures s3:// sources.
type S3Config struct {
	Region   string `koanf:"region"`
	Endpoint string `koanf:"endpoint"`
}

// MinIOConfig configures minio:// sources.
type MinIOConfig struct {
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	Secure    bool   `koanf:"secure"`
}

// Configuration validation errors.
var (
	ErrInvalidWorkers     = errors.New("workers must not be negative")
	ErrInvalidDisplaySize = errors.New("display_size must be positive")
	ErrInvalidLogLevel    = errors.New("log_level must be one of debug, info, warn, error")
	ErrInvalidLogFormat   = errors.New("log_format must be text or json")
	ErrInvalidOutput      = errors.New("output must be text or json")
	ErrInvalidCodec       = errors.New("codec must be json or go-json")
	ErrInvalidIOLimit     = errors.New("io_limit_bytes_per_sec must not be negative")
	ErrInvalidNumber      = errors.New("must be a valid integer")
	ErrMissingMinIOKeys   = errors.New("minio access_key and secret_key are required with minio endpoint")
)

// Default values.
const (
	DefaultDisplaySize = 10
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultOutput      = "text"
	DefaultCodec       = "go-json"
)

// Load reads configuration from an optional config file and environment variables.
// Environment variables take precedence over file values.
// Returns the loaded config and a slice of validation errors (empty if valid).
// If a config file path is provided and the file cannot be loaded, an error is returned.
func Load(configFilePath string) (*Config, []error) {
	k := koanf.New(".")
	var loadErrs []error

	// Load from YAML file first if provided (lower precedence)
	if configFilePath != "" {
		if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
			return nil, []error{fmt.Errorf("failed to load config file %s: %w", configFilePath, err)}
		}
	}

	workers, err := getEnvIntOrDefault("CALCULATOR_WORKERS", k.Int("workers"), 0)
	if err != nil {
		loadErrs = append(loadErrs, err)
	}
	displaySize, err := getEnvIntOrDefault("CALCULATOR_DISPLAY_SIZE", k.Int("display_size"), DefaultDisplaySize)
	if err != nil {
		loadErrs = append(loadErrs, err)
	}
	ioLimit, err := getEnvIntOrDefault("CALCULATOR_IO_LIMIT", int(k.Int64("io_limit_bytes_per_sec")), 0)
	if err != nil {
		loadErrs = append(loadErrs, err)
	}

	minioSecure := k.Bool("minio.secure")
	if val := os.Getenv("CALCULATOR_MINIO_SECURE"); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes", "on":
			minioSecure = true
		case "false", "0", "no", "off":
			minioSecure = false
		}
	}

	// Build config struct, with env vars taking precedence over file values
	cfg := &Config{
		Workers:            workers,
		DisplaySize:        displaySize,
		LogLevel:           getEnvOrDefault("CALCULATOR_LOG_LEVEL", k.String("log_level"), DefaultLogLevel),
		LogFormat:          getEnvOrDefault("CALCULATOR_LOG_FORMAT", k.String("log_format"), DefaultLogFormat),
		Output:             getEnvOrDefault("CALCULATOR_OUTPUT", k.String("output"), DefaultOutput),
		Codec:              getEnvOrDefault("CALCULATOR_CODEC", k.String("codec"), DefaultCodec),
		MetricsAddr:        getEnvOrKoanf("CALCULATOR_METRICS_ADDR", k, "metrics_addr"),
		IOLimitBytesPerSec: int64(ioLimit),
		S3: S3Config{
			Region:   getEnvOrKoanf("AWS_REGION", k, "s3.region"),
			Endpoint: getEnvOrKoanf("CALCULATOR_S3_ENDPOINT", k, "s3.endpoint"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnvOrKoanf("CALCULATOR_MINIO_ENDPOINT", k, "minio.endpoint"),
			AccessKey: getEnvOrKoanf("CALCULATOR_MINIO_ACCESS_KEY", k, "minio.access_key"),
			SecretKey: getEnvOrKoanf("CALCULATOR_MINIO_SECRET_KEY", k, "minio.secret_key"),
			Secure:    minioSecure,
		},
	}

	// Validate and collect errors
	errs := cfg.Validate()
	errs = append(loadErrs, errs...)

	return cfg, errs
}

// getEnvOrKoanf returns the environment variable value if set, otherwise the koanf value.
func getEnvOrKoanf(envKey string, k *koanf.Koanf, koanfKey string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	return k.String(koanfKey)
}

// getEnvOrDefault returns the environment variable value if set, otherwise the koanf value, or default.
func getEnvOrDefault(envKey string, koanfVal string, defaultVal string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	if koanfVal != "" {
		return koanfVal
	}
	return defaultVal
}

// getEnvIntOrDefault returns the environment variable as int if set, otherwise the koanf value, or default.
// Returns an error if the environment variable is set but cannot be parsed as an integer.
func getEnvIntOrDefault(envKey string, koanfVal int, defaultVal int) (int, error) {
	if val := os.Getenv(envKey); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return defaultVal, fmt.Errorf("%s %w", envKey, ErrInvalidNumber)
		}
		return i, nil
	}
	if koanfVal != 0 {
		return koanfVal, nil
	}
	return defaultVal, nil
}

// Validate checks that all configuration values are usable.
// Returns a slice of validation errors (empty if valid).
func (c *Config) Validate() []error {
	var errs []error

	if c.Workers < 0 {
		errs = append(errs, ErrInvalidWorkers)
	}
	if c.DisplaySize <= 0 {
		errs = append(errs, ErrInvalidDisplaySize)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ErrInvalidLogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, ErrInvalidLogFormat)
	}
	if c.Output != "text" && c.Output != "json" {
		errs = append(errs, ErrInvalidOutput)
	}
	if c.Codec != "json" && c.Codec != "go-json" {
		errs = append(errs, ErrInvalidCodec)
	}
	if c.IOLimitBytesPerSec < 0 {
		errs = append(errs, ErrInvalidIOLimit)
	}

	// MinIO is optional. Only validate credentials if an endpoint is set.
	if c.MinIO.Endpoint != "" && (c.MinIO.AccessKey == "" || c.MinIO.SecretKey == "") {
		errs = append(errs, ErrMissingMinIOKeys)
	}

	return errs
}

// LogSummary returns a summary of the configuration suitable for logging.
// All secrets are masked to prevent accidental exposure.
func (c *Config) LogSummary() map[string]string {
	return map[string]string{
		"workers":                strconv.Itoa(c.Workers),
		"display_size":           strconv.Itoa(c.DisplaySize),
		"log_level":              c.LogLevel,
		"log_format":             c.LogFormat,
		"output":                 c.Output,
		"codec":                  c.Codec,
		"metrics_addr":           c.MetricsAddr,
		"io_limit_bytes_per_sec": strconv.FormatInt(c.IOLimitBytesPerSec, 10),
		"s3_region":              c.S3.Region,
		"s3_endpoint":            c.S3.Endpoint,
		"minio_endpoint":         c.MinIO.Endpoint,
		"minio_access_key":       maskSecret(c.MinIO.AccessKey),
		"minio_secret_key":       maskSecret(c.MinIO.SecretKey),
	}
}

// maskSecret shows only the first 4 characters of a secret.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
