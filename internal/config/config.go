// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	DriverMinio  = "minio"
	DriverS3     = "s3"
	DriverMemory = "memory"
)

// ErrMissing is wrapped by Validate for every unset required variable.
var ErrMissing = errors.New("missing required configuration")

// Config holds all runtime configuration for the service.
type Config struct {
	Port        string   `env:"PORT" envDefault:"3000"`
	AppEnv      string   `env:"APP_ENV" envDefault:"development"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	CorsOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// Object storage (S3-compatible: MinIO locally, any S3 provider in production)
	StorageDriver     string `env:"STORAGE_DRIVER" envDefault:"minio"`
	StorageEndpoint   string `env:"STORAGE_ENDPOINT"` // e.g. "http://localhost:9000"
	StorageAccessKey  string `env:"STORAGE_ACCESS_KEY"`
	StorageSecretKey  string `env:"STORAGE_SECRET_KEY"`
	StorageBucket     string `env:"STORAGE_BUCKET"`
	StorageRegion     string `env:"STORAGE_REGION" envDefault:"us-east-1"`
	StoragePublicBase string `env:"STORAGE_PUBLIC_BASE"` // defaults to <endpoint>/<bucket>
}

// Load reads configuration from the given .env files (or ./.env when none are passed)
// and environment variables, then validates it. A named file that cannot be read is
// an error; a missing ./.env is not.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		// A missing implicit .env is fine; real deployments set the environment directly.
		if len(envFiles) > 0 {
			return nil, fmt.Errorf("load env file: %w", err)
		}
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration eagerly so the process fails at startup
// instead of on the first storage call.
func (c *Config) Validate() error {
	if _, err := strconv.ParseUint(c.Port, 10, 16); err != nil {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}

	switch c.StorageDriver {
	case DriverMemory:
		return nil
	case DriverMinio, DriverS3:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q: want one of %s, %s, %s",
			c.StorageDriver, DriverMinio, DriverS3, DriverMemory)
	}

	var missing []string
	for name, v := range map[string]string{
		"STORAGE_ENDPOINT":   c.StorageEndpoint,
		"STORAGE_ACCESS_KEY": c.StorageAccessKey,
		"STORAGE_SECRET_KEY": c.StorageSecretKey,
		"STORAGE_BUCKET":     c.StorageBucket,
	} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("%w: %s", ErrMissing, strings.Join(missing, ", "))
	}

	u, err := url.Parse(c.StorageEndpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid STORAGE_ENDPOINT %q: want an absolute http(s) URL", c.StorageEndpoint)
	}
	return nil
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// StorageHost returns host[:port] of STORAGE_ENDPOINT, as MinIO expects it.
func (c *Config) StorageHost() string {
	u, err := url.Parse(c.StorageEndpoint)
	if err != nil {
		return c.StorageEndpoint
	}
	return u.Host
}

// StorageUseSSL reports whether STORAGE_ENDPOINT is https.
func (c *Config) StorageUseSSL() bool {
	u, err := url.Parse(c.StorageEndpoint)
	return err == nil && u.Scheme == "https"
}

// PublicBase is the URL prefix that stored keys are appended to.
func (c *Config) PublicBase() string {
	if c.StoragePublicBase != "" {
		return strings.TrimRight(c.StoragePublicBase, "/")
	}
	if c.StorageDriver == DriverMemory {
		return "http://localhost:" + c.Port + "/" + c.bucketOrDefault()
	}
	return strings.TrimRight(c.StorageEndpoint, "/") + "/" + c.bucketOrDefault()
}

// PublicPath is the URL path of PublicBase without a trailing slash, e.g. "/photos".
func (c *Config) PublicPath() string {
	u, err := url.Parse(c.PublicBase())
	if err != nil {
		return ""
	}
	return strings.TrimRight(u.Path, "/")
}

func (c *Config) bucketOrDefault() string {
	if c.StorageBucket == "" {
		return "photos"
	}
	return c.StorageBucket
}
