// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultCORSOrigin = "http://localhost:3000"
	DefaultStaticPath = "frontend/build"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Port is the TCP port to listen on. Required.
	Port string

	// DatabaseURI selects and addresses the store. mongodb:// and
	// mongodb+srv:// URIs use MongoDB, sqlite://<path> uses a local file.
	DatabaseURI string

	// DatabaseName overrides the database carried by a MongoDB URI.
	DatabaseName string

	// CORSOrigin is the single origin allowed to call the API from a browser.
	CORSOrigin string

	// StaticPath is the directory holding the pre-built frontend.
	StaticPath string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present; real environment variables win.
// Load does not validate; call Validate once all overrides are applied.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to read .env file", "error", err)
	}

	return Config{
		Port:         os.Getenv("PORT"),
		DatabaseURI:  os.Getenv("MONGO_URI"),
		DatabaseName: os.Getenv("MONGO_DB"),
		CORSOrigin:   getEnv("CORS_ORIGIN", DefaultCORSOrigin),
		StaticPath:   getEnv("STATIC_PATH", DefaultStaticPath),
	}
}

// Validate reports every missing or malformed required setting.
func (c Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	} else if n, err := strconv.Atoi(c.Port); err != nil || n < 0 || n > 65535 {
		errs = append(errs, fmt.Errorf("PORT %q is not a valid port", c.Port))
	}

	if c.DatabaseURI == "" {
		errs = append(errs, errors.New("MONGO_URI is required"))
	} else if _, err := c.Backend(); err != nil {
		errs = append(errs, err)
	}

	if !strings.HasPrefix(c.CORSOrigin, "http://") && !strings.HasPrefix(c.CORSOrigin, "https://") {
		errs = append(errs, fmt.Errorf("CORS_ORIGIN %q must be an http:// or https:// origin", c.CORSOrigin))
	}

	return errors.Join(errs...)
}

// Backend identifies the storage engine the database URI selects.
type Backend string

const (
	BackendMongoDB Backend = "mongodb"
	BackendSQLite  Backend = "sqlite"
)

// Backend returns the storage engine named by the database URI scheme.
func (c Config) Backend() (Backend, error) {
	switch {
	case strings.HasPrefix(c.DatabaseURI, "mongodb://"), strings.HasPrefix(c.DatabaseURI, "mongodb+srv://"):
		return BackendMongoDB, nil
	case strings.HasPrefix(c.DatabaseURI, "sqlite://"):
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database uri scheme: %q", c.DatabaseURI)
	}
}

// SQLitePath returns the file path of a sqlite:// URI.
func (c Config) SQLitePath() string {
	return strings.TrimPrefix(c.DatabaseURI, "sqlite://")
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
