package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/marklist/internal/api"
	"github.com/mmynk/marklist/internal/config"
	"github.com/mmynk/marklist/internal/service"
	"github.com/mmynk/marklist/internal/storage"
	"github.com/mmynk/marklist/internal/storage/mongodb"
	"github.com/mmynk/marklist/internal/storage/sqlite"
	"github.com/mmynk/marklist/pkg/logging"
)

const (
	shutdownTimeout = 10 * time.Second
	pingTimeout     = 10 * time.Second
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var overrides config.Config

	cmd := &cobra.Command{
		Use:           "marklist-server",
		Short:         "REST backend for the Marklist to-do app",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup()

			cfg := config.Load()
			applyOverrides(&cfg, overrides)
			if err := cfg.Validate(); err != nil {
				slog.Error("Invalid configuration", "error", err)
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := run(ctx, cfg); err != nil {
				slog.Error("Server failed", "error", err)
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&overrides.Port, "port", "", "listen port (overrides PORT)")
	flags.StringVar(&overrides.DatabaseURI, "db-uri", "", "database URI (overrides MONGO_URI)")
	flags.StringVar(&overrides.DatabaseName, "db-name", "", "database name (overrides MONGO_DB)")
	flags.StringVar(&overrides.CORSOrigin, "cors-origin", "", "allowed CORS origin (overrides CORS_ORIGIN)")
	flags.StringVar(&overrides.StaticPath, "static-path", "", "frontend build directory (overrides STATIC_PATH)")

	return cmd
}

func applyOverrides(cfg *config.Config, o config.Config) {
	if o.Port != "" {
		cfg.Port = o.Port
	}
	if o.DatabaseURI != "" {
		cfg.DatabaseURI = o.DatabaseURI
	}
	if o.DatabaseName != "" {
		cfg.DatabaseName = o.DatabaseName
	}
	if o.CORSOrigin != "" {
		cfg.CORSOrigin = o.CORSOrigin
	}
	if o.StaticPath != "" {
		cfg.StaticPath = o.StaticPath
	}
}

func run(ctx context.Context, cfg config.Config) error {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	// Readiness is reported, not awaited: routes serve while the check runs.
	go checkStore(ctx, store, storeLabel(cfg))

	staticDir, err := filepath.Abs(cfg.StaticPath)
	if err != nil {
		return fmt.Errorf("failed to resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.RouterConfig{
		CORSOrigin: cfg.CORSOrigin,
		StaticDir:  staticDir,
	}, service.NewItemService(store))

	// Wrap with h2c so HTTP/2 clients work without TLS
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server is running", "address", srv.Addr, "cors_origin", cfg.CORSOrigin)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	backend, err := cfg.Backend()
	if err != nil {
		return nil, err
	}

	switch backend {
	case config.BackendSQLite:
		store, err := sqlite.New(cfg.SQLitePath())
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "backend", backend, "database", cfg.SQLitePath())
		return store, nil
	default:
		store, err := mongodb.New(ctx, cfg.DatabaseURI, cfg.DatabaseName)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "backend", backend)
		return store, nil
	}
}

// storeLabel names the storage engine in startup logs.
func storeLabel(cfg config.Config) string {
	backend, _ := cfg.Backend()
	if backend == config.BackendSQLite {
		return "SQLite"
	}
	return "MongoDB"
}

func checkStore(ctx context.Context, store storage.Store, label string) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		slog.Error(label+" connection error", "error", err)
		return
	}
	slog.Info("Connected to " + label)
}
