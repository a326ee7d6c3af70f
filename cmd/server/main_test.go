package main

import (
	"testing"

	"github.com/mmynk/marklist/internal/config"
)

func TestApplyOverrides(t *testing.T) {
	cfg := config.Config{
		Port:        "5000",
		DatabaseURI: "mongodb://localhost:27017",
		CORSOrigin:  config.DefaultCORSOrigin,
		StaticPath:  config.DefaultStaticPath,
	}

	applyOverrides(&cfg, config.Config{Port: "6000", StaticPath: "dist"})

	if cfg.Port != "6000" {
		t.Errorf("Port = %q, want 6000", cfg.Port)
	}
	if cfg.StaticPath != "dist" {
		t.Errorf("StaticPath = %q, want dist", cfg.StaticPath)
	}
	if cfg.DatabaseURI != "mongodb://localhost:27017" {
		t.Errorf("DatabaseURI changed to %q", cfg.DatabaseURI)
	}
	if cfg.CORSOrigin != config.DefaultCORSOrigin {
		t.Errorf("CORSOrigin changed to %q", cfg.CORSOrigin)
	}
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"port", "db-uri", "db-name", "cors-origin", "static-path"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}
}

func TestStoreLabel(t *testing.T) {
	tests := map[string]string{
		"mongodb://localhost:27017/todolist": "MongoDB",
		"mongodb+srv://cluster.example.net":  "MongoDB",
		"sqlite://./data/items.db":           "SQLite",
	}

	for uri, want := range tests {
		if got := storeLabel(config.Config{DatabaseURI: uri}); got != want {
			t.Errorf("storeLabel(%q) = %q, want %q", uri, got, want)
		}
	}
}
