package config

import (
	"os"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	os.Setenv(key, value)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, "DATABASE_URL", "postgres://localhost:5432/chartsense")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Error("expected development mode by default")
	}
	if cfg.BaseRatePerRW != 12000.0 {
		t.Errorf("expected default base rate 12000, got %v", cfg.BaseRatePerRW)
	}
	if !cfg.DemoMode {
		t.Error("expected demo mode enabled by default")
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	setEnv(t, "DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoad_InvalidBaseRate(t *testing.T) {
	setEnv(t, "DATABASE_URL", "postgres://localhost:5432/chartsense")
	setEnv(t, "BASE_RATE_PER_RW", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-positive base rate")
	}
}

func TestLoad_OverridesFromEnv(t *testing.T) {
	setEnv(t, "DATABASE_URL", "postgres://localhost:5432/chartsense")
	setEnv(t, "PORT", "9090")
	setEnv(t, "ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
}
