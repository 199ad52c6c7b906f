package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gameatlas/backend/internal/match"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port 8080 but got %q", cfg.Port)
	}
	if cfg.CatalogRefreshInterval != 5*time.Minute {
		t.Errorf("Expected 5m refresh interval but got %s", cfg.CatalogRefreshInterval)
	}
	if got := cfg.Scorer(); !reflect.DeepEqual(got, match.DefaultScorer()) {
		t.Errorf("Expected default scorer but got %+v", got)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MATCH_GENRE_WEIGHT", "5")
	t.Setenv("MATCH_LIMIT", "20")
	t.Setenv("CATALOG_REFRESH_INTERVAL", "30s")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.MatchGenreWeight != 5 || cfg.MatchLimit != 20 {
		t.Errorf("Expected env overrides, got weight=%d limit=%d", cfg.MatchGenreWeight, cfg.MatchLimit)
	}
	if cfg.CatalogRefreshInterval != 30*time.Second {
		t.Errorf("Expected 30s but got %s", cfg.CatalogRefreshInterval)
	}
	if cfg.JWTSecret != "env-secret" {
		t.Errorf("Expected JWT secret from env but got %q", cfg.JWTSecret)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "DATABASE_URL=postgres://atlas@localhost/atlas\nJWT_SECRET=file-secret\nMATCH_TAG_WEIGHT=4\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DatabaseURL != "postgres://atlas@localhost/atlas" {
		t.Errorf("Unexpected database url %q", cfg.DatabaseURL)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Errorf("Expected JWT secret from .env but got %q", cfg.JWTSecret)
	}
	if cfg.MatchTagWeight != 4 {
		t.Errorf("Expected tag weight 4 but got %d", cfg.MatchTagWeight)
	}
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Expected an error for an empty JWT_SECRET")
	}

	t.Setenv("JWT_SECRET", "   ")
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Expected an error for a blank JWT_SECRET")
	}
}

func TestLoadRejectsNegativeWeights(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MATCH_PLATFORM_WEIGHT", "-1")
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Expected an error for a negative weight")
	}
}

func TestOrigins(t *testing.T) {
	cfg := &Config{AllowedOrigins: "https://gameatlas.app, http://localhost:3000 ,"}
	want := []string{"https://gameatlas.app", "http://localhost:3000"}
	if got := cfg.Origins(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v but got %v", want, got)
	}
}
