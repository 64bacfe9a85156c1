package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const minimalYAML = `
environment: test
database:
  host: localhost
  name: astropredict
  user: app
auth:
  url: https://project.supabase.co
ml:
  base_url: http://localhost:8000
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.Port != 5432 || cfg.Database.SSLMode != "require" {
		t.Fatalf("unexpected database defaults %+v", cfg.Database)
	}
	if cfg.ML.Timeout != 12*time.Second {
		t.Fatalf("expected default ml timeout 12s, got %v", cfg.ML.Timeout)
	}
	if cfg.Geocode.CacheTTL != 24*time.Hour {
		t.Fatalf("expected default geocode ttl 24h, got %v", cfg.Geocode.CacheTTL)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Fatalf("expected default metrics path, got %q", cfg.Metrics.Path)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	_, err := Load(writeConfig(t, "environment: test\n"))
	if err == nil {
		t.Fatalf("expected validation error for missing required fields")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("ML_SERVICE_URL", "http://ml.internal:9000")

	cfg, err := LoadWithEnv(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Password != "s3cret" {
		t.Fatalf("DB_PASSWORD should override, got %q", cfg.Database.Password)
	}
	if cfg.ML.BaseURL != "http://ml.internal:9000" {
		t.Fatalf("ML_SERVICE_URL should override, got %q", cfg.ML.BaseURL)
	}
}
