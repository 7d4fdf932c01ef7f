package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"jarvis/internal/domain"
)

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config was not written: %v", err)
	}
	if cfg.AI.BaseURL != "https://openrouter.ai/api/v1" {
		t.Fatalf("AI.BaseURL = %q", cfg.AI.BaseURL)
	}
	if cfg.AI.MaxTokens != 1000 || cfg.AI.Temperature != 0.7 {
		t.Fatalf("AI defaults not hydrated: %+v", cfg.AI)
	}
	if cfg.Monitors.SystemSeconds != 2 || cfg.Monitors.SecuritySeconds != 60 {
		t.Fatalf("monitor defaults not hydrated: %+v", cfg.Monitors)
	}
	if cfg.DefaultLanguage() != domain.LanguageEnglish {
		t.Fatalf("DefaultLanguage() = %s", cfg.DefaultLanguage())
	}
}

func TestLoadHydratesSparseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	sparse := "ai:\n  model: custom/model\nlanguage:\n  default: hindi\n"
	if err := os.WriteFile(path, []byte(sparse), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AI.Model != "custom/model" {
		t.Fatalf("AI.Model = %q, explicit value was overwritten", cfg.AI.Model)
	}
	if cfg.DefaultLanguage() != domain.LanguageHindi {
		t.Fatalf("DefaultLanguage() = %s, want hindi", cfg.DefaultLanguage())
	}
	if cfg.AI.TimeoutSeconds != 30 {
		t.Fatalf("AI.TimeoutSeconds = %d, zero value was not backfilled", cfg.AI.TimeoutSeconds)
	}
	if cfg.History.MaxRecords != domain.MaxInteractionRecords {
		t.Fatalf("History.MaxRecords = %d", cfg.History.MaxRecords)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ai: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("Load() accepted malformed YAML")
	}
}

func TestJarvisConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	t.Setenv("JARVIS_CONFIG", path)

	loader := NewFileLoader("")
	if got := loader.Path(); got != path {
		t.Fatalf("Path() = %q, want env override %q", got, path)
	}
}
