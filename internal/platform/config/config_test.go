package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"ptrack/internal/platform/config"
)

func TestNewDefaultsWithoutSettingsFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DocumentPath != filepath.Join(dir, "tracker.json") {
		t.Fatalf("unexpected document path: %s", cfg.DocumentPath)
	}
	if cfg.DBPath != filepath.Join(dir, "index.db") {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
	if cfg.Settings.DisplayName != "" {
		t.Fatalf("expected empty display name, got %q", cfg.Settings.DisplayName)
	}
}

func TestNewReadsSettings(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	payload := "display_name: Nonhle\ncolors:\n  - \"#112233\"\n  - \"#445566\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Settings.DisplayName != "Nonhle" {
		t.Fatalf("display name not loaded: %q", cfg.Settings.DisplayName)
	}
	if len(cfg.Settings.Colors) != 2 || cfg.Settings.Colors[0] != "#112233" {
		t.Fatalf("colors not loaded: %v", cfg.Settings.Colors)
	}
}

func TestNewRejectsMalformedSettings(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("display_name: ["), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if _, err := config.New(dir); err == nil {
		t.Fatalf("expected error for malformed settings")
	}
}
