package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UI.RefreshIntervalSeconds != 30 {
		t.Errorf("default refresh = %d, want 30", cfg.UI.RefreshIntervalSeconds)
	}
	if cfg.Charts.BarPadding != 0.35 {
		t.Errorf("default bar padding = %f, want 0.35", cfg.Charts.BarPadding)
	}
	if cfg.Theme != "Gruvbox" {
		t.Errorf("default theme = %s, want Gruvbox", cfg.Theme)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom("/tmp/nonexistent_dashplot_test.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.RefreshIntervalSeconds != 30 {
		t.Error("should return defaults for missing file")
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	content := `{
  "ui": {"refresh_interval_seconds": 10, "show_legend": false},
  "charts": {"bar_padding": 0.2, "y_ticks": 6, "unit": "ms"},
  "theme": "Nord"
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.UI.RefreshIntervalSeconds != 10 {
		t.Errorf("refresh = %d, want 10", cfg.UI.RefreshIntervalSeconds)
	}
	if cfg.Charts.BarPadding != 0.2 {
		t.Errorf("bar padding = %f, want 0.2", cfg.Charts.BarPadding)
	}
	if cfg.Charts.Unit != "ms" {
		t.Errorf("unit = %s, want ms", cfg.Charts.Unit)
	}
	if cfg.Theme != "Nord" {
		t.Errorf("theme = %s, want Nord", cfg.Theme)
	}
}

func TestLoadFrom_ClampsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	content := `{"ui": {"refresh_interval_seconds": -5}, "charts": {"bar_padding": 1.5, "bar_opacity": 0}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.UI.RefreshIntervalSeconds != 30 {
		t.Errorf("refresh = %d, want clamped 30", cfg.UI.RefreshIntervalSeconds)
	}
	if cfg.Charts.BarPadding != 0.35 {
		t.Errorf("bar padding = %f, want clamped 0.35", cfg.Charts.BarPadding)
	}
	if cfg.Charts.BarOpacity != 1 {
		t.Errorf("bar opacity = %f, want clamped 1", cfg.Charts.BarOpacity)
	}
}

func TestSaveThemeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	base := DefaultConfig()
	base.Charts.Unit = "req/s"
	if err := SaveTo(path, base); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	if err := SaveThemeTo(path, "Tokyo Night"); err != nil {
		t.Fatalf("SaveThemeTo() error: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Theme != "Tokyo Night" {
		t.Errorf("theme = %s, want Tokyo Night", cfg.Theme)
	}
	if cfg.Charts.Unit != "req/s" {
		t.Error("SaveTheme should preserve unrelated settings")
	}
}
