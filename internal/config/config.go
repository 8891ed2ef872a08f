package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

type UIConfig struct {
	RefreshIntervalSeconds int  `json:"refresh_interval_seconds"`
	ShowLegend             bool `json:"show_legend"`
	ShowTooltips           bool `json:"show_tooltips"`
}

type ChartConfig struct {
	BarPadding float64 `json:"bar_padding"`
	BarOpacity float64 `json:"bar_opacity"`
	YTicks     int     `json:"y_ticks"`
	Unit       string  `json:"unit"`
}

type Config struct {
	UI           UIConfig    `json:"ui"`
	Charts       ChartConfig `json:"charts"`
	Theme        string      `json:"theme"`
	DatabasePath string      `json:"database_path"`
}

func DefaultConfig() Config {
	return Config{
		Theme: "Gruvbox",
		UI: UIConfig{
			RefreshIntervalSeconds: 30,
			ShowLegend:             true,
			ShowTooltips:           true,
		},
		Charts: ChartConfig{
			BarPadding: 0.35,
			BarOpacity: 1,
			YTicks:     4,
		},
	}
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "dashplot")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dashplot")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

// DatabasePath resolves the sqlite path, falling back next to the config.
func (c Config) ResolvedDatabasePath() string {
	if c.DatabasePath != "" {
		return c.DatabasePath
	}
	return filepath.Join(ConfigDir(), "dashplot.db")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.UI.RefreshIntervalSeconds <= 0 {
		cfg.UI.RefreshIntervalSeconds = 30
	}
	if cfg.Charts.BarPadding <= 0 || cfg.Charts.BarPadding >= 1 {
		cfg.Charts.BarPadding = 0.35
	}
	if cfg.Charts.BarOpacity <= 0 || cfg.Charts.BarOpacity > 1 {
		cfg.Charts.BarOpacity = 1
	}
	if cfg.Charts.YTicks <= 0 {
		cfg.Charts.YTicks = 4
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultConfig().Theme
	}

	return cfg, nil
}

// saveMu guards read-modify-write cycles on the config file.
var saveMu sync.Mutex

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// SaveTheme persists a theme name into the config file (read-modify-write).
func SaveTheme(theme string) error {
	return SaveThemeTo(ConfigPath(), theme)
}

func SaveThemeTo(path string, theme string) error {
	saveMu.Lock()
	defer saveMu.Unlock()

	cfg, err := LoadFrom(path)
	if err != nil {
		cfg = DefaultConfig()
	}
	cfg.Theme = theme
	return SaveTo(path, cfg)
}
