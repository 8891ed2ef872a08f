// Package theme holds the visual token set every chart element consumes.
//
// External themes can be defined as JSON files with matching snake_case
// fields, for example: {"name":"My Theme","text":"#EBDBB2",...}.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// DASHPLOT_THEME_DIR can point to one or more additional theme directories
// (path-list separated, e.g. ":" on unix, ";" on Windows).
const themeDirEnvVar = "DASHPLOT_THEME_DIR"

// Theme is the six-token set charts render with. Values are color strings;
// only presence is checked, not format. An unparseable color just renders
// wrong, it never errors.
type Theme struct {
	Name string `json:"name"`

	Text          lipgloss.Color `json:"text"`
	Muted         lipgloss.Color `json:"muted"`
	Grid          lipgloss.Color `json:"grid"`
	TooltipBg     lipgloss.Color `json:"tooltip_bg"`
	TooltipBorder lipgloss.Color `json:"tooltip_border"`
	Panel         lipgloss.Color `json:"panel"`
}

// Override is a partial theme; empty fields keep the base value.
type Override struct {
	Text          lipgloss.Color `json:"text,omitempty"`
	Muted         lipgloss.Color `json:"muted,omitempty"`
	Grid          lipgloss.Color `json:"grid,omitempty"`
	TooltipBg     lipgloss.Color `json:"tooltip_bg,omitempty"`
	TooltipBorder lipgloss.Color `json:"tooltip_border,omitempty"`
	Panel         lipgloss.Color `json:"panel,omitempty"`
}

// Merge shallow-merges an override onto a base theme: every token present in
// the override replaces the base token, everything else stays.
func Merge(base Theme, over Override) Theme {
	if over.Text != "" {
		base.Text = over.Text
	}
	if over.Muted != "" {
		base.Muted = over.Muted
	}
	if over.Grid != "" {
		base.Grid = over.Grid
	}
	if over.TooltipBg != "" {
		base.TooltipBg = over.TooltipBg
	}
	if over.TooltipBorder != "" {
		base.TooltipBorder = over.TooltipBorder
	}
	if over.Panel != "" {
		base.Panel = over.Panel
	}
	return base
}

func builtinThemes() []Theme {
	return []Theme{
		{
			Name: "Gruvbox",
			Text: "#EBDBB2", Muted: "#928374", Grid: "#3C3836",
			TooltipBg: "#1D2021", TooltipBorder: "#504945", Panel: "#282828",
		},
		{
			Name: "Catppuccin Mocha",
			Text: "#CDD6F4", Muted: "#A6ADC8", Grid: "#313244",
			TooltipBg: "#181825", TooltipBorder: "#45475A", Panel: "#1E1E2E",
		},
		{
			Name: "Nord",
			Text: "#ECEFF4", Muted: "#D8DEE9", Grid: "#3B4252",
			TooltipBg: "#242933", TooltipBorder: "#434C5E", Panel: "#2E3440",
		},
		{
			Name: "Tokyo Night",
			Text: "#C0CAF5", Muted: "#A9B1D6", Grid: "#24283B",
			TooltipBg: "#16161E", TooltipBorder: "#414868", Panel: "#1A1B26",
		},
		{
			Name: "Grayscale",
			Text: "#F5F5F5", Muted: "#A8A8A8", Grid: "#2A2A2A",
			TooltipBg: "#0A0A0A", TooltipBorder: "#3E3E3E", Panel: "#181818",
		},
	}
}

// Default is the theme charts fall back to when nothing is configured.
func Default() Theme {
	return builtinThemes()[0]
}

func trimColor(c lipgloss.Color) lipgloss.Color {
	return lipgloss.Color(strings.TrimSpace(string(c)))
}

func normalize(in Theme) Theme {
	in.Name = strings.TrimSpace(in.Name)
	in.Text = trimColor(in.Text)
	in.Muted = trimColor(in.Muted)
	in.Grid = trimColor(in.Grid)
	in.TooltipBg = trimColor(in.TooltipBg)
	in.TooltipBorder = trimColor(in.TooltipBorder)
	in.Panel = trimColor(in.Panel)
	return in
}

func (t Theme) validate() error {
	if t.Name == "" {
		return fmt.Errorf("missing required field: name")
	}
	fields := []struct {
		name  string
		value lipgloss.Color
	}{
		{"text", t.Text}, {"muted", t.Muted}, {"grid", t.Grid},
		{"tooltip_bg", t.TooltipBg}, {"tooltip_border", t.TooltipBorder}, {"panel", t.Panel},
	}
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(string(f.value)) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required color fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func searchDirs(configDir string) []string {
	var paths []string
	if strings.TrimSpace(configDir) != "" {
		paths = append(paths, filepath.Join(configDir, "themes"))
	}
	if env := strings.TrimSpace(os.Getenv(themeDirEnvVar)); env != "" {
		paths = append(paths, strings.Split(env, string(os.PathListSeparator))...)
	}

	cleaned := lo.FilterMap(paths, func(p string, _ int) (string, bool) {
		p = strings.TrimSpace(p)
		if p == "" {
			return "", false
		}
		return filepath.Clean(p), true
	})
	return lo.Uniq(cleaned)
}

func loadDir(dir string) ([]Theme, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read theme dir %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})
	files := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".json")
	})

	var loaded []Theme
	var errs []error
	for _, entry := range files {
		path := filepath.Join(dir, entry.Name())
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			errs = append(errs, fmt.Errorf("read %s: %w", path, readErr))
			continue
		}

		var t Theme
		if unmarshalErr := json.Unmarshal(data, &t); unmarshalErr != nil {
			errs = append(errs, fmt.Errorf("parse %s: %w", path, unmarshalErr))
			continue
		}

		t = normalize(t)
		if validateErr := t.validate(); validateErr != nil {
			errs = append(errs, fmt.Errorf("validate %s: %w", path, validateErr))
			continue
		}
		loaded = append(loaded, t)
	}

	return loaded, errors.Join(errs...)
}

func mergeCatalogs(base, extra []Theme) []Theme {
	if len(extra) == 0 {
		return base
	}
	merged := append([]Theme(nil), base...)
	indexByName := make(map[string]int, len(merged))
	for i, t := range merged {
		indexByName[strings.ToLower(t.Name)] = i
	}
	for _, t := range extra {
		k := strings.ToLower(t.Name)
		if i, ok := indexByName[k]; ok {
			merged[i] = t
			continue
		}
		indexByName[k] = len(merged)
		merged = append(merged, t)
	}
	return merged
}

// Catalog returns every available theme: built-ins plus JSON files from
// <configDir>/themes and each DASHPLOT_THEME_DIR path. Invalid files are
// skipped; the aggregated error reports them while valid themes stay usable.
func Catalog(configDir string) ([]Theme, error) {
	all := builtinThemes()
	var errs []error
	for _, dir := range searchDirs(configDir) {
		loaded, err := loadDir(dir)
		if err != nil {
			errs = append(errs, err)
		}
		all = mergeCatalogs(all, loaded)
	}
	return all, errors.Join(errs...)
}

// ByName finds a theme in the catalog, case-insensitively. Falls back to the
// default theme when the name is unknown.
func ByName(catalog []Theme, name string) Theme {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, t := range catalog {
		if strings.ToLower(t.Name) == needle {
			return t
		}
	}
	return Default()
}
