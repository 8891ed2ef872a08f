// Package chart wires scales, axes, hover resolution and tooltip placement
// into interactive bar and line charts rendered as rune-cell rows.
package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/janekbaraniewski/dashplot/internal/axis"
	"github.com/janekbaraniewski/dashplot/internal/scale"
	"github.com/janekbaraniewski/dashplot/internal/theme"
)

// Config carries every recognized chart option. Zero values mean "use the
// default" and are resolved when a chart is constructed.
type Config struct {
	// Color is the fill for bar charts (line charts color per series).
	Color lipgloss.Color

	BarPadding float64 // fraction of each band left as gap, default 0.35
	BarRadius  int     // ≥1 renders a rounded top cap on each bar
	BarOpacity float64 // base opacity for unhovered bars, default 1

	YDomain       *[2]float64 // explicit y-domain override, still niced
	YTicks        int         // gridline count, default 4
	XTickInterval int         // explicit label stride, 0 = automatic
	Unit          string      // appended verbatim to y tick labels

	ShowLegend  bool
	ShowTooltip bool

	Theme theme.Override
}

const (
	defaultBarPadding = 0.35
	defaultColor      = lipgloss.Color("#7AA2F7")

	// yGutter is the left gutter holding y tick labels.
	yGutter = 6
)

func (c Config) normalize() Config {
	if c.BarPadding <= 0 || c.BarPadding > 1 {
		c.BarPadding = defaultBarPadding
	}
	if c.BarOpacity <= 0 || c.BarOpacity > 1 {
		c.BarOpacity = 1
	}
	if c.YTicks < 1 {
		c.YTicks = axis.DefaultYTicks
	}
	if c.Color == "" {
		c.Color = defaultColor
	}
	return c
}

// yDomain resolves the linear domain per the config: explicit override when
// set, otherwise [0, max] with a degenerate payload treated as [0, 1].
func (c Config) yDomain(values []float64) (min, max float64) {
	if c.YDomain != nil {
		return c.YDomain[0], c.YDomain[1]
	}
	return scale.DefaultDomain(values)
}

// gutterLabel right-aligns a y tick label into the gutter. Width and
// truncation are display-cell based so multibyte units ("µs") stay intact.
func gutterLabel(text string, th theme.Theme) string {
	if ansi.StringWidth(text) > yGutter-1 {
		text = ansi.Truncate(text, yGutter-1, "")
	}
	pad := yGutter - 1 - ansi.StringWidth(text)
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + lipgloss.NewStyle().Foreground(th.Muted).Render(text) + " "
}

func emptyGutter() string {
	return strings.Repeat(" ", yGutter)
}

// xLabelLine lays decimated labels into a plot-wide line, each centered on
// its tick position. Measurement is in display cells, so non-ASCII labels
// line up and never get cut mid-rune; a label that would overlap the one
// before it is skipped.
func xLabelLine(ticks []axis.Tick, centers []int, width int, th theme.Theme) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	col := 0
	for _, tk := range ticks {
		if tk.Index < 0 || tk.Index >= len(centers) {
			continue
		}
		label := tk.Label
		w := ansi.StringWidth(label)
		if w > width {
			label = ansi.Truncate(label, width, "")
			w = ansi.StringWidth(label)
		}
		start := clamp(centers[tk.Index]-w/2, 0, width-w)
		if start < col {
			continue
		}
		sb.WriteString(strings.Repeat(" ", start-col))
		sb.WriteString(label)
		col = start + w
	}
	if col < width {
		sb.WriteString(strings.Repeat(" ", width-col))
	}
	return lipgloss.NewStyle().Foreground(th.Muted).Render(sb.String())
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
