package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/janekbaraniewski/dashplot/internal/axis"
	"github.com/janekbaraniewski/dashplot/internal/hover"
	"github.com/janekbaraniewski/dashplot/internal/observe"
	"github.com/janekbaraniewski/dashplot/internal/scale"
	"github.com/janekbaraniewski/dashplot/internal/series"
	"github.com/janekbaraniewski/dashplot/internal/theme"
	"github.com/janekbaraniewski/dashplot/internal/tooltip"
)

// LineChart renders one or more aligned series as braille polylines sharing a
// categorical x axis. Hover snaps to the nearest index across all series.
type LineChart struct {
	all []series.Series
	cfg Config
	th  theme.Theme

	alignErr error
	hov      *hover.Line
	size     observe.Size
	cancel   func()
}

// NewLineChart validates series alignment up front; a mismatch is kept and
// surfaced as a placeholder instead of panicking mid-render.
func NewLineChart(all []series.Series, cfg Config, base theme.Theme, tracker *observe.Tracker, onHover func(*hover.LinePayload)) *LineChart {
	c := &LineChart{
		all:      all,
		cfg:      cfg.normalize(),
		th:       theme.Merge(base, cfg.Theme),
		alignErr: series.Align(all),
		hov:      hover.NewLine(onHover),
	}
	if tracker != nil {
		c.cancel = tracker.Observe(func(s observe.Size) { c.size = s })
	}
	return c
}

// SetData swaps the series set and revalidates alignment.
func (c *LineChart) SetData(all []series.Series) {
	c.all = all
	c.alignErr = series.Align(all)
}

// SetBaseTheme re-resolves the final theme against a new base.
func (c *LineChart) SetBaseTheme(base theme.Theme) { c.th = theme.Merge(base, c.cfg.Theme) }

// Close releases the size observation.
func (c *LineChart) Close() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Hovered reports the snapped index, false when the pointer is outside.
func (c *LineChart) Hovered() (int, bool) { return c.hov.Hovered() }

func (c *LineChart) labels() []string {
	if len(c.all) == 0 {
		return nil
	}
	return c.all[0].Labels()
}

type lineGeometry struct {
	innerW, innerH int
	legendH        int
	lin            scale.Linear
	pt             scale.Point
}

func (c *LineChart) geometry() (lineGeometry, bool) {
	g := lineGeometry{}
	if c.cfg.ShowLegend && len(c.all) > 0 {
		g.legendH = len(c.all)
	}
	g.innerW = c.size.Width - yGutter
	g.innerH = c.size.Height - 1 - g.legendH
	if g.innerW <= 0 || g.innerH <= 0 {
		return g, false
	}

	var values []float64
	for _, s := range c.all {
		values = append(values, s.Values()...)
	}
	min, max := c.cfg.yDomain(values)
	g.lin = scale.NewLinear(min, max, float64(g.innerH))
	g.pt = scale.NewPoint(c.labels(), float64(g.innerW))
	return g, true
}

// MouseMove snaps a tile-local cell to the nearest sample index. Columns left
// of the gutter and rows past the plot count as leaving.
func (c *LineChart) MouseMove(x, y int) {
	g, ok := c.geometry()
	if !ok || c.alignErr != nil {
		c.hov.Leave()
		return
	}
	px := x - yGutter
	if px < 0 || px >= g.innerW || y < 0 || y >= g.innerH {
		c.hov.Leave()
		return
	}
	c.hov.Move(float64(px), float64(g.innerW-1), c.all)
}

// MouseLeave clears hover state; the none callback fires once.
func (c *LineChart) MouseLeave() { c.hov.Leave() }

// Render draws the chart at the tracked size. Alignment errors render an
// inline notice so the host tile stays stable.
func (c *LineChart) Render() string {
	g, ok := c.geometry()
	if !ok {
		return ""
	}
	if c.alignErr != nil {
		return lipgloss.NewStyle().Foreground(c.th.Muted).Render(c.alignErr.Error())
	}
	labels := c.labels()
	if len(labels) == 0 {
		return strings.Repeat("\n", c.size.Height-1)
	}

	canvas := newPlotCanvas(g.innerW, g.innerH)

	min, max := g.lin.Domain()
	tickVals := axis.YTicks(min, max, c.cfg.YTicks)
	tickByRow := make(map[int]string, len(tickVals))
	for _, v := range tickVals {
		row := clamp(int(math.Round(g.lin.Pos(v))), 0, g.innerH-1)
		if _, taken := tickByRow[row]; !taken {
			tickByRow[row] = axis.FormatValue(v, c.cfg.Unit)
			canvas.setGridRow(row)
		}
	}

	// Sub-cell resolution: x spans pw-1 so the last sample lands on the
	// rightmost pixel, y likewise for ph-1.
	pxStep := float64(canvas.pw-1) / math.Max(float64(len(labels)-1), 1)
	pyScale := scale.NewLinear(min, max, float64(canvas.ph-1))

	colorByKey := make(map[string]lipgloss.Color, len(c.all))
	for si, s := range c.all {
		color := s.Color
		if color == "" {
			color = c.cfg.Color
		}
		colorByKey[s.Key] = color
		prevX, prevY := -1, -1
		for i, v := range s.Values() {
			px := int(math.Round(float64(i) * pxStep))
			py := clamp(int(math.Round(pyScale.Pos(v))), 0, canvas.ph-1)
			if prevX >= 0 {
				canvas.line(prevX, prevY, px, py, si)
			} else {
				canvas.set(px, py, si)
			}
			prevX, prevY = px, py
		}
	}

	hoverIdx, hovering := c.hov.Hovered()
	if hovering {
		col := clamp(int(math.Round(g.pt.Step()*float64(hoverIdx))), 0, g.innerW-1)
		canvas.setCrosshair(col)
		for _, s := range c.all {
			row := clamp(int(math.Round(g.lin.Pos(s.ValueAt(hoverIdx)))), 0, g.innerH-1)
			canvas.setMarker(col, row, colorByKey[s.Key])
		}
	}

	colors := make([]lipgloss.Color, len(c.all))
	for i, s := range c.all {
		colors[i] = colorByKey[s.Key]
	}
	plotRows := canvas.render(colors, c.th)

	rows := make([]string, 0, c.size.Height)
	for r := 0; r < g.innerH; r++ {
		gutter := emptyGutter()
		if label, ok := tickByRow[r]; ok {
			gutter = gutterLabel(label, c.th)
		}
		rows = append(rows, gutter+plotRows[r])
	}

	centers := make([]int, len(labels))
	for i := range labels {
		centers[i] = clamp(int(math.Round(g.pt.Step()*float64(i))), 0, g.innerW-1)
	}
	interval := axis.Interval(len(labels), c.cfg.XTickInterval, axis.TargetLineLabels)
	ticks := axis.Decimate(labels, interval)
	rows = append(rows, emptyGutter()+xLabelLine(ticks, centers, g.innerW, c.th))

	if g.legendH > 0 {
		rows = append(rows, c.renderLegend(g.innerW, colorByKey)...)
	}

	if c.cfg.ShowTooltip && hovering {
		rows = c.spliceTooltip(rows, g, hoverIdx)
	}

	return strings.Join(rows, "\n")
}

// renderLegend draws one row per series: a colored swatch, the key, and a
// small sparkline of the series shape.
func (c *LineChart) renderLegend(innerW int, colorByKey map[string]lipgloss.Color) []string {
	keyW := 0
	for _, s := range c.all {
		if len(s.Key) > keyW {
			keyW = len(s.Key)
		}
	}
	sparkW := clamp(innerW-keyW-4, 0, 16)

	rows := make([]string, 0, len(c.all))
	for _, s := range c.all {
		style := lipgloss.NewStyle().Foreground(colorByKey[s.Key])
		line := style.Render("● ") + lipgloss.NewStyle().Foreground(c.th.Text).Render(padTo(s.Key, keyW))
		if sparkW > 2 {
			sl := sparkline.New(sparkW, 1)
			sl.PushAll(s.Values())
			sl.Draw()
			line += "  " + style.Render(sl.View())
		}
		rows = append(rows, emptyGutter()+line)
	}
	return rows
}

func (c *LineChart) spliceTooltip(rows []string, g lineGeometry, idx int) []string {
	labels := c.labels()
	if idx < 0 || idx >= len(labels) {
		return rows
	}

	values := hover.LineValues(c.all, idx)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s %s", k, axis.FormatValue(values[k], c.cfg.Unit)))
	}

	box := tooltip.Box(c.th, labels[idx], lines)
	anchorX := yGutter + clamp(int(math.Round(g.pt.Step()*float64(idx))), 0, g.innerW-1)

	p := tooltip.Place(anchorX, tooltip.LineTooltipRow, c.size.Width)
	return tooltip.Splice(rows, box, p, c.size.Width)
}

func padTo(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
