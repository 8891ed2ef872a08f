package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/janekbaraniewski/dashplot/internal/axis"
	"github.com/janekbaraniewski/dashplot/internal/hover"
	"github.com/janekbaraniewski/dashplot/internal/observe"
	"github.com/janekbaraniewski/dashplot/internal/scale"
	"github.com/janekbaraniewski/dashplot/internal/series"
	"github.com/janekbaraniewski/dashplot/internal/theme"
	"github.com/janekbaraniewski/dashplot/internal/tooltip"
)

// BarChart renders one categorical series as vertical block columns with
// per-bar hover dimming and an overflow-aware tooltip.
type BarChart struct {
	data []series.Datum
	cfg  Config
	th   theme.Theme

	hov    *hover.Bars
	size   observe.Size
	cancel func()
}

// NewBarChart builds a chart observing tracker for its geometry. onHover may
// be nil; when set it fires with the hovered datum and with nil on leave.
func NewBarChart(data []series.Datum, cfg Config, base theme.Theme, tracker *observe.Tracker, onHover func(*hover.BarPayload)) *BarChart {
	c := &BarChart{
		data: data,
		cfg:  cfg.normalize(),
		th:   theme.Merge(base, cfg.Theme),
		hov:  hover.NewBars(onHover),
	}
	if tracker != nil {
		c.cancel = tracker.Observe(func(s observe.Size) { c.size = s })
	}
	return c
}

// SetData swaps the payload; the caller re-renders afterwards.
func (c *BarChart) SetData(data []series.Datum) { c.data = data }

// SetBaseTheme re-resolves the final theme against a new base.
func (c *BarChart) SetBaseTheme(base theme.Theme) { c.th = theme.Merge(base, c.cfg.Theme) }

// Close releases the size observation. Render stays safe afterwards.
func (c *BarChart) Close() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Hovered reports the currently hovered label, false when none.
func (c *BarChart) Hovered() (string, bool) { return c.hov.Hovered() }

type barGeometry struct {
	innerW, innerH int
	lin            scale.Linear
	band           scale.Band
	barTop         []int // first filled row per bar, innerH = empty bar
}

func (c *BarChart) geometry() (barGeometry, bool) {
	innerW := c.size.Width - yGutter
	innerH := c.size.Height - 1 // x label row
	if innerW <= 0 || innerH <= 0 {
		return barGeometry{}, false
	}

	labels := make([]string, len(c.data))
	values := make([]float64, len(c.data))
	for i, d := range c.data {
		labels[i] = d.Label
		values[i] = d.Value
	}

	min, max := c.cfg.yDomain(values)
	g := barGeometry{
		innerW: innerW,
		innerH: innerH,
		lin:    scale.NewLinear(min, max, float64(innerH)),
		band:   scale.NewBand(labels, float64(innerW), c.cfg.BarPadding),
	}
	g.barTop = make([]int, len(values))
	for i, v := range values {
		g.barTop[i] = clamp(int(math.Round(g.lin.Pos(v))), 0, innerH)
	}
	return g, true
}

// barSpan is the column range [x0,x1) a bar occupies.
func (g barGeometry) barSpan(i int) (x0, x1 int) {
	x0 = int(math.Round(g.band.PosAt(i)))
	x1 = int(math.Round(g.band.PosAt(i) + g.band.Bandwidth()))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if x1 > g.innerW {
		x1 = g.innerW
	}
	return x0, x1
}

// MouseMove hit-tests a tile-local cell against the drawn bars. Entering a
// bar reports its datum; anywhere else counts as leaving.
func (c *BarChart) MouseMove(x, y int) {
	g, ok := c.geometry()
	if !ok {
		c.hov.Leave()
		return
	}
	px := x - yGutter
	if px < 0 || px >= g.innerW || y < 0 || y >= g.innerH {
		c.hov.Leave()
		return
	}
	for i, d := range c.data {
		x0, x1 := g.barSpan(i)
		if px >= x0 && px < x1 && y >= g.barTop[i] {
			c.hov.Enter(d.Label, d.Value)
			return
		}
	}
	c.hov.Leave()
}

// MouseLeave clears hover state; the none callback fires once.
func (c *BarChart) MouseLeave() { c.hov.Leave() }

// Render draws the chart at the tracked size. A zero-size container or empty
// payload renders nothing rather than erroring.
func (c *BarChart) Render() string {
	g, ok := c.geometry()
	if !ok {
		return ""
	}
	if len(c.data) == 0 {
		return strings.Repeat("\n", c.size.Height-1)
	}

	min, max := g.lin.Domain()
	tickVals := axis.YTicks(min, max, c.cfg.YTicks)
	tickByRow := make(map[int]string, len(tickVals))
	for _, v := range tickVals {
		row := clamp(int(math.Round(g.lin.Pos(v))), 0, g.innerH-1)
		if _, taken := tickByRow[row]; !taken {
			tickByRow[row] = axis.FormatValue(v, c.cfg.Unit)
		}
	}

	hoveredLabel, hovering := c.hov.Hovered()

	rows := make([]string, 0, c.size.Height)
	for r := 0; r < g.innerH; r++ {
		gutter := emptyGutter()
		if label, ok := tickByRow[r]; ok {
			gutter = gutterLabel(label, c.th)
		}
		rows = append(rows, gutter+c.renderPlotRow(g, r, tickByRow))
	}

	centers := make([]int, len(c.data))
	for i := range c.data {
		x0, x1 := g.barSpan(i)
		centers[i] = (x0 + x1) / 2
	}
	interval := axis.Interval(len(c.data), c.cfg.XTickInterval, axis.TargetBarLabels)
	ticks := axis.Decimate(barLabels(c.data), interval)
	rows = append(rows, emptyGutter()+xLabelLine(ticks, centers, g.innerW, c.th))

	if c.cfg.ShowTooltip && hovering {
		rows = c.spliceTooltip(rows, g, hoveredLabel)
	}

	return strings.Join(rows, "\n")
}

func (c *BarChart) renderPlotRow(g barGeometry, r int, tickByRow map[int]string) string {
	hoveredLabel, _ := c.hov.Hovered()
	_, gridRow := tickByRow[r]

	gridStyle := lipgloss.NewStyle().Foreground(c.th.Grid)
	var sb strings.Builder
	col := 0
	for i, d := range c.data {
		x0, x1 := g.barSpan(i)
		for ; col < x0 && col < g.innerW; col++ {
			sb.WriteString(backgroundCell(gridRow, gridStyle))
		}
		if r >= g.barTop[i] {
			glyph := "█"
			if c.cfg.BarRadius > 0 && r == g.barTop[i] {
				glyph = "▆"
			}
			style := c.barStyle(d.Label, hoveredLabel)
			sb.WriteString(style.Render(strings.Repeat(glyph, x1-x0)))
		} else {
			for j := x0; j < x1; j++ {
				sb.WriteString(backgroundCell(gridRow, gridStyle))
			}
		}
		col = x1
	}
	for ; col < g.innerW; col++ {
		sb.WriteString(backgroundCell(gridRow, gridStyle))
	}
	return sb.String()
}

func backgroundCell(gridRow bool, gridStyle lipgloss.Style) string {
	if gridRow {
		return gridStyle.Render("┄")
	}
	return " "
}

// barStyle maps the hover opacity rule onto terminal styling: full opacity
// renders bold, the base level renders plain, anything dimmer renders muted.
func (c *BarChart) barStyle(label, hoveredLabel string) lipgloss.Style {
	op := c.hov.Opacity(label, c.cfg.BarOpacity)
	switch {
	case op >= 1 && label == hoveredLabel:
		return lipgloss.NewStyle().Foreground(c.cfg.Color).Bold(true)
	case op < c.cfg.BarOpacity:
		return lipgloss.NewStyle().Foreground(c.th.Muted)
	default:
		return lipgloss.NewStyle().Foreground(c.cfg.Color)
	}
}

func (c *BarChart) spliceTooltip(rows []string, g barGeometry, label string) []string {
	idx := -1
	for i, d := range c.data {
		if d.Label == label {
			idx = i
			break
		}
	}
	if idx < 0 {
		return rows
	}

	box := tooltip.Box(c.th, label, []string{axis.FormatValue(c.data[idx].Value, c.cfg.Unit)})
	boxH := lipgloss.Height(box)

	x0, x1 := g.barSpan(idx)
	anchorX := yGutter + (x0+x1)/2
	// Just above the bar top, clamped into the plot.
	anchorY := clamp(g.barTop[idx]-boxH, 0, g.innerH-1)

	p := tooltip.Place(anchorX, anchorY, c.size.Width)
	return tooltip.Splice(rows, box, p, c.size.Width)
}

func barLabels(data []series.Datum) []string {
	out := make([]string, len(data))
	for i, d := range data {
		out[i] = d.Label
	}
	return out
}
