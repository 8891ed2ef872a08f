package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/janekbaraniewski/dashplot/internal/grid"
	"github.com/janekbaraniewski/dashplot/internal/observe"
	"github.com/janekbaraniewski/dashplot/internal/theme"
)

// Chart is the surface a tile needs from its content. Both chart kinds
// satisfy it.
type Chart interface {
	Render() string
	MouseMove(x, y int)
	MouseLeave()
	SetBaseTheme(base theme.Theme)
	Close()
}

// Tile pairs a titled dashboard cell with its chart and the size feed the
// chart observes.
type Tile struct {
	Title   string
	chart   Chart
	tracker *observe.Tracker
}

func NewTile(title string, build func(*observe.Tracker) Chart) *Tile {
	t := &Tile{Title: title, tracker: observe.NewTracker()}
	t.chart = build(t.tracker)
	return t
}

// Resize feeds the chart drawing area for a tile rect: the bordered box eats
// two columns each side and the title takes the first inner row.
func (t *Tile) Resize(r grid.Rect) {
	in := r.Inner()
	t.tracker.Set(observe.Size{Width: in.W, Height: in.H - 1})
}

// chartLocal translates inner-box mouse coordinates into chart coordinates.
// Hit already strips the border and padding; only the title row remains.
func (t *Tile) chartLocal(localX, localY int) (int, int, bool) {
	cy := localY - 1
	if cy < 0 {
		return 0, 0, false
	}
	return localX, cy, true
}

func (t *Tile) Close() {
	t.chart.MouseLeave()
	t.chart.Close()
	t.tracker.Close()
}

// renderTile draws the bordered box with the title row and chart body.
func renderTile(t *Tile, r grid.Rect, th theme.Theme, focused bool) string {
	in := r.Inner()

	borderColor := th.Grid
	titleStyle := lipgloss.NewStyle().Foreground(th.Muted).Bold(true)
	if focused {
		borderColor = th.Text
		titleStyle = titleStyle.Foreground(th.Text)
	}

	body := t.chart.Render()
	lines := strings.Split(body, "\n")
	content := make([]string, 0, in.H)
	content = append(content, titleStyle.Render(truncate(t.Title, in.W)))
	for i := 0; i < in.H-1; i++ {
		if i < len(lines) {
			content = append(content, lines[i])
		} else {
			content = append(content, "")
		}
	}

	// Width covers padding, the border adds the remaining two columns.
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(in.W + 2).
		Height(in.H).
		Render(strings.Join(content, "\n"))
}

// overlayTiles composites rendered tiles onto a blank content canvas.
func overlayTiles(w, h int, tiles []*Tile, layout grid.Layout, th theme.Theme, focus int) string {
	rows := make([]string, h)
	blank := strings.Repeat(" ", w)
	for i := range rows {
		rows[i] = blank
	}

	for i, t := range tiles {
		if i >= len(layout.Rects) {
			break
		}
		r := layout.Rects[i]
		box := renderTile(t, r, th, i == focus)
		for dy, line := range strings.Split(box, "\n") {
			y := r.Y + dy
			if y < 0 || y >= h {
				continue
			}
			rows[y] = spliceAt(rows[y], line, r.X, w)
		}
	}
	return strings.Join(rows, "\n")
}

// spliceAt overlays seg into row at column x without mangling escape codes.
func spliceAt(row, seg string, x, total int) string {
	segW := lipgloss.Width(seg)
	left := ansi.Cut(row, 0, x)
	right := ansi.Cut(row, x+segW, total)
	return left + seg + right
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(r[:w-1]) + "…"
}
