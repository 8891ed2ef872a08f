// Package tooltip decides where a floating annotation sits relative to a
// hovered point so it never spills past the plot's right edge, and renders
// the annotation box itself.
package tooltip

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/janekbaraniewski/dashplot/internal/theme"
)

// Offset is the fixed horizontal gap between the anchor and the tooltip box,
// in cells.
const Offset = 2

// LineTooltipRow is the fixed row (below the top margin) where line-chart
// tooltips sit. Keeping it constant means the box never jumps vertically
// while the user scrubs across the series.
const LineTooltipRow = 1

// Placement is a resolved anchor for a tooltip box.
type Placement struct {
	X, Y int
	// AlignRight means the box grows leftward from X (anchor sits past the
	// plot midpoint), so the right edge never overflows.
	AlignRight bool
}

// Place resolves the flip rule: anchors at or left of the horizontal midpoint
// put the box to the right of the point; anchors past it put the box to the
// left, right-aligned.
func Place(anchorX, anchorY, totalWidth int) Placement {
	if anchorX <= totalWidth/2 {
		return Placement{X: anchorX + Offset, Y: anchorY}
	}
	return Placement{X: anchorX - Offset, Y: anchorY, AlignRight: true}
}

// Box renders the annotation: a title line plus one line per entry, styled
// with the theme's tooltip tokens.
func Box(t theme.Theme, title string, lines []string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.TooltipBorder).
		Background(t.TooltipBg).
		Foreground(t.Text).
		Padding(0, 1)

	body := lipgloss.NewStyle().Bold(true).Foreground(t.Text).Render(title)
	if len(lines) > 0 {
		body += "\n" + strings.Join(lines, "\n")
	}
	return style.Render(body)
}

// Splice overlays box onto a slice of already-rendered rows at the given
// placement, clamping so the box stays inside [0, totalWidth). Rows are
// ANSI-styled; cutting goes through ansi.Cut so styles survive.
func Splice(rows []string, box string, p Placement, totalWidth int) []string {
	boxLines := strings.Split(box, "\n")
	boxW := lipgloss.Width(box)

	x := p.X
	if p.AlignRight {
		x = p.X - boxW
	}
	if x+boxW > totalWidth {
		x = totalWidth - boxW
	}
	if x < 0 {
		x = 0
	}

	out := make([]string, len(rows))
	copy(out, rows)
	for i, bl := range boxLines {
		row := p.Y + i
		if row < 0 || row >= len(out) {
			continue
		}
		out[row] = overlayAt(out[row], bl, x, totalWidth)
	}
	return out
}

func overlayAt(row, piece string, x, totalWidth int) string {
	pieceW := lipgloss.Width(piece)
	left := ansi.Cut(padTo(row, totalWidth), 0, x)
	if pad := x - lipgloss.Width(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.Cut(padTo(row, totalWidth), x+pieceW, totalWidth)
	return left + piece + right
}

func padTo(s string, w int) string {
	if pad := w - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
