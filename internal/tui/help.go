package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay draws a centered popup listing the keybindings.
// Dismissed by pressing any key.
func (m Model) renderHelpOverlay(screenW, screenH int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Text)
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Text)
	descStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	bindings := []struct{ key, desc string }{
		{"h/j/k/l", "move focus between tiles"},
		{"arrows", "same as h/j/k/l"},
		{"mouse", "hover a chart for details"},
		{"t", "cycle and save the theme"},
		{"esc", "clear hover state"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var lines []string
	lines = append(lines, titleStyle.Render("  dashplot"))
	lines = append(lines, "")
	for _, b := range bindings {
		lines = append(lines, "  "+keyStyle.Render(padRight(b.key, 9))+descStyle.Render(b.desc))
	}
	lines = append(lines, "")
	lines = append(lines, descStyle.Render("  press any key to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.TooltipBorder).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
