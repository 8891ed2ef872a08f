package tui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/janekbaraniewski/dashplot/internal/config"
	"github.com/janekbaraniewski/dashplot/internal/grid"
	"github.com/janekbaraniewski/dashplot/internal/theme"
)

const headerHeight = 2 // brand line + separator
const footerHeight = 2 // separator + status line

// ConfigMsg carries a freshly reloaded config into the program.
type ConfigMsg config.Config

type themePersistedMsg struct{ err error }

type Model struct {
	tiles  []*Tile
	themes []theme.Theme
	theme  theme.Theme

	focus    int
	width    int
	height   int
	layout   grid.Layout
	showHelp bool
	status   string

	hoverTile int // index the pointer was last inside, -1 when none
}

func NewModel(tiles []*Tile, themes []theme.Theme, themeName string) Model {
	if len(themes) == 0 {
		themes = []theme.Theme{theme.Default()}
	}
	m := Model{
		tiles:     tiles,
		themes:    themes,
		theme:     theme.ByName(themes, themeName),
		hoverTile: -1,
	}
	m.applyTheme()
	return m
}

func (m *Model) applyTheme() {
	for _, t := range m.tiles {
		t.chart.SetBaseTheme(m.theme)
	}
}

// Close releases every tile's chart and size feed.
func (m Model) Close() {
	for _, t := range m.tiles {
		t.Close()
	}
}

func (m Model) persistThemeCmd(name string) tea.Cmd {
	return func() tea.Msg {
		err := config.SaveTheme(name)
		if err != nil {
			log.Printf("theme persist: %v", err)
		}
		return themePersistedMsg{err: err}
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case ConfigMsg:
		next := theme.ByName(m.themes, msg.Theme)
		if next.Name != m.theme.Name {
			m.theme = next
			m.applyTheme()
			m.status = "theme: " + next.Name
		}
		return m, nil

	case themePersistedMsg:
		if msg.err != nil {
			m.status = "theme save failed"
		} else {
			m.status = "theme saved"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) relayout() {
	contentH := m.height - headerHeight - footerHeight
	m.layout = grid.Compute(m.width, contentH, len(m.tiles))
	for i, t := range m.tiles {
		if i < len(m.layout.Rects) {
			t.Resize(m.layout.Rects[i])
		}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "t":
		next := m.nextTheme()
		m.theme = next
		m.applyTheme()
		return m, m.persistThemeCmd(next.Name)
	case "h", "left":
		m.focus = m.moveFocus(-1, 0)
	case "l", "right":
		m.focus = m.moveFocus(1, 0)
	case "k", "up":
		m.focus = m.moveFocus(0, -1)
	case "j", "down":
		m.focus = m.moveFocus(0, 1)
	case "esc":
		m.leaveAllTiles()
	}
	return m, nil
}

func (m Model) nextTheme() theme.Theme {
	for i, t := range m.themes {
		if t.Name == m.theme.Name {
			return m.themes[(i+1)%len(m.themes)]
		}
	}
	return m.themes[0]
}

// moveFocus walks the tile grid by column/row deltas, clamping at the edges.
func (m Model) moveFocus(dx, dy int) int {
	if len(m.tiles) == 0 || m.layout.Cols == 0 {
		return 0
	}
	col := m.focus%m.layout.Cols + dx
	row := m.focus/m.layout.Cols + dy
	if col < 0 {
		col = 0
	}
	if col >= m.layout.Cols {
		col = m.layout.Cols - 1
	}
	if row < 0 {
		row = 0
	}
	next := row*m.layout.Cols + col
	if next >= len(m.tiles) {
		next = len(m.tiles) - 1
	}
	return next
}

func (m *Model) leaveAllTiles() {
	for _, t := range m.tiles {
		t.chart.MouseLeave()
	}
	m.hoverTile = -1
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionPress:
	default:
		return m, nil
	}

	cy := msg.Y - headerHeight
	idx, localX, localY, ok := m.layout.Hit(msg.X, cy)
	if !ok || idx >= len(m.tiles) {
		m.leaveAllTiles()
		return m, nil
	}

	if m.hoverTile >= 0 && m.hoverTile != idx && m.hoverTile < len(m.tiles) {
		m.tiles[m.hoverTile].chart.MouseLeave()
	}
	m.hoverTile = idx

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.focus = idx
	}

	if cx, chartY, inBody := m.tiles[idx].chartLocal(localX, localY); inBody {
		m.tiles[idx].chart.MouseMove(cx, chartY)
	} else {
		m.tiles[idx].chart.MouseLeave()
	}
	return m, nil
}

func (m Model) View() string {
	if m.width < 30 || m.height < 8 {
		return lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Render("\n  Terminal too small. Resize to at least 30×8.")
	}
	if m.showHelp {
		return m.renderHelpOverlay(m.width, m.height)
	}

	header := m.renderHeader(m.width)
	footer := m.renderFooter(m.width)
	contentH := m.height - headerHeight - footerHeight
	content := overlayTiles(m.width, contentH, m.tiles, m.layout, m.theme, m.focus)

	return header + "\n" + content + "\n" + footer
}

func (m Model) renderHeader(w int) string {
	brand := lipgloss.NewStyle().Foreground(m.theme.Text).Bold(true).Render("▦ dashplot")
	info := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(fmt.Sprintf("%d charts · %s", len(m.tiles), m.theme.Name))

	gap := w - lipgloss.Width(brand) - lipgloss.Width(info) - 1
	if gap < 1 {
		gap = 1
	}
	line := " " + brand + strings.Repeat(" ", gap) + info

	sep := lipgloss.NewStyle().Foreground(m.theme.Grid).Render(strings.Repeat("━", w))
	return line + "\n" + sep
}

func (m Model) renderFooter(w int) string {
	sep := lipgloss.NewStyle().Foreground(m.theme.Grid).Render(strings.Repeat("━", w))
	status := m.status
	if status == "" {
		status = "? help · t theme · q quit"
	}
	line := " " + lipgloss.NewStyle().Foreground(m.theme.Muted).Render(status)
	return sep + "\n" + line
}
