package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/janekbaraniewski/dashplot/internal/theme"
)

// braille cells pack 2×4 sub-pixels; these are the per-dot pattern bits.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// plotCanvas is the line chart's drawing surface: a braille sub-pixel grid
// plus cell-level overlays for gridlines, the crosshair column and hover
// markers.
type plotCanvas struct {
	cw, ch int   // cell dimensions
	pw, ph int   // sub-pixel dimensions (cw*2, ch*4)
	grid   []int // flat [ph*pw], series index per sub-pixel (-1 = empty)

	gridRows  map[int]bool // cell rows carrying a y gridline
	crosshair int          // crosshair cell column, -1 when absent

	markers map[[2]int]lipgloss.Color // cell → marker dot color
}

func newPlotCanvas(cw, ch int) *plotCanvas {
	pw, ph := cw*2, ch*4
	grid := make([]int, pw*ph)
	for i := range grid {
		grid[i] = -1
	}
	return &plotCanvas{
		cw: cw, ch: ch, pw: pw, ph: ph, grid: grid,
		gridRows:  make(map[int]bool),
		crosshair: -1,
		markers:   make(map[[2]int]lipgloss.Color),
	}
}

func (c *plotCanvas) set(px, py, seriesIdx int) {
	if px >= 0 && px < c.pw && py >= 0 && py < c.ph {
		c.grid[py*c.pw+px] = seriesIdx
	}
}

// line rasterizes a segment between two sub-pixel points.
func (c *plotCanvas) line(x0, y0, x1, y1, seriesIdx int) {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	steps := math.Abs(dx)
	if math.Abs(dy) > steps {
		steps = math.Abs(dy)
	}
	if steps == 0 {
		c.set(x0, y0, seriesIdx)
		return
	}
	xInc := dx / steps
	yInc := dy / steps
	x, y := float64(x0), float64(y0)
	for i := 0; i <= int(steps); i++ {
		c.set(int(math.Round(x)), int(math.Round(y)), seriesIdx)
		x += xInc
		y += yInc
	}
}

func (c *plotCanvas) setGridRow(cellRow int) {
	if cellRow >= 0 && cellRow < c.ch {
		c.gridRows[cellRow] = true
	}
}

func (c *plotCanvas) setCrosshair(cellCol int) {
	if cellCol >= 0 && cellCol < c.cw {
		c.crosshair = cellCol
	}
}

func (c *plotCanvas) setMarker(cellCol, cellRow int, color lipgloss.Color) {
	if cellCol >= 0 && cellCol < c.cw && cellRow >= 0 && cellRow < c.ch {
		c.markers[[2]int{cellCol, cellRow}] = color
	}
}

// render flattens the canvas into one styled string per cell row. Cell
// precedence: marker dots, then series pixels, then the crosshair column,
// then gridlines.
func (c *plotCanvas) render(colors []lipgloss.Color, th theme.Theme) []string {
	gridStyle := lipgloss.NewStyle().Foreground(th.Grid)
	crossStyle := lipgloss.NewStyle().Foreground(th.Muted)

	lines := make([]string, c.ch)
	for cy := 0; cy < c.ch; cy++ {
		var sb strings.Builder
		for cx := 0; cx < c.cw; cx++ {
			if color, ok := c.markers[[2]int{cx, cy}]; ok {
				sb.WriteString(lipgloss.NewStyle().Foreground(color).Render("●"))
				continue
			}

			pattern := rune(0x2800)
			counts := make(map[int]int)
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					si := c.grid[(cy*4+dy)*c.pw+cx*2+dx]
					if si >= 0 {
						pattern |= brailleDots[dy][dx]
						counts[si]++
					}
				}
			}

			switch {
			case pattern != 0x2800:
				// Ties (crossing or parallel lines sharing a cell) go to
				// the lowest series index so repeated renders agree.
				bestSi, bestCnt := -1, 0
				for si, cnt := range counts {
					if cnt > bestCnt || (cnt == bestCnt && (bestSi == -1 || si < bestSi)) {
						bestSi = si
						bestCnt = cnt
					}
				}
				color := th.Text
				if bestSi >= 0 && bestSi < len(colors) {
					color = colors[bestSi]
				}
				sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(pattern)))
			case cx == c.crosshair:
				sb.WriteString(crossStyle.Render("│"))
			case c.gridRows[cy]:
				sb.WriteString(gridStyle.Render("┄"))
			default:
				sb.WriteRune(' ')
			}
		}
		lines[cy] = sb.String()
	}
	return lines
}
