// Package grid computes dashboard tile geometry: how many columns fit, where
// each tile sits, and which tile a screen cell belongs to. It is purely a
// geometry provider: charts consume the rects, drag/resize lives elsewhere.
package grid

const (
	tileMinWidth   = 30
	tileMinHeight  = 8 // minimum content lines inside a tile
	tileGapH       = 2 // horizontal gap between tiles
	tileGapV       = 1 // vertical gap between tile rows
	tileBorderV    = 2 // top + bottom border lines
	tileBorderH    = 2 // left + right border chars
	tileMaxColumns = 3
)

// Rect is one tile's outer geometry in screen cells.
type Rect struct {
	X, Y, W, H int
}

// Inner is the tile's content box: the rect minus border and padding.
func (r Rect) Inner() Rect {
	return Rect{
		X: r.X + tileBorderH/2 + 1,
		Y: r.Y + tileBorderV/2,
		W: r.W - tileBorderH - 2,
		H: r.H - tileBorderV,
	}
}

// Contains reports whether a screen cell falls inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout is the resolved geometry for n tiles inside a content area.
type Layout struct {
	Cols  int
	Rects []Rect
}

// Compute fits n tiles into a contentW × contentH area: as many columns as
// keep every tile at least tileMinWidth wide (capped at tileMaxColumns), rows
// splitting the remaining height evenly.
func Compute(contentW, contentH, n int) Layout {
	if n <= 0 {
		return Layout{Cols: 1}
	}
	if contentW < tileMinWidth+tileBorderH {
		contentW = tileMinWidth + tileBorderH
	}

	cols := tileMaxColumns
	if n < cols {
		cols = n
	}
	for cols > 1 {
		perCol := (contentW-(cols-1)*tileGapH)/cols - tileBorderH
		if perCol >= tileMinWidth {
			break
		}
		cols--
	}

	rows := (n + cols - 1) / cols
	tileW := (contentW-(cols-1)*tileGapH)/cols
	tileH := (contentH - (rows-1)*tileGapV) / rows
	if tileH < tileMinHeight+tileBorderV {
		tileH = tileMinHeight + tileBorderV
	}

	rects := make([]Rect, n)
	for i := range rects {
		row := i / cols
		col := i % cols
		rects[i] = Rect{
			X: col * (tileW + tileGapH),
			Y: row * (tileH + tileGapV),
			W: tileW,
			H: tileH,
		}
	}
	return Layout{Cols: cols, Rects: rects}
}

// Hit maps a screen cell to the tile under it, returning the tile index and
// coordinates local to the tile's inner content box. ok is false between
// tiles and outside the grid.
func (l Layout) Hit(x, y int) (idx, localX, localY int, ok bool) {
	for i, r := range l.Rects {
		if !r.Contains(x, y) {
			continue
		}
		inner := r.Inner()
		if !inner.Contains(x, y) {
			return i, 0, 0, false
		}
		return i, x - inner.X, y - inner.Y, true
	}
	return 0, 0, 0, false
}
