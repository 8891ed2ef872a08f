// Package hover maps pointer positions inside a plot area to discrete data
// indexes and keeps the transient hover state a chart owns between renders.
package hover

import (
	"math"

	"github.com/janekbaraniewski/dashplot/internal/series"
)

// BarPayload is what a bar chart reports while a bar is hovered.
type BarPayload struct {
	Label string
	Value float64
}

// LinePayload is the cross-series result of a line-chart hover: the resolved
// index plus every series' value at that index.
type LinePayload struct {
	Index       int
	Label       string
	ValuesByKey map[string]float64
}

// Index resolves a pointer x offset (relative to the plot's left edge) to the
// nearest label index. Rounding is half-up, so the exact midpoint between two
// labels deterministically picks the right-hand one; the result is clamped to
// [0, n-1].
func Index(mx, innerWidth float64, labelCount int) int {
	if labelCount <= 0 {
		return 0
	}
	step := innerWidth / math.Max(float64(labelCount-1), 1)
	if step <= 0 {
		return 0
	}
	idx := int(math.Floor(mx/step + 0.5))
	if idx < 0 {
		idx = 0
	}
	if idx > labelCount-1 {
		idx = labelCount - 1
	}
	return idx
}

// LineValues collects every series' value at idx. Series shorter than idx
// report 0 rather than failing; charts that want strictness validate with
// series.Align first.
func LineValues(all []series.Series, idx int) map[string]float64 {
	out := make(map[string]float64, len(all))
	for _, s := range all {
		out[s.Key] = s.ValueAt(idx)
	}
	return out
}

// Bars tracks which bar is hovered and turns that into per-bar opacity.
type Bars struct {
	label    string
	hovering bool
	onHover  func(*BarPayload)
}

// NewBars wires an optional callback fired with the payload on enter/move and
// with nil exactly once per leave.
func NewBars(onHover func(*BarPayload)) *Bars {
	return &Bars{onHover: onHover}
}

func (b *Bars) Enter(label string, value float64) {
	b.label = label
	b.hovering = true
	if b.onHover != nil {
		b.onHover(&BarPayload{Label: label, Value: value})
	}
}

func (b *Bars) Leave() {
	if !b.hovering {
		return
	}
	b.hovering = false
	b.label = ""
	if b.onHover != nil {
		b.onHover(nil)
	}
}

func (b *Bars) Hovered() (string, bool) {
	return b.label, b.hovering
}

// Opacity implements the dimming rule: the hovered bar renders at full
// opacity, every other bar at half the base, and with nothing hovered all
// bars sit at the base opacity.
func (b *Bars) Opacity(label string, base float64) float64 {
	if !b.hovering {
		return base
	}
	if label == b.label {
		return 1
	}
	return base * 0.5
}

// Line tracks the continuously resolved hover index for a line chart.
type Line struct {
	idx      int
	pixelX   float64
	hovering bool
	onHover  func(*LinePayload)
}

func NewLine(onHover func(*LinePayload)) *Line {
	return &Line{onHover: onHover}
}

// Move resolves mx against the current geometry and payload. Hover state is
// always the latest resolved value; calling at pointer-move frequency
// accumulates nothing.
func (l *Line) Move(mx, innerWidth float64, all []series.Series) {
	if len(all) == 0 || len(all[0].Data) == 0 {
		l.Leave()
		return
	}
	labels := all[0].Labels()
	idx := Index(mx, innerWidth, len(labels))
	l.idx = idx
	l.pixelX = mx
	l.hovering = true
	if l.onHover != nil {
		l.onHover(&LinePayload{
			Index:       idx,
			Label:       labels[idx],
			ValuesByKey: LineValues(all, idx),
		})
	}
}

func (l *Line) Leave() {
	if !l.hovering {
		return
	}
	l.hovering = false
	if l.onHover != nil {
		l.onHover(nil)
	}
}

// Hovered reports the latest resolved index, false when nothing is hovered.
func (l *Line) Hovered() (int, bool) {
	return l.idx, l.hovering
}
