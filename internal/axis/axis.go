// Package axis decides which ticks a chart renders: evenly spaced y gridline
// values across a niced domain, and a decimated subset of x labels so long
// category runs never overlap.
package axis

import (
	"fmt"
	"math"
)

// Visible-label targets per chart kind. Bar charts can afford denser labels
// than line charts, whose labels sit under single-column points.
const (
	TargetBarLabels  = 8
	TargetLineLabels = 6
)

// DefaultYTicks is the gridline count used when the caller does not set one.
const DefaultYTicks = 4

// Tick is one rendered x-axis label.
type Tick struct {
	Index int
	Label string
}

// Interval computes the label decimation stride. An explicit interval (> 0)
// wins; otherwise every ceil(n/target)-th label is shown, so index 0 is
// always rendered and spacing stays uniform for any data length.
func Interval(labelCount, explicit, target int) int {
	if explicit > 0 {
		return explicit
	}
	if target < 1 {
		target = 1
	}
	if labelCount <= target {
		return 1
	}
	return int(math.Ceil(float64(labelCount) / float64(target)))
}

// Decimate returns every label whose index is a multiple of interval.
func Decimate(labels []string, interval int) []Tick {
	if interval < 1 {
		interval = 1
	}
	var out []Tick
	for i := 0; i < len(labels); i += interval {
		out = append(out, Tick{Index: i, Label: labels[i]})
	}
	return out
}

// YTicks returns count+1 gridline values evenly spaced from the top of the
// domain down to its bottom, matching top-to-bottom render order.
func YTicks(min, max float64, count int) []float64 {
	if count < 1 {
		count = DefaultYTicks
	}
	out := make([]float64, count+1)
	for i := 0; i <= count; i++ {
		out[i] = max - (max-min)*float64(i)/float64(count)
	}
	return out
}

// FormatValue renders a tick value compactly, with the unit appended
// verbatim: 120 + "ms" → "120ms", 1500 → "1.5K".
func FormatValue(v float64, unit string) string {
	return compactNumber(v) + unit
}

func compactNumber(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1fM", v/1_000_000))
	case av >= 1_000:
		return trimZero(fmt.Sprintf("%.1fK", v/1_000))
	case v == math.Trunc(v):
		return fmt.Sprintf("%d", int64(v))
	default:
		return fmt.Sprintf("%.1f", v)
	}
}

func trimZero(s string) string {
	if len(s) > 3 && s[len(s)-3:len(s)-1] == ".0" {
		return s[:len(s)-3] + s[len(s)-1:]
	}
	return s
}
