package scale

import "math"

// Band maps a category label to a horizontal band of pixels. Bands partition
// the full width: step = width/len, and padding carves the gap out of each
// step so bars never overlap.
type Band struct {
	labels  []string
	index   map[string]int
	width   float64
	padding float64
}

func NewBand(labels []string, width, padding float64) Band {
	if width < 0 {
		width = 0
	}
	if padding < 0 {
		padding = 0
	}
	if padding > 1 {
		padding = 1
	}
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, ok := idx[l]; !ok {
			idx[l] = i
		}
	}
	return Band{labels: labels, index: idx, width: width, padding: padding}
}

func (b Band) Len() int { return len(b.labels) }
func (b Band) Labels() []string { return b.labels }
func (b Band) Width() float64 { return b.width }

// Step is the full per-category slot width, gap included.
func (b Band) Step() float64 {
	if len(b.labels) == 0 {
		return 0
	}
	return b.width / float64(len(b.labels))
}

// Bandwidth is the drawable bar width inside one step.
func (b Band) Bandwidth() float64 {
	return b.Step() * (1 - b.padding)
}

// Pos returns the left edge of the band for label. ok is false when the label
// is not in the domain (callers default to 0).
func (b Band) Pos(label string) (float64, bool) {
	i, ok := b.index[label]
	if !ok {
		return 0, false
	}
	return b.PosAt(i), true
}

// PosAt returns the left edge of the i-th band, gap split evenly per side.
func (b Band) PosAt(i int) float64 {
	return float64(i)*b.Step() + (b.Step()-b.Bandwidth())/2
}

// Point maps a category label to a single x position, spreading len(labels)
// points across [0, width] inclusive of both ends. A single label maps to 0.
type Point struct {
	labels []string
	index  map[string]int
	width  float64
}

func NewPoint(labels []string, width float64) Point {
	if width < 0 {
		width = 0
	}
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, ok := idx[l]; !ok {
			idx[l] = i
		}
	}
	return Point{labels: labels, index: idx, width: width}
}

func (p Point) Len() int { return len(p.labels) }
func (p Point) Labels() []string { return p.labels }

// Step is the distance between two adjacent points.
func (p Point) Step() float64 {
	if len(p.labels) < 2 {
		return 0
	}
	return p.width / float64(len(p.labels)-1)
}

func (p Point) Pos(label string) (float64, bool) {
	i, ok := p.index[label]
	if !ok {
		return 0, false
	}
	return p.PosAt(i), true
}

func (p Point) PosAt(i int) float64 {
	if len(p.labels) < 2 {
		return 0
	}
	return float64(i) * p.Step()
}

// Linear maps a numeric domain onto a vertical pixel range, min at the bottom
// (y = height) and max at the top (y = 0). The domain is always niced so axis
// ticks land on round values, including when the caller overrides it.
type Linear struct {
	min, max float64
	height   float64
}

// NewLinear nices [min,max] and orients it bottom-up over height pixels.
func NewLinear(min, max, height float64) Linear {
	if height < 0 {
		height = 0
	}
	nmin, nmax := Nice(min, max, 4)
	return Linear{min: nmin, max: nmax, height: height}
}

func (l Linear) Domain() (min, max float64) { return l.min, l.max }
func (l Linear) Height() float64 { return l.height }

// Pos maps a domain value to a y pixel. Values outside the domain project
// beyond the range; callers clamp when drawing.
func (l Linear) Pos(v float64) float64 {
	span := l.max - l.min
	if span == 0 {
		return l.height
	}
	return l.height - (v-l.min)/span*l.height
}

// DefaultDomain is the y-domain used when no override is given: [0, max of
// all values], with an empty or all-zero payload treated as [0, 1] so the
// scale never degenerates to zero height.
func DefaultDomain(values []float64) (min, max float64) {
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}
	return 0, max
}

// Nice expands [min,max] outward to round boundaries sized for about ticks
// intervals: the step is 1, 2 or 5 times a power of ten, min rounds down to
// it and max rounds up. The niced domain always contains the input.
func Nice(min, max float64, ticks int) (float64, float64) {
	if ticks < 1 {
		ticks = 1
	}
	if max < min {
		min, max = max, min
	}
	if min == max {
		max = min + 1
	}
	step := niceStep((max - min) / float64(ticks))
	return math.Floor(min/step) * step, math.Ceil(max/step) * step
}

// niceStep rounds a raw step to the nearest of 1, 2, 5 × 10^k.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	frac := raw / mag
	switch {
	case frac < 1.5:
		return mag
	case frac < 3:
		return 2 * mag
	case frac < 7:
		return 5 * mag
	default:
		return 10 * mag
	}
}
