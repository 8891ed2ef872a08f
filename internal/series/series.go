package series

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Datum is one categorical point: a label on the x-axis and a finite value.
type Datum struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series is an ordered run of data points plotted under one key. Series
// plotted together on a line chart must share an identical ordered label
// sequence; Align checks that.
type Series struct {
	Key   string         `json:"key"`
	Color lipgloss.Color `json:"color"`
	Data  []Datum        `json:"data"`
}

func (s Series) Labels() []string {
	out := make([]string, len(s.Data))
	for i, d := range s.Data {
		out[i] = d.Label
	}
	return out
}

func (s Series) Values() []float64 {
	out := make([]float64, len(s.Data))
	for i, d := range s.Data {
		out[i] = d.Value
	}
	return out
}

// ValueAt reports the value at index i, or 0 when the series is shorter.
func (s Series) ValueAt(i int) float64 {
	if i < 0 || i >= len(s.Data) {
		return 0
	}
	return s.Data[i].Value
}

// Align verifies that every series carries the same ordered label sequence.
// Charts call this before rendering so a misaligned payload surfaces as a
// configuration error instead of silently wrong hover lookups.
func Align(all []Series) error {
	if len(all) < 2 {
		return nil
	}
	ref := all[0]
	for _, s := range all[1:] {
		if len(s.Data) != len(ref.Data) {
			return fmt.Errorf("series %q has %d points, series %q has %d", s.Key, len(s.Data), ref.Key, len(ref.Data))
		}
		for i, d := range s.Data {
			if d.Label != ref.Data[i].Label {
				return fmt.Errorf("series %q label[%d] = %q, series %q has %q", s.Key, i, d.Label, ref.Key, ref.Data[i].Label)
			}
		}
	}
	return nil
}

// MaxValue returns the largest value across all series, 0 when empty.
func MaxValue(all []Series) float64 {
	max := float64(0)
	for _, s := range all {
		for _, d := range s.Data {
			if d.Value > max {
				max = d.Value
			}
		}
	}
	return max
}
