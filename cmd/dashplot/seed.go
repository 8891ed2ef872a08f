package main

import (
	"context"

	"github.com/janekbaraniewski/dashplot/internal/series"
	"github.com/janekbaraniewski/dashplot/internal/store"
)

// seedDatasets writes the sample payloads used on first run and by the seed
// subcommand.
func seedDatasets(ctx context.Context, st *store.Store) error {
	weekdays := []series.Series{{Key: "requests", Data: []series.Datum{
		{Label: "mon", Value: 1840},
		{Label: "tue", Value: 2210},
		{Label: "wed", Value: 2025},
		{Label: "thu", Value: 2390},
		{Label: "fri", Value: 2150},
		{Label: "sat", Value: 940},
		{Label: "sun", Value: 760},
	}}}
	if err := st.SaveDataset(ctx, "Requests by Weekday", store.KindBar, "", weekdays); err != nil {
		return err
	}

	labels := []string{"10:00", "10:05", "10:10", "10:15", "10:20", "10:25", "10:30", "10:35", "10:40", "10:45", "10:50", "10:55"}
	p50 := []float64{42, 39, 45, 51, 47, 44, 40, 43, 49, 52, 46, 41}
	p99 := []float64{180, 195, 170, 240, 210, 188, 176, 199, 231, 260, 204, 182}

	latency := []series.Series{
		{Key: "p50", Color: "#A3BE8C", Data: datums(labels, p50)},
		{Key: "p99", Color: "#BF616A", Data: datums(labels, p99)},
	}
	if err := st.SaveDataset(ctx, "Latency", store.KindLine, "ms", latency); err != nil {
		return err
	}

	errors := []series.Series{{Key: "5xx", Data: []series.Datum{
		{Label: "api", Value: 14},
		{Label: "auth", Value: 3},
		{Label: "billing", Value: 8},
		{Label: "search", Value: 21},
		{Label: "static", Value: 1},
	}}}
	return st.SaveDataset(ctx, "Errors by Service", store.KindBar, "", errors)
}

func datums(labels []string, values []float64) []series.Datum {
	out := make([]series.Datum, len(labels))
	for i, l := range labels {
		out[i] = series.Datum{Label: l, Value: values[i]}
	}
	return out
}
