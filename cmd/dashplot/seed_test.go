package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/janekbaraniewski/dashplot/internal/config"
	"github.com/janekbaraniewski/dashplot/internal/store"
	"github.com/janekbaraniewski/dashplot/internal/theme"
)

func TestSeedDatasets(t *testing.T) {
	st, err := store.OpenStore(filepath.Join(t.TempDir(), "dashplot.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	if err := seedDatasets(ctx, st); err != nil {
		t.Fatalf("seedDatasets: %v", err)
	}

	list, err := st.ListDatasets(ctx)
	if err != nil {
		t.Fatalf("ListDatasets: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 sample datasets, got %d", len(list))
	}

	// Re-seeding replaces rather than duplicates.
	if err := seedDatasets(ctx, st); err != nil {
		t.Fatalf("seedDatasets (again): %v", err)
	}
	list, err = st.ListDatasets(ctx)
	if err != nil {
		t.Fatalf("ListDatasets: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("expected re-seed to keep 3 datasets, got %d", len(list))
	}
}

func TestBuildTilesFromSeededStore(t *testing.T) {
	st, err := store.OpenStore(filepath.Join(t.TempDir(), "dashplot.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	if err := seedDatasets(ctx, st); err != nil {
		t.Fatalf("seedDatasets: %v", err)
	}

	tiles, err := buildTiles(ctx, st, config.DefaultConfig(), theme.Default())
	if err != nil {
		t.Fatalf("buildTiles: %v", err)
	}
	if len(tiles) != 3 {
		t.Fatalf("expected a tile per dataset, got %d", len(tiles))
	}
	for _, tile := range tiles {
		if tile.Title == "" {
			t.Error("expected every tile to carry its dataset name")
		}
	}
}
