package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/janekbaraniewski/dashplot/internal/chart"
	"github.com/janekbaraniewski/dashplot/internal/config"
	"github.com/janekbaraniewski/dashplot/internal/observe"
	"github.com/janekbaraniewski/dashplot/internal/series"
	"github.com/janekbaraniewski/dashplot/internal/store"
	"github.com/janekbaraniewski/dashplot/internal/theme"
	"github.com/janekbaraniewski/dashplot/internal/tui"
)

func runDashboard(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.OpenStore(cfg.ResolvedDatabasePath())
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("opening store: %v", err)
	}
	defer st.Close()

	if empty, err := st.Empty(ctx); err == nil && empty {
		if err := seedDatasets(ctx, st); err != nil {
			log.Printf("seeding samples: %v", err)
		}
	}

	themes, err := theme.Catalog(config.ConfigDir())
	if err != nil {
		log.Printf("loading themes: %v", err)
		themes = []theme.Theme{theme.Default()}
	}
	base := theme.ByName(themes, cfg.Theme)

	tiles, err := buildTiles(ctx, st, cfg, base)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("loading datasets: %v", err)
	}

	model := tui.NewModel(tiles, themes, cfg.Theme)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if err := config.Watch(ctx, config.ConfigPath(), func(next config.Config) {
		program.Send(tui.ConfigMsg(next))
	}); err != nil {
		log.Printf("config watch: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("TUI error: %v", err)
	}
	model.Close()
}

// buildTiles makes one chart tile per stored dataset.
func buildTiles(ctx context.Context, st *store.Store, cfg config.Config, base theme.Theme) ([]*tui.Tile, error) {
	datasets, err := st.ListDatasets(ctx)
	if err != nil {
		return nil, err
	}

	tiles := make([]*tui.Tile, 0, len(datasets))
	for _, ds := range datasets {
		all, err := st.LoadDataset(ctx, ds.Name)
		if err != nil {
			return nil, err
		}

		chartCfg := chart.Config{
			BarPadding:  cfg.Charts.BarPadding,
			BarOpacity:  cfg.Charts.BarOpacity,
			YTicks:      cfg.Charts.YTicks,
			Unit:        ds.Unit,
			ShowLegend:  cfg.UI.ShowLegend,
			ShowTooltip: cfg.UI.ShowTooltips,
		}

		tiles = append(tiles, tui.NewTile(ds.Name, func(tr *observe.Tracker) tui.Chart {
			if ds.Kind == store.KindLine {
				return chart.NewLineChart(all, chartCfg, base, tr, nil)
			}
			return chart.NewBarChart(flatten(all), chartCfg, base, tr, nil)
		}))
	}
	return tiles, nil
}

// flatten folds a single-series dataset into bar datums.
func flatten(all []series.Series) []series.Datum {
	if len(all) == 0 {
		return nil
	}
	return all[0].Data
}
