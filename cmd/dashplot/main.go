package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/dashplot/internal/config"
	"github.com/janekbaraniewski/dashplot/internal/store"
	"github.com/janekbaraniewski/dashplot/internal/theme"
)

func main() {
	if os.Getenv("DASHPLOT_DEBUG") != "" {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Config path: %s\n", config.ConfigPath())
		os.Exit(1)
	}

	root := cobra.Command{
		Use:   "dashplot",
		Short: "Dashplot is a terminal dashboard of interactive bar and line charts.",
		Run: func(_ *cobra.Command, _ []string) {
			runDashboard(cfg)
		},
	}

	root.AddCommand(newSeedCommand(cfg))
	root.AddCommand(newThemesCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSeedCommand(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the sample datasets into the database, replacing existing ones.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := store.OpenStore(cfg.ResolvedDatabasePath())
			if err != nil {
				return err
			}
			defer st.Close()

			if err := seedDatasets(cmd.Context(), st); err != nil {
				return err
			}
			fmt.Println("sample datasets written to", cfg.ResolvedDatabasePath())
			return nil
		},
	}
}

func newThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available themes, built in and user provided.",
		RunE: func(*cobra.Command, []string) error {
			catalog, err := theme.Catalog(config.ConfigDir())
			if err != nil {
				return err
			}
			for _, t := range catalog {
				fmt.Println(t.Name)
			}
			return nil
		},
	}
}
