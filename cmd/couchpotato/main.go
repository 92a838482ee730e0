package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"couchpotato/internal/catalog"
	"couchpotato/internal/config"
	"couchpotato/internal/nav"
	"couchpotato/internal/telemetry"
	"couchpotato/internal/ui"
)

var version = "dev"

func main() {
	cfg := config.MustLoad()
	if err := run(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	telemetry.SetVersion(version)
	tel, err := telemetry.Setup(ctx, telemetry.Options{
		Debug:   cfg.Logging.Debug,
		LogFile: cfg.Logging.FilePath,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := tel.Shutdown(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "telemetry shutdown: %v\n", err)
		}
	}()

	src, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer src.Close()

	tel.Logger.Info("starting",
		"version", version,
		"source", cfg.Source,
		"catalog", cfg.CatalogPath,
		"config", cfg.File,
		"tracing", tel.Tracing(),
	)

	n := nav.New(src, nav.WithLogger(tel.Logger), nav.WithSection(cfg.Section))
	model := ui.NewAppModel(n,
		ui.WithLogger(tel.Logger),
		ui.WithStartRoute(cfg.Route),
	).AsTeaModel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// openSource builds the catalog backend from the embedded seed or the
// configured seed file.
func openSource(cfg config.Config) (catalog.Source, error) {
	var (
		seed catalog.Seed
		err  error
	)
	if cfg.CatalogPath != "" {
		seed, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		seed, err = catalog.DefaultSeed()
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog.Open(cfg.Source, seed)
}
