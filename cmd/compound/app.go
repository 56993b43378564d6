package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/compoundpro/compound-calculator/internal/calculation"
	"github.com/compoundpro/compound-calculator/internal/config"
	"github.com/compoundpro/compound-calculator/internal/domain"
	"github.com/compoundpro/compound-calculator/internal/output"
	"github.com/compoundpro/compound-calculator/internal/store"
	"github.com/compoundpro/compound-calculator/internal/store/sqlite"
	"github.com/spf13/cobra"
)

// app carries what every command needs once flags and environment are resolved.
type app struct {
	settings   config.Settings
	outputPath string

	parser *config.InputParser
	engine *calculation.Engine
	logger calculation.Logger

	// openStore is replaced in tests to share one in-memory store across commands.
	openStore func(config.Settings) (store.Repository, error)
}

func newApp(settings config.Settings) *app {
	return &app{
		settings:  settings,
		parser:    config.NewInputParser(),
		engine:    calculation.NewEngine(),
		logger:    calculation.NopLogger{},
		openStore: openStore,
	}
}

func openStore(s config.Settings) (store.Repository, error) {
	switch s.Store {
	case config.StoreMemory:
		return store.NewMemoryStore(store.Options{}), nil
	case config.StoreSQLite:
		return sqlite.Open(s.DBPath, store.Options{})
	default:
		return nil, fmt.Errorf("unknown store %q", s.Store)
	}
}

func (a *app) numberFormat() output.NumberFormat {
	return output.NumberFormat{Locale: a.settings.Locale, Currency: a.settings.Currency}
}

// loadPlan reads and validates a plan file.
func (a *app) loadPlan(path string) (*domain.Configuration, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("a plan file is required (use --config)")
	}
	cfg, err := a.parser.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debugf("loaded plan %s: %s", path, cfg.Describe())
	return cfg, nil
}

// scenarioName derives a display name from a plan file path.
func scenarioName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// emit renders report in the selected format to stdout, or to a file for
// --output and binary formats.
func (a *app) emit(cmd *cobra.Command, report *domain.Report, format string) error {
	if output.NormalizeFormatName(format) == "all" {
		return a.emitAll(cmd, report)
	}
	f, err := output.NewFormatter(format, a.numberFormat())
	if err != nil {
		return err
	}
	switch {
	case a.outputPath != "":
		if err := output.WriteFile(f, report, a.outputPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", a.outputPath)
		return nil
	case output.IsBinary(f):
		path, err := output.WriteFormatted(f, report, "")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", path)
		return nil
	default:
		return output.Render(cmd.OutOrStdout(), f, report)
	}
}

// emitAll writes the console, detailed-csv and html reports next to --output,
// or into the working directory.
func (a *app) emitAll(cmd *cobra.Command, report *domain.Report) error {
	dir := ""
	if a.outputPath != "" {
		dir = a.outputPath
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			dir = filepath.Dir(a.outputPath)
		}
	}
	paths, err := output.GenerateReport(report, "all", a.numberFormat(), dir)
	for _, p := range paths {
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", p)
	}
	return err
}

// withStore opens the configured store for the duration of fn.
func (a *app) withStore(fn func(store.Repository) error) error {
	repo, err := a.openStore(a.settings)
	if err != nil {
		return fmt.Errorf("open scenario store: %w", err)
	}
	defer func() {
		if cerr := repo.Close(); cerr != nil {
			a.logger.Warnf("close scenario store: %v", cerr)
		}
	}()
	return fn(repo)
}

func (a *app) projectionReport(cmd *cobra.Command, name string, cfg domain.Configuration) (*domain.Report, error) {
	p, err := a.engine.Project(cmd.Context(), name, cfg)
	if err != nil {
		return nil, err
	}
	return &domain.Report{
		Projections: []domain.ScenarioProjection{*p},
		Assumptions: output.GenerateAssumptions(cfg, a.numberFormat()),
	}, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
