package calculation

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/compoundpro/compound-calculator/internal/domain"
)

// Engine runs projections for configurations and memoizes annual results
// by configuration value, so repeated requests for an unchanged plan are free.
type Engine struct {
	Logger Logger

	mu     sync.Mutex
	cache  map[uint64][]domain.YearlyResult
	hits   int
	misses int
}

// NewEngine creates a new engine with an empty cache and a no-op logger
func NewEngine() *Engine {
	return &Engine{
		Logger: NopLogger{},
		cache:  make(map[uint64][]domain.YearlyResult),
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Annual returns the yearly rows for cfg, computing them at most once per distinct configuration.
func (e *Engine) Annual(ctx context.Context, cfg domain.Configuration) ([]domain.YearlyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.YearsToGrow < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, cfg.YearsToGrow)
	}

	key, err := fingerprint(cfg)
	if err != nil {
		return nil, fmt.Errorf("fingerprint configuration: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cache == nil {
		e.cache = make(map[uint64][]domain.YearlyResult)
	}
	if rows, ok := e.cache[key]; ok {
		e.hits++
		e.Logger.Debugf("annual projection cache hit (%016x)", key)
		return append([]domain.YearlyResult(nil), rows...), nil
	}

	e.misses++
	rows := SimulateAnnual(cfg)
	e.cache[key] = rows
	e.Logger.Debugf("annual projection computed: %d years, %d events (%016x)", cfg.YearsToGrow, len(cfg.OneTimeEvents), key)
	return append([]domain.YearlyResult(nil), rows...), nil
}

// Project runs and summarizes a named configuration
func (e *Engine) Project(ctx context.Context, name string, cfg domain.Configuration) (*domain.ScenarioProjection, error) {
	rows, err := e.Annual(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", name, err)
	}
	projection := &domain.ScenarioProjection{
		Name:          name,
		Configuration: cfg,
		Yearly:        rows,
		Summary:       Summarize(cfg, rows),
	}
	if projection.Summary.IsDepleted() {
		e.Logger.Warnf("scenario %q depletes in year %d (age %d)", name, projection.Summary.DepletionYear, projection.Summary.DepletionAge)
	}
	return projection, nil
}

// MonthlyDetail returns the month-by-month drill-down of one year
func (e *Engine) MonthlyDetail(ctx context.Context, name string, cfg domain.Configuration, year int) (*domain.MonthlyBreakdown, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	months, err := SimulateMonth(cfg, year)
	if err != nil {
		return nil, err
	}
	e.Logger.Debugf("monthly detail for %q year %d: replayed %d prior years", name, year, year-1)
	return &domain.MonthlyBreakdown{
		Scenario: name,
		Year:     year,
		Age:      cfg.AgeAt(year),
		Months:   months,
	}, nil
}

// Compare projects every configuration and recommends the one with the
// highest final purchasing power.
func (e *Engine) Compare(ctx context.Context, scenarios []NamedConfiguration) (*domain.Report, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to compare")
	}
	report := &domain.Report{Projections: make([]domain.ScenarioProjection, 0, len(scenarios))}
	for _, sc := range scenarios {
		p, err := e.Project(ctx, sc.Name, sc.Configuration)
		if err != nil {
			return nil, fmt.Errorf("compare: %w", err)
		}
		report.Projections = append(report.Projections, *p)
	}
	if len(report.Projections) > 1 {
		report.Recommended = recommendScenario(report.Projections)
		e.Logger.Infof("compared %d scenarios; highest final purchasing power: %s", len(report.Projections), report.Recommended)
	}
	return report, nil
}

// CacheStats reports memoization hits and misses since the engine was created.
func (e *Engine) CacheStats() (hits, misses int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hits, e.misses
}

// fingerprint hashes the canonical JSON encoding of a configuration.
func fingerprint(cfg domain.Configuration) (uint64, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(b), nil
}
