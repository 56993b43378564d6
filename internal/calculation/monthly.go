package calculation

import (
	"fmt"

	"github.com/compoundpro/compound-calculator/internal/domain"
	money "github.com/compoundpro/compound-calculator/pkg/decimal"
)

// SimulateMonth reconstructs the twelve months of targetYear. Prior years are
// replayed with the same rules as SimulateAnnual and discarded. Each month
// compounds off the previous month's unrounded end balance; balances and
// interest are rounded only in the returned rows.
func SimulateMonth(cfg domain.Configuration, targetYear int) ([]domain.MonthlyDetail, error) {
	if targetYear < 1 || targetYear > cfg.YearsToGrow {
		return nil, fmt.Errorf("%w: year %d not in [1, %d]", ErrTargetYearOutOfRange, targetYear, cfg.YearsToGrow)
	}

	rate := money.MonthlyRate(cfg.AnnualRate)
	state := initialState(&cfg)
	for year := 1; year < targetYear; year++ {
		state, _ = runYear(&cfg, rate, state, year, nil)
	}

	details := make([]domain.MonthlyDetail, 0, monthsPerYear)
	runYear(&cfg, rate, state, targetYear, func(step monthStep) {
		details = append(details, step.detail())
	})
	return details, nil
}

// WalkMonths runs the whole horizon once and calls visit for every month in
// order. Rows match what SimulateMonth returns for the same year.
func WalkMonths(cfg domain.Configuration, visit func(year int, detail domain.MonthlyDetail)) {
	rate := money.MonthlyRate(cfg.AnnualRate)
	state := initialState(&cfg)
	for year := 1; year <= cfg.YearsToGrow; year++ {
		state, _ = runYear(&cfg, rate, state, year, func(step monthStep) {
			visit(year, step.detail())
		})
	}
}

func (s monthStep) detail() domain.MonthlyDetail {
	return domain.MonthlyDetail{
		Month:        s.Month,
		StartBalance: money.WholeUnits(s.Start),
		Interest:     money.WholeUnits(s.Interest),
		Contribution: s.CashFlow,
		EndBalance:   money.WholeUnits(s.End),
	}
}
