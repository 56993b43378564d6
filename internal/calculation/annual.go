package calculation

import (
	"github.com/compoundpro/compound-calculator/internal/domain"
	money "github.com/compoundpro/compound-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// SimulateAnnual produces one row per year from year 0 through YearsToGrow.
// Year 0 is the opening snapshot. Running balances are kept unrounded; values
// are rounded to whole currency units only when emitted.
//
// Callers validate YearsToGrow >= 1; a smaller horizon yields only the year-0 row.
func SimulateAnnual(cfg domain.Configuration) []domain.YearlyResult {
	horizon := cfg.YearsToGrow
	if horizon < 0 {
		horizon = 0
	}
	results := make([]domain.YearlyResult, 0, horizon+1)
	rate := money.MonthlyRate(cfg.AnnualRate)
	state := initialState(&cfg)

	results = append(results, domain.YearlyResult{
		Year:                 0,
		Age:                  cfg.AgeAt(0),
		TotalAssets:          state.Balance,
		TotalInvested:        state.Invested,
		InterestEarnedYearly: decimal.Zero,
		PurchasingPower:      state.Balance,
		IsRetirement:         false,
	})

	for year := 1; year <= horizon; year++ {
		var interest decimal.Decimal
		state, interest = runYear(&cfg, rate, state, year, nil)

		results = append(results, domain.YearlyResult{
			Year:                 year,
			Age:                  cfg.AgeAt(year),
			TotalAssets:          money.WholeUnits(state.Balance),
			TotalInvested:        money.WholeUnits(state.Invested),
			InterestEarnedYearly: money.WholeUnits(interest),
			PurchasingPower:      money.WholeUnits(money.PresentValue(state.Balance, cfg.InflationRate, year)),
			IsRetirement:         cfg.IsRetirement(year),
		})
	}

	return results
}
