package calculation

import (
	"github.com/compoundpro/compound-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Summarize derives the headline figures of a projection from its yearly rows.
func Summarize(cfg domain.Configuration, rows []domain.YearlyResult) domain.ProjectionSummary {
	summary := domain.ProjectionSummary{RetirementAge: cfg.RetirementAge()}
	if len(rows) == 0 {
		return summary
	}

	final := rows[len(rows)-1]
	summary.FinalAssets = final.TotalAssets
	summary.FinalInvested = final.TotalInvested
	summary.TotalGain = final.Gain()
	summary.FinalPurchasingPower = final.PurchasingPower

	summary.PeakAssets = rows[0].TotalAssets
	summary.PeakYear = rows[0].Year
	totalInterest := decimal.Zero
	for _, row := range rows {
		totalInterest = totalInterest.Add(row.InterestEarnedYearly)
		if row.TotalAssets.GreaterThan(summary.PeakAssets) {
			summary.PeakAssets = row.TotalAssets
			summary.PeakYear = row.Year
		}
		if summary.DepletionYear == 0 && row.IsRetirement && row.IsDepleted() {
			summary.DepletionYear = row.Year
			summary.DepletionAge = row.Age
		}
	}
	summary.TotalInterest = totalInterest

	return summary
}

// NamedConfiguration pairs a configuration with a display name for comparisons.
type NamedConfiguration struct {
	Name          string
	Configuration domain.Configuration
}

// recommendScenario picks the projection with the highest final purchasing power.
// Ties keep the earlier projection.
func recommendScenario(projections []domain.ScenarioProjection) string {
	var best string
	var bestValue decimal.Decimal
	for i, p := range projections {
		if i == 0 || p.Summary.FinalPurchasingPower.GreaterThan(bestValue) {
			best = p.Name
			bestValue = p.Summary.FinalPurchasingPower
		}
	}
	return best
}
