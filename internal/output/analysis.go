package output

import (
	"github.com/compoundpro/compound-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the recommended scenario of a comparison and how
// it differs from the first (baseline) scenario.
type Recommendation struct {
	ScenarioName         string
	FinalPurchasingPower decimal.Decimal
	BaselineName         string
	PurchasingPowerDelta decimal.Decimal
	PercentageChange     decimal.Decimal
}

// AnalyzeScenarios resolves the report's recommended scenario against the baseline.
// Single-projection reports have no recommendation.
func AnalyzeScenarios(report *domain.Report) Recommendation {
	if report == nil || report.Recommended == "" || len(report.Projections) < 2 {
		return Recommendation{}
	}
	baseline := report.Projections[0]
	for _, p := range report.Projections {
		if p.Name != report.Recommended {
			continue
		}
		delta := p.Summary.FinalPurchasingPower.Sub(baseline.Summary.FinalPurchasingPower)
		pct := decimal.Zero
		if !baseline.Summary.FinalPurchasingPower.IsZero() {
			pct = delta.Div(baseline.Summary.FinalPurchasingPower).Mul(decimal.NewFromInt(100))
		}
		return Recommendation{
			ScenarioName:         p.Name,
			FinalPurchasingPower: p.Summary.FinalPurchasingPower,
			BaselineName:         baseline.Name,
			PurchasingPowerDelta: delta,
			PercentageChange:     pct,
		}
	}
	return Recommendation{}
}
