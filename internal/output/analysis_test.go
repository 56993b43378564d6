package output

import (
	"testing"

	"github.com/compoundpro/compound-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeScenarios_RecommendedVersusBaseline(t *testing.T) {
	rec := AnalyzeScenarios(buildTestReport(t))
	assert.Equal(t, "cash", rec.ScenarioName)
	assert.Equal(t, "baseline", rec.BaselineName)
	assert.True(t, rec.FinalPurchasingPower.Equal(decimal.NewFromInt(500000)))
	assert.True(t, rec.PurchasingPowerDelta.Equal(decimal.NewFromInt(365283)))
	assert.Equal(t, "271.15", rec.PercentageChange.StringFixed(2))
}

func TestAnalyzeScenarios_NoRecommendation(t *testing.T) {
	assert.Equal(t, Recommendation{}, AnalyzeScenarios(nil))
	assert.Equal(t, Recommendation{}, AnalyzeScenarios(buildMonthlyReport(t)))

	report := buildTestReport(t)
	report.Recommended = "missing"
	assert.Equal(t, Recommendation{}, AnalyzeScenarios(report))
}

func TestAnalyzeScenarios_ZeroBaseline(t *testing.T) {
	report := &domain.Report{
		Projections: []domain.ScenarioProjection{
			{Name: "empty", Summary: domain.ProjectionSummary{FinalPurchasingPower: decimal.Zero}},
			{Name: "funded", Summary: domain.ProjectionSummary{FinalPurchasingPower: decimal.NewFromInt(10)}},
		},
		Recommended: "funded",
	}
	rec := AnalyzeScenarios(report)
	assert.Equal(t, "funded", rec.ScenarioName)
	assert.True(t, rec.PercentageChange.IsZero())
}

func TestGenerateAssumptions(t *testing.T) {
	got := GenerateAssumptions(baselinePlan(), DefaultNumberFormat)
	assert.Equal(t, []string{
		"Annual return: 6.00%, compounded monthly (0.5000% per month)",
		"Contributions of $10,000 per month ($120,000 per year) through year 2 (age 27)",
		"Withdrawals of $20,000 per month from year 3 until year 3",
		"Inflation: 2.00% annually; purchasing power is in today's money",
		"Balances never fall below zero; amounts are rounded to whole units for display",
	}, got)

	flat := GenerateAssumptions(cashPlan(), DefaultNumberFormat)
	assert.Contains(t, flat, "No inflation adjustment; purchasing power equals nominal assets")
	assert.NotContains(t, flat[2], "Withdrawals")
}
