package calculation

import (
	"testing"

	"github.com/compoundpro/compound-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_AccumulationOnly(t *testing.T) {
	cfg := defaultPlan(3)
	cfg.RetirementYear = 2
	cfg.MonthlyWithdrawal = dec(20000)
	cfg.InflationRate = dec(2)
	rows := SimulateAnnual(cfg)

	s := Summarize(cfg, rows)
	assert.Equal(t, "142962", s.FinalAssets.String())
	assert.Equal(t, "340000", s.FinalInvested.String())
	assert.Equal(t, "-197038", s.TotalGain.String())
	assert.Equal(t, "134717", s.FinalPurchasingPower.String())
	assert.Equal(t, "367036", s.PeakAssets.String())
	assert.Equal(t, 2, s.PeakYear)
	assert.Equal(t, 27, s.RetirementAge)
	assert.Equal(t, "42962", s.TotalInterest.String()) // 9523 + 17512 + 15927
	assert.False(t, s.IsDepleted())
}

func TestSummarize_Depletion(t *testing.T) {
	cfg := domain.Configuration{
		InitialPrincipal:  dec(10000),
		YearsToGrow:       4,
		StartAge:          60,
		RetirementYear:    1,
		MonthlyWithdrawal: dec(500),
	}
	rows := SimulateAnnual(cfg)
	s := Summarize(cfg, rows)
	require.True(t, s.IsDepleted())
	assert.Equal(t, 3, s.DepletionYear) // 10000 - 6000 - 6000 < 0 in year 3
	assert.Equal(t, 63, s.DepletionAge)
	assert.Equal(t, 0, s.PeakYear)
}

func TestSummarize_ZeroPlanIsNotDepletedBeforeRetirement(t *testing.T) {
	cfg := domain.Configuration{YearsToGrow: 5, RetirementYear: 5}
	s := Summarize(cfg, SimulateAnnual(cfg))
	assert.False(t, s.IsDepleted())
	assert.True(t, s.FinalAssets.IsZero())
}

func TestSummarize_Empty(t *testing.T) {
	cfg := defaultPlan(5)
	s := Summarize(cfg, nil)
	assert.True(t, s.FinalAssets.IsZero())
	assert.Equal(t, 30, s.RetirementAge)
}

func TestRecommendScenario(t *testing.T) {
	projections := []domain.ScenarioProjection{
		{Name: "Conservative", Summary: domain.ProjectionSummary{FinalPurchasingPower: dec(100)}},
		{Name: "Aggressive", Summary: domain.ProjectionSummary{FinalPurchasingPower: dec(300)}},
		{Name: "Balanced", Summary: domain.ProjectionSummary{FinalPurchasingPower: dec(300)}},
	}
	assert.Equal(t, "Aggressive", recommendScenario(projections))
	assert.Equal(t, "", recommendScenario(nil))
}
