package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/compoundpro/compound-calculator/internal/calculation"
	"github.com/compoundpro/compound-calculator/internal/config"
	"github.com/compoundpro/compound-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadPlan(t *testing.T, name string) *domain.Configuration {
	t.Helper()
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/" + name)
	require.NoError(t, err)
	return cfg
}

func TestEndToEnd_ScenarioA(t *testing.T) {
	cfg := loadPlan(t, "scenario_a.yaml")
	engine := calculation.NewEngine()

	p, err := engine.Project(context.Background(), "A", *cfg)
	require.NoError(t, err)
	require.Len(t, p.Yearly, 2)
	assert.Equal(t, "229523", p.Yearly[1].TotalAssets.String())
	assert.Equal(t, "220000", p.Yearly[1].TotalInvested.String())
	assert.Equal(t, "9523", p.Yearly[1].InterestEarnedYearly.String())
	assert.False(t, p.Yearly[1].IsRetirement)
	assert.Equal(t, 26, p.Yearly[1].Age)
}

func TestEndToEnd_DefaultPlanInvariants(t *testing.T) {
	cfg := loadPlan(t, "default_plan.yaml")
	rows := calculation.SimulateAnnual(*cfg)
	require.Len(t, rows, cfg.YearsToGrow+1)

	for i, row := range rows {
		assert.Equal(t, i, row.Year)
		assert.Equal(t, cfg.StartAge+i, row.Age)
		assert.Equal(t, i > cfg.RetirementYear, row.IsRetirement, "year %d", i)
		assert.False(t, row.TotalAssets.IsNegative(), "year %d", i)
		if i > 0 {
			assert.True(t, row.TotalInvested.GreaterThanOrEqual(rows[i-1].TotalInvested), "invested must never decrease (year %d)", i)
		}
		if i > cfg.RetirementYear {
			assert.True(t, row.TotalInvested.Equal(rows[cfg.RetirementYear].TotalInvested), "no contributions after retirement (year %d)", i)
		}
	}
	// the year-15 deposit counts as invested
	want := rows[14].TotalInvested.Add(decimal.NewFromInt(120000 + 100000))
	assert.True(t, rows[15].TotalInvested.Equal(want), "got %s want %s", rows[15].TotalInvested, want)
}

func TestEndToEnd_MonthlyDetailMatchesAnnual(t *testing.T) {
	cfg := loadPlan(t, "default_plan.yaml")
	rows := calculation.SimulateAnnual(*cfg)
	seven := decimal.NewFromInt(7)

	for year := 1; year <= cfg.YearsToGrow; year++ {
		months, err := calculation.SimulateMonth(*cfg, year)
		require.NoError(t, err)
		require.Len(t, months, 12)

		assert.True(t, months[11].EndBalance.Equal(rows[year].TotalAssets),
			"year %d: month 12 end %s, annual %s", year, months[11].EndBalance, rows[year].TotalAssets)

		sum := decimal.Zero
		for _, m := range months {
			sum = sum.Add(m.Interest)
			if cfg.IsRetirement(year) {
				assert.True(t, m.Contribution.IsNegative(), "year %d month %d", year, m.Month)
			} else {
				assert.True(t, m.Contribution.IsPositive(), "year %d month %d", year, m.Month)
			}
		}
		assert.True(t, sum.Sub(rows[year].InterestEarnedYearly).Abs().LessThanOrEqual(seven),
			"year %d: monthly interest %s vs annual %s", year, sum, rows[year].InterestEarnedYearly)
	}
}

func TestEndToEnd_JSONAndYAMLAgree(t *testing.T) {
	fromYAML := calculation.SimulateAnnual(*loadPlan(t, "default_plan.yaml"))
	fromJSON := calculation.SimulateAnnual(*loadPlan(t, "default_plan.json"))
	require.Len(t, fromJSON, len(fromYAML))
	for i := range fromYAML {
		assert.True(t, fromYAML[i].TotalAssets.Equal(fromJSON[i].TotalAssets), "year %d", i)
		assert.True(t, fromYAML[i].PurchasingPower.Equal(fromJSON[i].PurchasingPower), "year %d", i)
	}
}

func TestEndToEnd_Depletion(t *testing.T) {
	cfg := loadPlan(t, "early_depletion.yaml")
	engine := calculation.NewEngine()
	p, err := engine.Project(context.Background(), "depletion", *cfg)
	require.NoError(t, err)

	require.True(t, p.Summary.IsDepleted())
	assert.Greater(t, p.Summary.DepletionYear, cfg.RetirementYear)
	assert.Equal(t, cfg.StartAge+p.Summary.DepletionYear, p.Summary.DepletionAge)
	for _, row := range p.Yearly[p.Summary.DepletionYear:] {
		assert.True(t, row.TotalAssets.IsZero(), "year %d stays empty", row.Year)
	}

	amount, err := calculation.SustainableWithdrawal(*cfg)
	require.NoError(t, err)
	assert.True(t, amount.LessThan(cfg.MonthlyWithdrawal))
}

func TestEndToEnd_CompareRecommendsHighestPurchasingPower(t *testing.T) {
	engine := calculation.NewEngine()
	report, err := engine.Compare(context.Background(), []calculation.NamedConfiguration{
		{Name: "depletion", Configuration: *loadPlan(t, "early_depletion.yaml")},
		{Name: "default", Configuration: *loadPlan(t, "default_plan.yaml")},
	})
	require.NoError(t, err)
	require.Len(t, report.Projections, 2)
	assert.Equal(t, "default", report.Recommended)
}

func TestEndToEnd_InvalidPlanListsEveryViolation(t *testing.T) {
	parser := config.NewInputParser()
	_, err := parser.LoadFromFile("../testdata/invalid_plan.yaml")
	require.Error(t, err)

	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.GreaterOrEqual(t, len(cfgErr.Violations), 5)
	assert.Contains(t, err.Error(), "initial principal cannot be negative")
	assert.Contains(t, err.Error(), "annual rate must be between 0% and 100%")
	assert.Contains(t, err.Error(), "retirement year must be between 1 and years to grow (10)")
}

func TestEndToEnd_MissingFile(t *testing.T) {
	parser := config.NewInputParser()
	_, err := parser.LoadFromFile("../testdata/does_not_exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
