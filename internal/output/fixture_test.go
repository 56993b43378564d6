package output

import (
	"context"
	"testing"

	"github.com/compoundpro/compound-calculator/internal/calculation"
	"github.com/compoundpro/compound-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// baselinePlan retires after year 2 and withdraws 20000 a month in year 3.
func baselinePlan() domain.Configuration {
	return domain.Configuration{
		InitialPrincipal:    decimal.NewFromInt(100000),
		MonthlyContribution: decimal.NewFromInt(10000),
		AnnualRate:          decimal.NewFromInt(6),
		YearsToGrow:         3,
		StartAge:            25,
		RetirementYear:      2,
		MonthlyWithdrawal:   decimal.NewFromInt(20000),
		InflationRate:       decimal.NewFromInt(2),
	}
}

// cashPlan holds a flat 500000 for three years.
func cashPlan() domain.Configuration {
	return domain.Configuration{
		InitialPrincipal:    decimal.NewFromInt(500000),
		MonthlyContribution: decimal.Zero,
		AnnualRate:          decimal.Zero,
		YearsToGrow:         3,
		StartAge:            25,
		RetirementYear:      3,
		MonthlyWithdrawal:   decimal.Zero,
	}
}

func buildTestReport(t *testing.T) *domain.Report {
	t.Helper()
	eng := calculation.NewEngine()
	report, err := eng.Compare(context.Background(), []calculation.NamedConfiguration{
		{Name: "baseline", Configuration: baselinePlan()},
		{Name: "cash", Configuration: cashPlan()},
	})
	require.NoError(t, err)
	report.Assumptions = GenerateAssumptions(baselinePlan(), DefaultNumberFormat)
	return report
}

func buildMonthlyReport(t *testing.T) *domain.Report {
	t.Helper()
	eng := calculation.NewEngine()
	ctx := context.Background()
	p, err := eng.Project(ctx, "baseline", baselinePlan())
	require.NoError(t, err)
	m, err := eng.MonthlyDetail(ctx, "baseline", baselinePlan(), 1)
	require.NoError(t, err)
	return &domain.Report{Projections: []domain.ScenarioProjection{*p}, Monthly: m}
}
