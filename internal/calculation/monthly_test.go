package calculation

import (
	"errors"
	"testing"

	"github.com/compoundpro/compound-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateMonth_ScenarioAGolden(t *testing.T) {
	cfg := defaultPlan(1)
	cfg.RetirementYear = 30

	months, err := SimulateMonth(cfg, 1)
	require.NoError(t, err)
	require.Len(t, months, 12)

	// start, interest, end; each month compounds off the unrounded end balance
	want := [][3]string{
		{"100000", "500", "110500"},
		{"110500", "553", "121053"},
		{"121053", "605", "131658"},
		{"131658", "658", "142316"},
		{"142316", "712", "153028"},
		{"153028", "765", "163793"},
		{"163793", "819", "174612"},
		{"174612", "873", "185485"},
		{"185485", "927", "196412"},
		{"196412", "982", "207394"},
		{"207394", "1037", "218431"},
		{"218431", "1092", "229523"},
	}
	for i, m := range months {
		assert.Equal(t, i+1, m.Month)
		assert.Equal(t, want[i][0], m.StartBalance.String(), "month %d start", m.Month)
		assert.Equal(t, want[i][1], m.Interest.String(), "month %d interest", m.Month)
		assert.Equal(t, "10000", m.Contribution.String(), "month %d contribution", m.Month)
		assert.Equal(t, want[i][2], m.EndBalance.String(), "month %d end", m.Month)
	}
}

func TestSimulateMonth_FastForwardMatchesAnnual(t *testing.T) {
	cfg := defaultPlan(3)
	cfg.RetirementYear = 2
	cfg.MonthlyWithdrawal = dec(20000)

	months, err := SimulateMonth(cfg, 2)
	require.NoError(t, err)
	assert.Equal(t, "229523", months[0].StartBalance.String())
	assert.Equal(t, "1148", months[0].Interest.String())
	assert.Equal(t, "367036", months[11].EndBalance.String())

	months, err = SimulateMonth(cfg, 3)
	require.NoError(t, err)
	assert.Equal(t, "367036", months[0].StartBalance.String())
	assert.Equal(t, "1835", months[0].Interest.String())
	assert.Equal(t, "348871", months[0].EndBalance.String())
	assert.Equal(t, "142962", months[11].EndBalance.String())
}

func TestSimulateMonth_WithdrawalYearContributionsAreNegative(t *testing.T) {
	cfg := defaultPlan(10)
	cfg.RetirementYear = 4
	cfg.MonthlyWithdrawal = dec(3500)

	months, err := SimulateMonth(cfg, cfg.RetirementYear+1)
	require.NoError(t, err)
	require.Len(t, months, 12)
	for _, m := range months {
		assert.True(t, m.Contribution.Equal(dec(-3500)), "month %d contribution %s", m.Month, m.Contribution)
	}

	months, err = SimulateMonth(cfg, cfg.RetirementYear)
	require.NoError(t, err)
	for _, m := range months {
		assert.True(t, m.Contribution.Equal(dec(10000)), "month %d contribution %s", m.Month, m.Contribution)
	}
}

func TestSimulateMonth_ReconcilesWithAnnualInterest(t *testing.T) {
	cfg := defaultPlan(30)
	cfg.RetirementYear = 20
	cfg.MonthlyWithdrawal = dec(45000)
	cfg.AnnualRate = decimal.RequireFromString("7.3")
	cfg.OneTimeEvents = []domain.Event{
		{ID: "house", Year: 8, Amount: dec(600000), Type: domain.EventWithdrawal},
		{ID: "inherit", Year: 12, Amount: dec(250000), Type: domain.EventDeposit},
	}
	rows := SimulateAnnual(cfg)

	for year := 1; year <= cfg.YearsToGrow; year++ {
		months, err := SimulateMonth(cfg, year)
		require.NoError(t, err)
		sum := decimal.Zero
		for _, m := range months {
			sum = sum.Add(m.Interest)
			assert.False(t, m.EndBalance.IsNegative(), "year %d month %d", year, m.Month)
		}
		// each month rounds independently, so allow half a unit per month
		diff := sum.Sub(rows[year].InterestEarnedYearly).Abs()
		assert.True(t, diff.LessThanOrEqual(dec(7)), "year %d: monthly %s annual %s", year, sum, rows[year].InterestEarnedYearly)
		assert.True(t, months[11].EndBalance.Equal(rows[year].TotalAssets), "year %d end balance", year)
	}
}

func TestSimulateMonth_TargetYearOutOfRange(t *testing.T) {
	cfg := defaultPlan(5)
	for _, year := range []int{-1, 0, 6, 100} {
		months, err := SimulateMonth(cfg, year)
		assert.Nil(t, months)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTargetYearOutOfRange), "year %d: %v", year, err)
	}
}

func TestSimulateMonth_ClampsAtZero(t *testing.T) {
	cfg := domain.Configuration{
		InitialPrincipal:  dec(10000),
		YearsToGrow:       2,
		RetirementYear:    1,
		MonthlyWithdrawal: dec(3000),
	}
	months, err := SimulateMonth(cfg, 2)
	require.NoError(t, err)
	ends := []string{"7000", "4000", "1000", "0", "0"}
	for i, want := range ends {
		assert.Equal(t, want, months[i].EndBalance.String(), "month %d", i+1)
	}
	assert.True(t, months[11].EndBalance.IsZero())
}

func TestWalkMonths_MatchesSimulateMonth(t *testing.T) {
	cfg := defaultPlan(6)
	cfg.RetirementYear = 3
	cfg.MonthlyWithdrawal = dec(15000)
	cfg.OneTimeEvents = []domain.Event{
		{ID: "bonus", Year: 2, Amount: dec(40000), Type: domain.EventDeposit},
		{ID: "car", Year: 5, Amount: dec(60000), Type: domain.EventWithdrawal},
	}

	walked := map[int][]domain.MonthlyDetail{}
	var order []int
	WalkMonths(cfg, func(year int, d domain.MonthlyDetail) {
		walked[year] = append(walked[year], d)
		order = append(order, year)
	})
	require.Len(t, order, 6*12)
	assert.Equal(t, 1, order[0])
	assert.Equal(t, 6, order[len(order)-1])

	for year := 1; year <= cfg.YearsToGrow; year++ {
		want, err := SimulateMonth(cfg, year)
		require.NoError(t, err)
		got := walked[year]
		require.Len(t, got, len(want), "year %d", year)
		for i := range want {
			assert.Equal(t, want[i].Month, got[i].Month)
			assert.Equal(t, want[i].StartBalance.String(), got[i].StartBalance.String(), "year %d month %d", year, want[i].Month)
			assert.Equal(t, want[i].Interest.String(), got[i].Interest.String(), "year %d month %d", year, want[i].Month)
			assert.Equal(t, want[i].Contribution.String(), got[i].Contribution.String(), "year %d month %d", year, want[i].Month)
			assert.Equal(t, want[i].EndBalance.String(), got[i].EndBalance.String(), "year %d month %d", year, want[i].Month)
		}
	}
}

func TestWalkMonths_EndBalanceMatchesAnnual(t *testing.T) {
	cfg := defaultPlan(4)
	cfg.RetirementYear = 2
	cfg.MonthlyWithdrawal = dec(20000)

	ends := map[int]decimal.Decimal{}
	WalkMonths(cfg, func(year int, d domain.MonthlyDetail) {
		if d.Month == 12 {
			ends[year] = d.EndBalance
		}
	})
	for _, row := range SimulateAnnual(cfg)[1:] {
		assert.True(t, row.TotalAssets.Equal(ends[row.Year]), "year %d: %s vs %s", row.Year, row.TotalAssets, ends[row.Year])
	}
}
