package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestYearlyResultGainAndDepletion(t *testing.T) {
	yr := YearlyResult{TotalAssets: decimal.NewFromInt(150), TotalInvested: decimal.NewFromInt(100)}
	assert.True(t, yr.Gain().Equal(decimal.NewFromInt(50)))
	assert.False(t, yr.IsDepleted())

	empty := YearlyResult{TotalInvested: decimal.NewFromInt(100)}
	assert.True(t, empty.IsDepleted())
	assert.True(t, empty.Gain().Equal(decimal.NewFromInt(-100)))
}

func TestMonthlyBreakdownTotalInterest(t *testing.T) {
	mb := MonthlyBreakdown{Months: []MonthlyDetail{
		{Month: 1, Interest: decimal.NewFromInt(500)},
		{Month: 2, Interest: decimal.NewFromInt(553)},
	}}
	assert.True(t, mb.TotalInterest().Equal(decimal.NewFromInt(1053)))
}

func TestReportPrimary(t *testing.T) {
	var r Report
	assert.Nil(t, r.Primary())
	r.Projections = []ScenarioProjection{{Name: "first"}, {Name: "second"}}
	assert.Equal(t, "first", r.Primary().Name)
	assert.False(t, (&ProjectionSummary{}).IsDepleted())
	assert.True(t, (&ProjectionSummary{DepletionYear: 4}).IsDepleted())
}
