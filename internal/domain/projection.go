package domain

import (
	"github.com/shopspring/decimal"
)

// YearlyResult is the end-of-year snapshot of the account. Amounts are rounded to whole units.
type YearlyResult struct {
	Year                 int             `json:"year"`
	Age                  int             `json:"age"`
	TotalAssets          decimal.Decimal `json:"total_assets"`
	TotalInvested        decimal.Decimal `json:"total_invested"`
	InterestEarnedYearly decimal.Decimal `json:"interest_earned_yearly"`
	PurchasingPower      decimal.Decimal `json:"purchasing_power"`
	IsRetirement         bool            `json:"is_retirement"`
}

// Gain returns assets above contributed principal
func (yr *YearlyResult) Gain() decimal.Decimal {
	return yr.TotalAssets.Sub(yr.TotalInvested)
}

// IsDepleted returns true if the account balance is zero or negative
func (yr *YearlyResult) IsDepleted() bool {
	return yr.TotalAssets.LessThanOrEqual(decimal.Zero)
}

// MonthlyDetail is one month of the drill-down for a single year.
// Contribution is negative during the withdrawal phase.
type MonthlyDetail struct {
	Month        int             `json:"month"`
	StartBalance decimal.Decimal `json:"start_balance"`
	Interest     decimal.Decimal `json:"interest"`
	Contribution decimal.Decimal `json:"contribution"`
	EndBalance   decimal.Decimal `json:"end_balance"`
}

// ProjectionSummary provides the headline figures of a projection
type ProjectionSummary struct {
	FinalAssets          decimal.Decimal `json:"final_assets"`
	FinalInvested        decimal.Decimal `json:"final_invested"`
	TotalGain            decimal.Decimal `json:"total_gain"`
	TotalInterest        decimal.Decimal `json:"total_interest"`
	FinalPurchasingPower decimal.Decimal `json:"final_purchasing_power"`
	PeakAssets           decimal.Decimal `json:"peak_assets"`
	PeakYear             int             `json:"peak_year"`
	RetirementAge        int             `json:"retirement_age"`
	DepletionYear        int             `json:"depletion_year,omitempty"` // 0 when the balance lasts the full horizon
	DepletionAge         int             `json:"depletion_age,omitempty"`
}

// IsDepleted reports whether the balance ran out during the horizon
func (ps *ProjectionSummary) IsDepleted() bool {
	return ps.DepletionYear > 0
}

// ScenarioProjection is a named configuration together with its computed trajectory
type ScenarioProjection struct {
	Name          string            `json:"name"`
	Configuration Configuration     `json:"configuration"`
	Yearly        []YearlyResult    `json:"yearly"`
	Summary       ProjectionSummary `json:"summary"`
}

// MonthlyBreakdown is the month-by-month drill-down for one scenario year
type MonthlyBreakdown struct {
	Scenario string          `json:"scenario"`
	Year     int             `json:"year"`
	Age      int             `json:"age"`
	Months   []MonthlyDetail `json:"months"`
}

// TotalInterest sums the monthly interest postings
func (mb *MonthlyBreakdown) TotalInterest() decimal.Decimal {
	total := decimal.Zero
	for _, m := range mb.Months {
		total = total.Add(m.Interest)
	}
	return total
}

// Report is the input to every output formatter
type Report struct {
	Projections []ScenarioProjection `json:"projections"`
	Monthly     *MonthlyBreakdown    `json:"monthly,omitempty"`

	// Recommended is set for comparisons: the scenario with the highest final purchasing power.
	Recommended string   `json:"recommended,omitempty"`
	Assumptions []string `json:"assumptions,omitempty"`
}

// Primary returns the first projection, or nil for an empty report
func (r *Report) Primary() *ScenarioProjection {
	if len(r.Projections) == 0 {
		return nil
	}
	return &r.Projections[0]
}
