package output

import (
	"fmt"

	"github.com/compoundpro/compound-calculator/internal/domain"
	money "github.com/compoundpro/compound-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DefaultAssumptions lists the modeling rules shared by every projection.
var DefaultAssumptions = []string{
	"Interest compounds monthly at the annual rate divided by 12",
	"One-time events apply at the start of their year, before that year's interest",
	"Balances never fall below zero; amounts are rounded to whole units for display",
}

// GenerateAssumptions creates the assumptions list from a plan's actual values.
func GenerateAssumptions(cfg domain.Configuration, nf NumberFormat) []string {
	out := []string{
		fmt.Sprintf("Annual return: %s, compounded monthly (%s%% per month)",
			FormatPercentage(cfg.AnnualRate), money.MonthlyRate(cfg.AnnualRate).Mul(hundred).StringFixed(4)),
		fmt.Sprintf("Contributions of %s per month (%s per year) through year %d (age %d)",
			nf.Money(cfg.MonthlyContribution), nf.Money(money.Annual(cfg.MonthlyContribution)), cfg.RetirementYear, cfg.RetirementAge()),
	}
	if cfg.RetirementYear < cfg.YearsToGrow {
		out = append(out, fmt.Sprintf("Withdrawals of %s per month from year %d until year %d",
			nf.Money(cfg.MonthlyWithdrawal), cfg.RetirementYear+1, cfg.YearsToGrow))
	}
	if cfg.InflationRate.IsPositive() {
		out = append(out, fmt.Sprintf("Inflation: %s annually; purchasing power is in today's money",
			FormatPercentage(cfg.InflationRate)))
	} else {
		out = append(out, "No inflation adjustment; purchasing power equals nominal assets")
	}
	if n := len(cfg.OneTimeEvents); n > 0 {
		out = append(out, fmt.Sprintf("%d one-time event(s) applied at the start of their year", n))
	}
	return append(out, DefaultAssumptions[2])
}
