package calculation

import (
	"errors"
	"fmt"

	"github.com/compoundpro/compound-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrNoWithdrawalPhase is returned when the plan never reaches the withdrawal phase.
var ErrNoWithdrawalPhase = errors.New("plan has no withdrawal phase")

// SustainableWithdrawal finds, to within one currency unit, the largest monthly
// withdrawal that keeps the balance above zero through the final year.
func SustainableWithdrawal(cfg domain.Configuration) (decimal.Decimal, error) {
	if cfg.YearsToGrow < 1 {
		return decimal.Zero, ErrInvalidHorizon
	}
	if cfg.RetirementYear >= cfg.YearsToGrow {
		return decimal.Zero, fmt.Errorf("%w: retirement year %d, horizon %d", ErrNoWithdrawalPhase, cfg.RetirementYear, cfg.YearsToGrow)
	}

	// Start from the retirement balance plus later deposits, then widen until
	// the withdrawal fails: interest can carry the real answer past the seed.
	atRetirement := SimulateAnnual(withWithdrawal(cfg, decimal.Zero))[cfg.RetirementYear].TotalAssets
	low := decimal.Zero
	high := atRetirement.Add(depositsAfter(cfg, cfg.RetirementYear)).Floor().Add(decimal.NewFromInt(1))
	tolerance := decimal.NewFromInt(1)
	maxIterations := 64

	lasts := func(monthly decimal.Decimal) bool {
		rows := SimulateAnnual(withWithdrawal(cfg, monthly))
		return rows[len(rows)-1].TotalAssets.IsPositive()
	}
	if !lasts(low) {
		return decimal.Zero, nil
	}
	for i := 0; i < maxIterations && lasts(high); i++ {
		low = high
		high = high.Mul(decimal.NewFromInt(2))
	}

	for i := 0; i < maxIterations && high.Sub(low).GreaterThan(tolerance); i++ {
		mid := low.Add(high).Div(decimal.NewFromInt(2)).Floor()
		if mid.Equal(low) {
			break
		}
		if lasts(mid) {
			low = mid
		} else {
			high = mid
		}
	}
	return low, nil
}

func withWithdrawal(cfg domain.Configuration, monthly decimal.Decimal) domain.Configuration {
	cfg.MonthlyWithdrawal = monthly
	return cfg
}

// depositsAfter sums the deposit events scheduled after year.
func depositsAfter(cfg domain.Configuration, year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range cfg.OneTimeEvents {
		if e.Year > year && e.Type == domain.EventDeposit {
			total = total.Add(e.Amount)
		}
	}
	return total
}
