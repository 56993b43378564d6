package decimal

import (
	"github.com/shopspring/decimal"
)

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// MonthlyRate converts a nominal annual percentage into a monthly fraction
// by simple division (6 -> 0.005). It is not the compounding-equivalent
// rate (1+r)^(1/12)-1.
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(hundred).Div(monthsInYear)
}

// Fraction converts a percentage into a fraction (2.5 -> 0.025).
func Fraction(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// WholeUnits rounds an amount to the nearest whole currency unit, half away from zero.
func WholeUnits(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(0)
}

// FloorZero clamps negative amounts to zero.
func FloorZero(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// DiscountFactor returns (1 + percent/100)^years.
func DiscountFactor(percent decimal.Decimal, years int) decimal.Decimal {
	return decimal.NewFromInt(1).Add(Fraction(percent)).Pow(decimal.NewFromInt(int64(years)))
}

// PresentValue discounts a future amount back by years of inflation at percent.
// A zero or empty rate returns the amount unchanged.
func PresentValue(amount, percent decimal.Decimal, years int) decimal.Decimal {
	if percent.IsZero() || years == 0 {
		return amount
	}
	return amount.Div(DiscountFactor(percent, years))
}

// Annual converts a monthly amount to annual
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(monthsInYear)
}

// Max returns the larger of two amounts
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
