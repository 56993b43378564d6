package calculation

import (
	"github.com/compoundpro/compound-calculator/internal/domain"
	money "github.com/compoundpro/compound-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// workingPlaces bounds the scale of running balances. Rounding at this scale
// keeps operands small over long horizons without affecting whole-unit output.
const workingPlaces = 12

const monthsPerYear = 12

// monthStep records one monthly update of the balance.
type monthStep struct {
	Month    int
	Start    decimal.Decimal
	Interest decimal.Decimal
	CashFlow decimal.Decimal // signed: contribution or negative withdrawal
	End      decimal.Decimal
}

// applyMonth posts one month of interest followed by the phase cash flow.
// The end balance never goes below zero.
func applyMonth(balance, rate decimal.Decimal, retired bool, contribution, withdrawal decimal.Decimal) monthStep {
	interest := balance.Mul(rate).Round(workingPlaces)
	cashFlow := contribution
	if retired {
		cashFlow = withdrawal.Neg()
	}
	return monthStep{
		Start:    balance,
		Interest: interest,
		CashFlow: cashFlow,
		End:      money.FloorZero(balance.Add(interest).Add(cashFlow)),
	}
}

// applyYearEvents applies one year's events in order. Deposits count as
// invested principal; withdrawals only reduce the balance, which is floored
// at zero once all events are applied.
func applyYearEvents(balance, invested decimal.Decimal, events []domain.Event) (decimal.Decimal, decimal.Decimal) {
	for _, e := range events {
		switch e.Type {
		case domain.EventDeposit:
			balance = balance.Add(e.Amount)
			invested = invested.Add(e.Amount)
		case domain.EventWithdrawal:
			balance = balance.Sub(e.Amount)
		}
	}
	return money.FloorZero(balance), invested
}

// yearState is the running state carried between simulated years.
type yearState struct {
	Balance  decimal.Decimal
	Invested decimal.Decimal
}

func initialState(cfg *domain.Configuration) yearState {
	return yearState{Balance: cfg.InitialPrincipal, Invested: cfg.InitialPrincipal}
}

// runYear applies the year's events and its twelve monthly steps, returning the
// new state and the interest posted during the year. visit, when non-nil,
// observes every monthly step.
func runYear(cfg *domain.Configuration, rate decimal.Decimal, state yearState, year int, visit func(monthStep)) (yearState, decimal.Decimal) {
	state.Balance, state.Invested = applyYearEvents(state.Balance, state.Invested, cfg.EventsInYear(year))
	retired := cfg.IsRetirement(year)

	yearlyInterest := decimal.Zero
	for month := 1; month <= monthsPerYear; month++ {
		step := applyMonth(state.Balance, rate, retired, cfg.MonthlyContribution, cfg.MonthlyWithdrawal)
		step.Month = month
		state.Balance = step.End
		yearlyInterest = yearlyInterest.Add(step.Interest)
		if !retired {
			state.Invested = state.Invested.Add(cfg.MonthlyContribution)
		}
		if visit != nil {
			visit(step)
		}
	}
	return state, yearlyInterest
}
