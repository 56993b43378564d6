package main

import (
	"fmt"
	"os"

	calc "github.com/compoundpro/compound-calculator/internal/calculation"
	"github.com/compoundpro/compound-calculator/internal/config"
	"github.com/compoundpro/compound-calculator/internal/output"
	"github.com/shopspring/decimal"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_sustainable <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	w, err := calc.SustainableWithdrawal(*cfg)
	if err != nil {
		panic(err)
	}
	fmt.Printf("sustainable monthly withdrawal: %s (plan: %s)\n", output.FormatCurrency(w), output.FormatCurrency(cfg.MonthlyWithdrawal))

	// Final-year balances just below and at the search boundary.
	for _, delta := range []int64{0, 1, 2} {
		trial := *cfg
		trial.MonthlyWithdrawal = w.Add(decimal.NewFromInt(delta))
		rows := calc.SimulateAnnual(trial)
		last := rows[len(rows)-1]
		fmt.Printf("withdraw %s: final assets %s, depleted=%v\n", output.FormatCurrency(trial.MonthlyWithdrawal), output.FormatCurrency(last.TotalAssets), last.IsDepleted())
	}
}
