package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/compoundpro/compound-calculator/internal/calculation"
	"github.com/compoundpro/compound-calculator/internal/config"
)

// Prints the annual rows and one year's monthly detail of a plan, in the
// shape the regression tests pin.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_monthly <config-file> [year]")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	year := 1
	if len(os.Args) > 2 {
		if year, err = strconv.Atoi(os.Args[2]); err != nil {
			panic(err)
		}
	}

	fmt.Println("year,age,assets,invested,interest,purchasing_power,retired")
	for _, r := range calculation.SimulateAnnual(*cfg) {
		fmt.Printf("%d,%d,%s,%s,%s,%s,%v\n", r.Year, r.Age, r.TotalAssets, r.TotalInvested,
			r.InterestEarnedYearly, r.PurchasingPower, r.IsRetirement)
	}

	months, err := calculation.SimulateMonth(*cfg, year)
	if err != nil {
		panic(err)
	}
	fmt.Printf("\nyear %d\nmonth,start,flow,interest,end\n", year)
	for _, m := range months {
		fmt.Printf("%d,%s,%s,%s,%s\n", m.Month, m.StartBalance, m.Contribution, m.Interest, m.EndBalance)
	}
}
