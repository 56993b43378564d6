package output

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/compoundpro/compound-calculator/internal/domain"
)

// ErrNoMonthlyBreakdown is returned when a monthly formatter receives a report without a drill-down.
var ErrNoMonthlyBreakdown = errors.New("report has no monthly breakdown")

// ConsoleMonthlyFormatter renders the month-by-month drill-down of a single year.
type ConsoleMonthlyFormatter struct {
	Numbers NumberFormat
}

func (c ConsoleMonthlyFormatter) Name() string { return "console-monthly" }

func (c ConsoleMonthlyFormatter) withNumbers(nf NumberFormat) Formatter {
	return ConsoleMonthlyFormatter{Numbers: nf}
}

func (c ConsoleMonthlyFormatter) Format(report *domain.Report) ([]byte, error) {
	m := report.Monthly
	if m == nil {
		return nil, ErrNoMonthlyBreakdown
	}
	nf := c.Numbers.withDefaults()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s: year %d (age %d)\n", m.Scenario, m.Year, m.Age)
	fmt.Fprintln(&buf, "============================================")
	fmt.Fprintf(&buf, "%-5s %16s %14s %12s %16s\n", "Month", "Start", "Flow", "Interest", "End")
	for _, row := range m.Months {
		fmt.Fprintf(&buf, "%-5d %16s %14s %12s %16s\n",
			row.Month,
			nf.Money(row.StartBalance),
			nf.SignedMoney(row.Contribution),
			nf.SignedMoney(row.Interest),
			nf.Money(row.EndBalance))
	}
	fmt.Fprintf(&buf, "Interest this year: %s\n", nf.Money(m.TotalInterest()))
	return buf.Bytes(), nil
}
