package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/compoundpro/compound-calculator/internal/domain"
)

// ConsoleFormatter renders summary cards and the age-indexed yearly table.
type ConsoleFormatter struct {
	Numbers NumberFormat
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) withNumbers(nf NumberFormat) Formatter { return ConsoleFormatter{Numbers: nf} }

// phaseLabel names the phase a row belongs to.
func phaseLabel(row domain.YearlyResult) string {
	if row.IsRetirement {
		return "withdrawal"
	}
	return "accumulation"
}

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	nf := c.Numbers.withDefaults()
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "COMPOUND INTEREST PROJECTION")
	fmt.Fprintln(&buf, "============================")

	for i, p := range report.Projections {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		writeProjection(&buf, nf, p)
	}

	if rec := AnalyzeScenarios(report); rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (purchasing power %s, %s / %s vs %s)\n",
			rec.ScenarioName, nf.Money(rec.FinalPurchasingPower),
			nf.SignedMoney(rec.PurchasingPowerDelta), FormatPercentage(rec.PercentageChange), rec.BaselineName)
	}

	if len(report.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
	}
	return buf.Bytes(), nil
}

func writeProjection(buf *bytes.Buffer, nf NumberFormat, p domain.ScenarioProjection) {
	s := p.Summary
	fmt.Fprintf(buf, "%s\n", p.Name)
	fmt.Fprintln(buf, strings.Repeat("-", len(p.Name)))
	fmt.Fprintf(buf, "Final Assets:          %s\n", nf.Money(s.FinalAssets))
	fmt.Fprintf(buf, "Total Invested:        %s\n", nf.Money(s.FinalInvested))
	fmt.Fprintf(buf, "Total Gain:            %s\n", nf.SignedMoney(s.TotalGain))
	fmt.Fprintf(buf, "Purchasing Power:      %s\n", nf.Money(s.FinalPurchasingPower))
	fmt.Fprintf(buf, "Peak Assets:           %s (year %d)\n", nf.Money(s.PeakAssets), s.PeakYear)
	fmt.Fprintf(buf, "Retirement Age:        %d\n", s.RetirementAge)
	if s.IsDepleted() {
		fmt.Fprintf(buf, "Depleted:              year %d (age %d)\n", s.DepletionYear, s.DepletionAge)
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "%-5s %-5s %16s %14s %16s %16s  %s\n",
		"Age", "Year", "Invested", "Interest", "Total Assets", "Purchasing", "Phase")
	for _, row := range p.Yearly {
		if row.Year == 0 {
			continue
		}
		fmt.Fprintf(buf, "%-5d %-5d %16s %14s %16s %16s  %s\n",
			row.Age, row.Year,
			nf.Money(row.TotalInvested),
			nf.SignedMoney(row.InterestEarnedYearly),
			nf.Money(row.TotalAssets),
			nf.Money(row.PurchasingPower),
			phaseLabel(row))
	}
}
