package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/compoundpro/compound-calculator/internal/domain"
)

// CSVSummarizer writes one row per scenario year.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Age", "TotalInvested", "InterestEarnedYearly", "TotalAssets", "PurchasingPower", "IsRetirement"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range report.Projections {
		for _, yr := range p.Yearly {
			row := []string{
				p.Name,
				strconv.Itoa(yr.Year),
				strconv.Itoa(yr.Age),
				yr.TotalInvested.StringFixed(0),
				yr.InterestEarnedYearly.StringFixed(0),
				yr.TotalAssets.StringFixed(0),
				yr.PurchasingPower.StringFixed(0),
				strconv.FormatBool(yr.IsRetirement),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
