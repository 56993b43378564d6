package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/compoundpro/compound-calculator/internal/calculation"
	"github.com/compoundpro/compound-calculator/internal/domain"
)

// CSVDetailedExporter writes one row per scenario month across the whole horizon.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Age", "Month", "StartBalance", "Contribution", "Interest", "EndBalance", "IsRetirement"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range report.Projections {
		cfg := p.Configuration
		var werr error
		calculation.WalkMonths(cfg, func(year int, m domain.MonthlyDetail) {
			if werr != nil {
				return
			}
			werr = w.Write([]string{
				p.Name,
				strconv.Itoa(year),
				strconv.Itoa(cfg.AgeAt(year)),
				strconv.Itoa(m.Month),
				m.StartBalance.StringFixed(0),
				m.Contribution.String(),
				m.Interest.StringFixed(0),
				m.EndBalance.StringFixed(0),
				strconv.FormatBool(cfg.IsRetirement(year)),
			})
		})
		if werr != nil {
			return nil, fmt.Errorf("scenario %q: %w", p.Name, werr)
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
