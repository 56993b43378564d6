package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/compoundpro/compound-calculator/internal/domain"
	money "github.com/compoundpro/compound-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a self-contained HTML report with an inline SVG chart per scenario.
type HTMLFormatter struct {
	Numbers NumberFormat
}

func (h HTMLFormatter) Name() string { return "html" }

func (h HTMLFormatter) withNumbers(nf NumberFormat) Formatter { return HTMLFormatter{Numbers: nf} }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct":   FormatPercentage,
	"phase": phaseLabel,
}).Parse(htmlTemplateSource))

const (
	chartWidth   = 800.0
	chartHeight  = 320.0
	chartLeft    = 70.0
	chartRight   = 20.0
	chartTop     = 20.0
	chartBottom  = 40.0
	chartYTicks  = 4
	chartXLabels = 10
)

type chartTick struct {
	Pos   float64
	Label string
}

// svgChart holds precomputed polyline coordinates so the template only places them.
type svgChart struct {
	Width, Height   float64
	Left, Bottom    float64
	Right, Top      float64
	Assets          string
	Invested        string
	PurchasingPower string
	ShowRetirement  bool
	RetirementX     float64
	YTicks          []chartTick
	XTicks          []chartTick
}

func buildChart(p domain.ScenarioProjection) svgChart {
	c := svgChart{
		Width: chartWidth, Height: chartHeight,
		Left: chartLeft, Right: chartWidth - chartRight,
		Top: chartTop, Bottom: chartHeight - chartBottom,
	}
	rows := p.Yearly
	if len(rows) < 2 {
		return c
	}
	maxY := decimal.NewFromInt(1)
	for _, r := range rows {
		maxY = money.Max(maxY, money.Max(r.TotalAssets, r.TotalInvested))
	}
	plotW := c.Right - c.Left
	plotH := c.Bottom - c.Top
	xAt := func(i int) float64 { return c.Left + float64(i)*plotW/float64(len(rows)-1) }
	yAt := func(v decimal.Decimal) float64 {
		return c.Bottom - v.Div(maxY).InexactFloat64()*plotH
	}
	series := func(pick func(domain.YearlyResult) decimal.Decimal) string {
		pts := make([]string, len(rows))
		for i, r := range rows {
			pts[i] = fmt.Sprintf("%.1f,%.1f", xAt(i), yAt(pick(r)))
		}
		return strings.Join(pts, " ")
	}
	c.Assets = series(func(r domain.YearlyResult) decimal.Decimal { return r.TotalAssets })
	c.Invested = series(func(r domain.YearlyResult) decimal.Decimal { return r.TotalInvested })
	c.PurchasingPower = series(func(r domain.YearlyResult) decimal.Decimal { return r.PurchasingPower })

	for k := 0; k <= chartYTicks; k++ {
		v := maxY.Mul(decimal.NewFromInt(int64(k))).Div(decimal.NewFromInt(chartYTicks))
		c.YTicks = append(c.YTicks, chartTick{Pos: yAt(v), Label: FormatCompact(v)})
	}
	step := (len(rows) + chartXLabels - 1) / chartXLabels
	for i := 0; i < len(rows); i += step {
		c.XTicks = append(c.XTicks, chartTick{Pos: xAt(i), Label: fmt.Sprintf("%d", rows[i].Age)})
	}

	cfg := p.Configuration
	if cfg.RetirementYear < cfg.YearsToGrow && cfg.RetirementYear < len(rows) {
		c.ShowRetirement = true
		c.RetirementX = xAt(cfg.RetirementYear)
	}
	return c
}

type htmlRow struct {
	domain.YearlyResult
	Invested, Interest, Assets, PurchasingPower string
}

type htmlProjection struct {
	Name           string
	Description    string
	Summary        domain.ProjectionSummary
	FinalAssets    string
	FinalInvested  string
	TotalGain      string
	FinalPower     string
	PeakAssets     string
	Chart          svgChart
	Rows           []htmlRow
	IsRecommended  bool
	DepletionLabel string
}

type htmlMonth struct {
	domain.MonthlyDetail
	Start, Flow, Interest, End string
}

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	nf := h.Numbers.withDefaults()
	var buf bytes.Buffer

	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}

	projections := make([]htmlProjection, 0, len(report.Projections))
	for _, p := range report.Projections {
		hp := htmlProjection{
			Name:          p.Name,
			Description:   p.Configuration.Describe(),
			Summary:       p.Summary,
			FinalAssets:   nf.Money(p.Summary.FinalAssets),
			FinalInvested: nf.Money(p.Summary.FinalInvested),
			TotalGain:     nf.SignedMoney(p.Summary.TotalGain),
			FinalPower:    nf.Money(p.Summary.FinalPurchasingPower),
			PeakAssets:    nf.Money(p.Summary.PeakAssets),
			Chart:         buildChart(p),
			IsRecommended: report.Recommended != "" && p.Name == report.Recommended,
		}
		if p.Summary.IsDepleted() {
			hp.DepletionLabel = fmt.Sprintf("Depleted in year %d (age %d)", p.Summary.DepletionYear, p.Summary.DepletionAge)
		}
		for _, r := range p.Yearly {
			if r.Year == 0 {
				continue
			}
			hp.Rows = append(hp.Rows, htmlRow{
				YearlyResult:    r,
				Invested:        nf.Money(r.TotalInvested),
				Interest:        nf.SignedMoney(r.InterestEarnedYearly),
				Assets:          nf.Money(r.TotalAssets),
				PurchasingPower: nf.Money(r.PurchasingPower),
			})
		}
		projections = append(projections, hp)
	}

	var monthly []htmlMonth
	if report.Monthly != nil {
		for _, m := range report.Monthly.Months {
			monthly = append(monthly, htmlMonth{
				MonthlyDetail: m,
				Start:         nf.Money(m.StartBalance),
				Flow:          nf.SignedMoney(m.Contribution),
				Interest:      nf.SignedMoney(m.Interest),
				End:           nf.Money(m.EndBalance),
			})
		}
	}

	data := struct {
		Projections    []htmlProjection
		Recommendation Recommendation
		RecDelta       string
		Monthly        *domain.MonthlyBreakdown
		MonthlyRows    []htmlMonth
		Assumptions    []string
	}{
		Projections:    projections,
		Recommendation: AnalyzeScenarios(report),
		Monthly:        report.Monthly,
		MonthlyRows:    monthly,
		Assumptions:    assumptions,
	}
	data.RecDelta = nf.SignedMoney(data.Recommendation.PurchasingPowerDelta)
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
