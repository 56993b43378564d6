package output

import (
	"bytes"
	"fmt"

	"github.com/compoundpro/compound-calculator/internal/domain"
	"github.com/go-pdf/fpdf"
)

// PDFFormatter renders each projection as a summary block followed by the yearly table.
type PDFFormatter struct {
	Numbers NumberFormat
}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) withNumbers(nf NumberFormat) Formatter { return PDFFormatter{Numbers: nf} }

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Age", 14, "C"},
	{"Year", 14, "C"},
	{"Invested", 30, "R"},
	{"Interest", 28, "R"},
	{"Total Assets", 32, "R"},
	{"Purchasing Power", 32, "R"},
	{"Phase", 30, "C"},
}

type pdfReport struct {
	pdf *fpdf.Fpdf
	nf  NumberFormat
	tr  func(string) string
}

func (p PDFFormatter) Format(report *domain.Report) ([]byte, error) {
	r := &pdfReport{
		pdf: fpdf.New("P", "mm", "A4", ""),
		nf:  p.Numbers.withDefaults(),
	}
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	r.pdf.SetFooterFunc(func() {
		r.pdf.SetY(-15)
		r.pdf.SetFont("Arial", "I", 8)
		r.pdf.SetTextColor(128, 128, 128)
		r.pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", r.pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	for _, proj := range report.Projections {
		r.addProjection(proj, proj.Name == report.Recommended)
	}
	if len(report.Projections) == 0 {
		r.pdf.AddPage()
		r.title("Compound Interest Projection")
	}
	if len(report.Assumptions) > 0 {
		r.addAssumptions(report.Assumptions)
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) title(text string) {
	r.pdf.SetFont("Arial", "B", 18)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 10, r.tr(text), "", 1, "L", false, 0, "")
	r.pdf.Ln(2)
}

func (r *pdfReport) addProjection(p domain.ScenarioProjection, recommended bool) {
	r.pdf.AddPage()
	heading := p.Name
	if recommended {
		heading += " (recommended)"
	}
	r.title(heading)

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(60, 60, 60)
	r.pdf.MultiCell(pdfContentWidth, 5, r.tr(p.Configuration.Describe()), "", "L", false)
	r.pdf.Ln(3)

	s := p.Summary
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	lines := [][2]string{
		{"Final Assets", r.nf.Money(s.FinalAssets)},
		{"Total Invested", r.nf.Money(s.FinalInvested)},
		{"Total Gain", r.nf.SignedMoney(s.TotalGain)},
		{"Purchasing Power", r.nf.Money(s.FinalPurchasingPower)},
		{"Peak Assets", fmt.Sprintf("%s (year %d)", r.nf.Money(s.PeakAssets), s.PeakYear)},
		{"Retirement Age", fmt.Sprintf("%d", s.RetirementAge)},
	}
	if s.IsDepleted() {
		lines = append(lines, [2]string{"Depleted", fmt.Sprintf("year %d (age %d)", s.DepletionYear, s.DepletionAge)})
	}
	for _, l := range lines {
		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.CellFormat(50, 7, r.tr(l[0]), "1", 0, "L", true, 0, "")
		r.pdf.SetFont("Arial", "", 10)
		r.pdf.CellFormat(pdfContentWidth-50, 7, r.tr(l[1]), "1", 1, "R", false, 0, "")
	}
	r.pdf.Ln(5)

	r.tableHeader()
	for _, row := range p.Yearly {
		if row.Year == 0 {
			continue
		}
		if r.pdf.GetY() > 265 {
			r.pdf.AddPage()
			r.tableHeader()
		}
		fill := row.IsRetirement
		if fill {
			r.pdf.SetFillColor(255, 240, 240)
		}
		cells := []string{
			fmt.Sprintf("%d", row.Age),
			fmt.Sprintf("%d", row.Year),
			r.nf.Money(row.TotalInvested),
			r.nf.SignedMoney(row.InterestEarnedYearly),
			r.nf.Money(row.TotalAssets),
			r.nf.Money(row.PurchasingPower),
			phaseLabel(row),
		}
		r.pdf.SetFont("Arial", "", 8)
		r.pdf.SetTextColor(0, 0, 0)
		for i, c := range cells {
			r.pdf.CellFormat(pdfColumns[i].width, 5, r.tr(c), "B", 0, pdfColumns[i].align, fill, 0, "")
		}
		r.pdf.Ln(-1)
	}
}

func (r *pdfReport) tableHeader() {
	r.pdf.SetFont("Arial", "B", 8)
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	for _, c := range pdfColumns {
		r.pdf.CellFormat(c.width, 6, c.title, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) addAssumptions(assumptions []string) {
	r.pdf.Ln(6)
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 7, "Key Assumptions", "", 1, "L", false, 0, "")
	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(60, 60, 60)
	for _, a := range assumptions {
		r.pdf.MultiCell(pdfContentWidth, 5, r.tr("- "+a), "", "L", false)
	}
}
