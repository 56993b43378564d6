package output

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NumberFormat controls how amounts are rendered: digit grouping follows the
// locale, the currency symbol is prefixed verbatim. Amounts carry no fraction digits.
type NumberFormat struct {
	Locale   string
	Currency string
}

// DefaultNumberFormat is used when a formatter has no explicit NumberFormat.
var DefaultNumberFormat = NumberFormat{Locale: "en-US", Currency: "$"}

var (
	maxInt64 = decimal.NewFromInt(1<<63 - 1)
	minInt64 = decimal.NewFromInt(-1 << 63)
)

func (nf NumberFormat) withDefaults() NumberFormat {
	if strings.TrimSpace(nf.Locale) == "" {
		nf.Locale = DefaultNumberFormat.Locale
	}
	if nf.Currency == "" {
		nf.Currency = DefaultNumberFormat.Currency
	}
	return nf
}

func (nf NumberFormat) printer() *message.Printer {
	tag, err := language.Parse(nf.withDefaults().Locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return message.NewPrinter(tag)
}

// Integer renders amount rounded to whole units with locale digit grouping.
func (nf NumberFormat) Integer(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	if rounded.GreaterThan(maxInt64) || rounded.LessThan(minInt64) {
		return rounded.StringFixed(0)
	}
	return nf.printer().Sprintf("%d", rounded.IntPart())
}

// Money renders amount as currency, e.g. "$1,234,567" or "-$50".
func (nf NumberFormat) Money(amount decimal.Decimal) string {
	nf = nf.withDefaults()
	if amount.Round(0).IsNegative() {
		return "-" + nf.Currency + nf.Integer(amount.Neg())
	}
	return nf.Currency + nf.Integer(amount)
}

// SignedMoney is Money with an explicit "+" on positive amounts.
func (nf NumberFormat) SignedMoney(amount decimal.Decimal) string {
	if amount.Round(0).IsPositive() {
		return "+" + nf.Money(amount)
	}
	return nf.Money(amount)
}

// FormatCurrency formats a decimal as whole-unit currency using DefaultNumberFormat.
func FormatCurrency(amount decimal.Decimal) string { return DefaultNumberFormat.Money(amount) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

var compactUnits = []struct {
	suffix string
	size   decimal.Decimal
}{
	{"T", decimal.New(1, 12)},
	{"B", decimal.New(1, 9)},
	{"M", decimal.New(1, 6)},
	{"K", decimal.New(1, 3)},
}

// FormatCompact renders a short axis label with at most one fraction digit: 1.5K, 2M, 950.
func FormatCompact(amount decimal.Decimal) string {
	abs := amount.Abs()
	for _, u := range compactUnits {
		if abs.GreaterThanOrEqual(u.size) {
			return amount.Div(u.size).Round(1).String() + u.suffix
		}
	}
	return amount.Round(1).String()
}
