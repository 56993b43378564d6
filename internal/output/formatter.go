package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/compoundpro/compound-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned when a format name resolves to no formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// localizable formatters accept a NumberFormat for amounts.
type localizable interface {
	withNumbers(nf NumberFormat) Formatter
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	ConsoleMonthlyFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	HTMLFormatter{},
	JSONFormatter{},
	PDFFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// NewFormatter resolves name (or an alias) and applies nf to formatters that render amounts.
func NewFormatter(name string, nf NumberFormat) (Formatter, error) {
	f := GetFormatterByName(name)
	if f == nil {
		return nil, unsupported(name)
	}
	if l, ok := f.(localizable); ok {
		return l.withNumbers(nf), nil
	}
	return f, nil
}

func unsupported(name string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table":        "console",
	"text":         "console",
	"monthly":      "console-monthly",
	"csv-detailed": "detailed-csv",
	"csv-monthly":  "detailed-csv",
	"csv-summary":  "csv",
	"html-report":  "html",
	"json-pretty":  "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extension returns the file extension used when a formatter's output is saved.
func Extension(f Formatter) string {
	switch f.Name() {
	case "console", "console-monthly":
		return "txt"
	case "detailed-csv":
		return "csv"
	default:
		return f.Name()
	}
}

// IsBinary reports whether the formatter output should not be written to a terminal.
func IsBinary(f Formatter) bool {
	return f.Name() == "pdf"
}

// Render runs a formatter and writes its output to w.
func Render(w io.Writer, f Formatter, report *domain.Report) error {
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s output: %w", f.Name(), err)
	}
	return nil
}

// WriteFile runs a formatter and writes its output to path.
func WriteFile(f Formatter, report *domain.Report, path string) error {
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	return os.WriteFile(path, data, 0644)
}

// nowFunc is overridden in tests to pin report file names.
var nowFunc = time.Now

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, report *domain.Report, dir string) (string, error) {
	filename := fmt.Sprintf("compound_report_%s.%s", nowFunc().Format("20060102_150405"), Extension(f))
	if dir != "" {
		filename = dir + string(os.PathSeparator) + filename
	}
	if err := WriteFile(f, report, filename); err != nil {
		return "", err
	}
	return filename, nil
}
