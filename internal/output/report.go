package output

import (
	"fmt"
	"os"

	"github.com/compoundpro/compound-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes the report in the named format to a timestamped file in dir
// and returns the written paths. "all" writes the console, detailed-csv and html reports.
func GenerateReport(report *domain.Report, format string, nf NumberFormat, dir string) ([]string, error) {
	names := []string{format}
	if NormalizeFormatName(format) == "all" {
		names = []string{"console", "detailed-csv", "html"}
	}
	var written []string
	for _, name := range names {
		f, err := NewFormatter(name, nf)
		if err != nil {
			return written, err
		}
		path, err := WriteFormatted(f, report, dir)
		if err != nil {
			return written, fmt.Errorf("write %s report: %w", f.Name(), err)
		}
		written = append(written, path)
	}
	return written, nil
}

// SaveConfiguration writes a plan to filename as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
