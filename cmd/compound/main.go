// Command compound projects compound-interest savings plans: yearly growth,
// monthly drill-downs, scenario comparison and a saved-scenario library.
package main

import (
	"fmt"
	"os"

	"github.com/compoundpro/compound-calculator/internal/config"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := newRootCmd(newApp(settings)).Execute(); err != nil {
		os.Exit(1)
	}
}
