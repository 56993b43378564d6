package main

import (
	"github.com/compoundpro/compound-calculator/internal/calculation"
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "compound",
		Short:         "Compound interest projection calculator",
		Long:          "Project a savings plan through its accumulation and withdrawal phases, drill into single years, and compare saved scenarios.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = calculation.NewStdLogger(cmd.ErrOrStderr(), a.settings.Debug)
			a.engine.SetLogger(a.logger)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.settings.Format, "format", "f", a.settings.Format, "output format (see 'compound formats')")
	flags.StringVarP(&a.outputPath, "output", "o", "", "write the report to this file instead of stdout")
	flags.StringVar(&a.settings.Locale, "locale", a.settings.Locale, "locale used for digit grouping")
	flags.StringVar(&a.settings.Currency, "currency", a.settings.Currency, "currency symbol")
	flags.StringVar(&a.settings.Store, "store", a.settings.Store, "scenario store backend (sqlite|memory)")
	flags.StringVar(&a.settings.DBPath, "db", a.settings.DBPath, "sqlite scenario database path")
	flags.BoolVar(&a.settings.Debug, "debug", a.settings.Debug, "enable debug logging")

	root.AddCommand(
		newProjectCmd(a),
		newMonthlyCmd(a),
		newCompareCmd(a),
		newSustainableCmd(a),
		newValidateCmd(a),
		newExampleCmd(a),
		newFormatsCmd(a),
		newScenarioCmd(a),
	)
	return root
}
