package main

import (
	"fmt"

	"github.com/compoundpro/compound-calculator/internal/calculation"
	"github.com/compoundpro/compound-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newProjectCmd(a *app) *cobra.Command {
	var planPath string
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a plan year by year",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadPlan(planPath)
			if err != nil {
				return err
			}
			report, err := a.projectionReport(cmd, scenarioName(planPath), *cfg)
			if err != nil {
				return err
			}
			return a.emit(cmd, report, a.settings.Format)
		},
	}
	cmd.Flags().StringVarP(&planPath, "config", "c", "", "plan file (YAML or JSON)")
	return cmd
}

func newMonthlyCmd(a *app) *cobra.Command {
	var (
		planPath string
		year     int
	)
	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show the month-by-month detail of one plan year",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadPlan(planPath)
			if err != nil {
				return err
			}
			name := scenarioName(planPath)
			report, err := a.projectionReport(cmd, name, *cfg)
			if err != nil {
				return err
			}
			report.Monthly, err = a.engine.MonthlyDetail(cmd.Context(), name, *cfg, year)
			if err != nil {
				return err
			}
			format := a.settings.Format
			if output.NormalizeFormatName(format) == "console" {
				format = "console-monthly"
			}
			return a.emit(cmd, report, format)
		},
	}
	cmd.Flags().StringVarP(&planPath, "config", "c", "", "plan file (YAML or JSON)")
	cmd.Flags().IntVarP(&year, "year", "y", 1, "plan year to drill into (1..years to grow)")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare PLAN [PLAN...]",
		Short: "Project several plans and recommend the one with the highest final purchasing power",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			named := make([]calculation.NamedConfiguration, 0, len(args))
			for _, path := range args {
				cfg, err := a.loadPlan(path)
				if err != nil {
					return err
				}
				named = append(named, calculation.NamedConfiguration{Name: scenarioName(path), Configuration: *cfg})
			}
			report, err := a.engine.Compare(cmd.Context(), named)
			if err != nil {
				return err
			}
			report.Assumptions = output.GenerateAssumptions(named[0].Configuration, a.numberFormat())
			return a.emit(cmd, report, a.settings.Format)
		},
	}
}

func newSustainableCmd(a *app) *cobra.Command {
	var planPath string
	cmd := &cobra.Command{
		Use:   "sustainable",
		Short: "Find the largest monthly withdrawal that lasts through the final year",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadPlan(planPath)
			if err != nil {
				return err
			}
			amount, err := calculation.SustainableWithdrawal(*cfg)
			if err != nil {
				return err
			}
			nf := a.numberFormat()
			fmt.Fprintf(cmd.OutOrStdout(), "Sustainable monthly withdrawal: %s (current plan: %s)\n",
				nf.Money(amount), nf.Money(cfg.MonthlyWithdrawal))
			return nil
		},
	}
	cmd.Flags().StringVarP(&planPath, "config", "c", "", "plan file (YAML or JSON)")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate PLAN",
		Short: "Validate a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadPlan(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %s\n", cfg.Describe())
			return nil
		},
	}
}

func newExampleCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "example [FILE]",
		Short: "Write an example plan file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "example_plan.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if fileExists(path) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := output.SaveConfiguration(a.parser.CreateExampleConfiguration(), path); err != nil {
				return fmt.Errorf("write example plan: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example plan written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newFormatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			fmt.Fprintln(out, "  all (console, detailed-csv and html files)")
			fmt.Fprintln(out, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(out, "  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
			return nil
		},
	}
}
