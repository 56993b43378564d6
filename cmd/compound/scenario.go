package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/compoundpro/compound-calculator/internal/calculation"
	"github.com/compoundpro/compound-calculator/internal/output"
	"github.com/compoundpro/compound-calculator/internal/store"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newScenarioCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scenario",
		Aliases: []string{"scenarios"},
		Short:   "Manage saved scenarios",
	}
	cmd.AddCommand(
		newScenarioSaveCmd(a),
		newScenarioListCmd(a),
		newScenarioShowCmd(a),
		newScenarioDeleteCmd(a),
		newScenarioRunCmd(a),
	)
	return cmd
}

func newScenarioSaveCmd(a *app) *cobra.Command {
	var planPath string
	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save a plan under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadPlan(planPath)
			if err != nil {
				return err
			}
			return a.withStore(func(repo store.Repository) error {
				sc, err := repo.Add(cmd.Context(), args[0], *cfg)
				if err != nil {
					return err
				}
				a.logger.Infof("saved scenario %q as %s", sc.Name, sc.ID)
				fmt.Fprintf(cmd.OutOrStdout(), "Saved scenario %q (%s)\n", sc.Name, sc.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&planPath, "config", "c", "", "plan file (YAML or JSON)")
	return cmd
}

func newScenarioListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved scenarios, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(repo store.Repository) error {
				scenarios, err := repo.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(scenarios) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No saved scenarios.")
					return nil
				}
				nf := a.numberFormat()
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tSAVED\tPRINCIPAL\tMONTHLY\tRATE\tYEARS")
				for _, sc := range scenarios {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
						sc.ID, sc.Name, sc.Date.Local().Format("2006-01-02 15:04"),
						nf.Money(sc.Data.InitialPrincipal), nf.Money(sc.Data.MonthlyContribution),
						output.FormatPercentage(sc.Data.AnnualRate), sc.Data.YearsToGrow)
				}
				return tw.Flush()
			})
		},
	}
}

func newScenarioShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID|NAME",
		Short: "Print a saved scenario's plan as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(repo store.Repository) error {
				sc, err := store.Resolve(cmd.Context(), repo, args[0])
				if err != nil {
					return fmt.Errorf("scenario %q: %w", args[0], err)
				}
				b, err := yaml.Marshal(sc.Data)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "# %s (%s)\n%s", sc.Name, sc.ID, b)
				return nil
			})
		},
	}
}

func newScenarioDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID|NAME",
		Aliases: []string{"rm"},
		Short:   "Delete a saved scenario",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(repo store.Repository) error {
				sc, err := store.Resolve(cmd.Context(), repo, args[0])
				if err != nil {
					return fmt.Errorf("scenario %q: %w", args[0], err)
				}
				if err := repo.Remove(cmd.Context(), sc.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted scenario %q (%s)\n", sc.Name, sc.ID)
				return nil
			})
		},
	}
}

func newScenarioRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run ID|NAME [ID|NAME...]",
		Short: "Project saved scenarios; more than one are compared",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(repo store.Repository) error {
				named := make([]calculation.NamedConfiguration, 0, len(args))
				for _, ref := range args {
					sc, err := store.Resolve(cmd.Context(), repo, ref)
					if err != nil {
						return fmt.Errorf("scenario %q: %w", ref, err)
					}
					if err := a.parser.ValidateConfiguration(&sc.Data); err != nil {
						return fmt.Errorf("scenario %q: %w", sc.Name, err)
					}
					named = append(named, calculation.NamedConfiguration{Name: sc.Name, Configuration: sc.Data})
				}
				report, err := a.engine.Compare(cmd.Context(), named)
				if err != nil {
					return err
				}
				report.Assumptions = output.GenerateAssumptions(named[0].Configuration, a.numberFormat())
				return a.emit(cmd, report, a.settings.Format)
			})
		},
	}
}
