package cli

import (
	"fmt"
	"os"

	"github.com/rustyeddy/tradecalc/config"
	"github.com/rustyeddy/tradecalc/risk"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newPlanCmd(rc *RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Work with trade plan files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "run <plan-file>",
		Short: "Run the calculation described by a plan file",
		Long: `Run the position or profit calculation described by a YAML or JSON plan.

The plan's journal section is used unless --journal is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("journal") && p.Journal.Type != "" {
				rc.JournalType = p.Journal.Type
				rc.CSVPath = p.Journal.CSVFile
				rc.DBPath = p.Journal.DBPath
			}

			rc.log.WithFields(logrus.Fields{
				"plan": args[0],
				"mode": p.Mode,
			}).Debug("running plan")

			res, err := runPlan(p)
			if err != nil {
				return fmt.Errorf("plan %s: %w", args[0], err)
			}
			return rc.emit(cmd.OutOrStdout(), res, p.RiskPolicy())
		},
	})
	return cmd
}

func runPlan(p *config.Plan) (risk.CalculationResult, error) {
	if p.IsProfit() {
		req, err := p.ProfitRequest()
		if err != nil {
			return risk.CalculationResult{}, err
		}
		return risk.CalculateProfit(risk.Engine{}, req)
	}
	req, err := p.PositionRequest()
	if err != nil {
		return risk.CalculationResult{}, err
	}
	return risk.CalculatePosition(risk.Engine{}, req)
}

func newConfigCmd(rc *RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create and check plan files",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [plan-file]",
		Short: "Write a default plan file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "tradecalc.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Default().SaveToFile(path); err != nil {
				return err
			}
			rc.log.WithField("path", path).Info("plan written")
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	validateCmd := &cobra.Command{
		Use:   "validate <plan-file>",
		Short: "Check a plan file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if _, err := runPlan(p); err != nil {
				return fmt.Errorf("plan %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}
