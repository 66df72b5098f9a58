package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/fixtures"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/output"
	"go.uber.org/zap"
)

func newRunCmd() *cobra.Command {
	var (
		variant       string
		tolerance     float64
		resultsPath   string
		scenariosPath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every scenario through the workbook",
		Long: `Runs each scenario in turn: open the workbook, reset the input cells,
write the scenario, recalculate, read the maximum loan and close.

Variants:
  file  save a temporary copy next to the workbook and reload it (tolerance 5%)
  live  recalculate in memory and wait for the settle delay (tolerance 10%)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if variant != "" {
				cfg.Variant = variant
			}
			if tolerance > 0 {
				cfg.Tolerance = tolerance
			}
			if resultsPath != "" {
				cfg.Results = resultsPath
			}
			if scenariosPath != "" {
				cfg.ScenariosFile = scenariosPath
			}
			return runScenarios(cmd)
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "", "Recalculation variant: file or live")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "Match tolerance in percent (default: per variant)")
	cmd.Flags().StringVarP(&resultsPath, "output", "o", "", "Results JSON path")
	cmd.Flags().StringVar(&scenariosPath, "scenarios", "", "Scenario YAML file (default: built-in scenarios)")

	return cmd
}

func runScenarios(cmd *cobra.Command) error {
	opts, err := cfg.CheckOptions()
	if err != nil {
		return err
	}
	scenarios, err := loadScenarios()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))
	log.Info("starting scenario run",
		zap.String("workbook", opts.Runner.Path),
		zap.String("variant", string(opts.Variant)),
		zap.Int("scenarios", len(scenarios)))

	report, err := qedcheck.Check(cmd.Context(), opts, scenarios, log)
	if err != nil {
		return fmt.Errorf("scenario run aborted: %w", err)
	}

	data, err := output.ResultsToJSON(report.Results, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := output.WriteFile(cfg.Results, data); err != nil {
		return err
	}
	log.Info("results saved", zap.String("path", cfg.Results), zap.Int("results", len(report.Results)))

	if err := output.WriteSummary(cmd.OutOrStdout(), runID, report.Results, opts.EffectiveTolerance()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nCompleted %d of %d scenarios\n", len(report.Results), len(scenarios))
	return nil
}

func loadScenarios() ([]models.Scenario, error) {
	if cfg.ScenariosFile == "" {
		return fixtures.Default(), nil
	}
	return fixtures.Load(cfg.ScenariosFile)
}
