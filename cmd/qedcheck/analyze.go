package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/output"
	"go.uber.org/zap"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		sheet          string
		outputPath     string
		inputKeywords  []string
		outputKeywords []string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Locate probable input and result cells in the workbook",
		Long: `Scans a sheet for labels containing input and output keywords and for
large numeric values that may be computed loan amounts. The workbook is only
read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sheet != "" {
				cfg.Locator.Sheet = sheet
			}
			if len(inputKeywords) > 0 {
				cfg.Locator.InputKeywords = inputKeywords
			}
			if len(outputKeywords) > 0 {
				cfg.Locator.OutputKeywords = outputKeywords
			}
			if outputPath != "" {
				cfg.Analysis = outputPath
			}
			return analyze(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to analyse (default: active sheet)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the analysis as JSON to this path")
	cmd.Flags().StringSliceVar(&inputKeywords, "input-keywords", nil, "Keywords marking input labels")
	cmd.Flags().StringSliceVar(&outputKeywords, "output-keywords", nil, "Keywords marking output labels")

	return cmd
}

func analyze(w io.Writer) error {
	opts, err := cfg.AnalyzeOptions()
	if err != nil {
		return err
	}

	a, err := qedcheck.Analyze(cfg.Workbook, opts)
	if err != nil {
		logger.Error("analysis failed", zap.String("workbook", cfg.Workbook), zap.Error(err))
		return err
	}

	printAnalysis(w, a)

	if cfg.Analysis != "" {
		data, err := output.AnalysisToJSON(a, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := output.WriteFile(cfg.Analysis, data); err != nil {
			return err
		}
		logger.Info("analysis saved", zap.String("path", cfg.Analysis))
	}
	return nil
}

func printAnalysis(w io.Writer, a *models.Analysis) {
	fmt.Fprintf(w, "Workbook %s with %d sheets:\n", a.BookName, len(a.Worksheets))
	for i, name := range a.Worksheets {
		fmt.Fprintf(w, "  %d. %s\n", i+1, name)
	}
	fmt.Fprintf(w, "\nAnalysing sheet: %s\n", a.Sheet)

	printMatches(w, "INPUT", a.InputCells)
	printMatches(w, "OUTPUT", a.OutputCells)

	fmt.Fprintln(w, "\nLargest numeric values:")
	for _, c := range a.PotentialResults {
		fmt.Fprintf(w, "  RESULT %s: %s\n", c.Cell, c.Formatted)
	}
}

func printMatches(w io.Writer, kind string, matches map[string]models.LabelMatch) {
	keys := make([]string, 0, len(matches))
	for k := range matches {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(w, "\n%s cells:\n", kind)
	for _, k := range keys {
		m := matches[k]
		fmt.Fprintf(w, "  %s %s: %s = %q", kind, strings.ToUpper(k), m.Cell, m.Label)
		if m.AdjacentValue != nil {
			fmt.Fprintf(w, " -> %v", m.AdjacentValue)
		}
		fmt.Fprintln(w)
	}
}
