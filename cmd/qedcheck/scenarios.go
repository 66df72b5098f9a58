package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/parser"
)

func newScenariosCmd() *cobra.Command {
	var scenariosPath string

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the scenarios a run would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scenariosPath != "" {
				cfg.ScenariosFile = scenariosPath
			}
			scenarios, err := loadScenarios()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, s := range scenarios {
				fmt.Fprintf(w, "%s\n  region %s, income %s", s.Name, models.RegionFor(s), parser.FormatCurrency(s.PrimaryIncome))
				if s.IsDual() {
					fmt.Fprintf(w, " + %s", parser.FormatCurrency(s.SecondaryIncome))
				}
				fmt.Fprintf(w, ", rate %.2f%%, expected %s-%s, ours %s\n",
					s.InterestRate,
					parser.FormatCurrency(s.Expected.Min),
					parser.FormatCurrency(s.Expected.Max),
					parser.FormatCurrency(s.AppResult))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenariosPath, "scenarios", "", "Scenario YAML file (default: built-in scenarios)")
	return cmd
}
