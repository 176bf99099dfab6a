// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/revision-engine/internal/assess"
	"github.com/pdiddy/revision-engine/internal/suggest"
	"github.com/pdiddy/revision-engine/pkg/types"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score a section without revising it",
	Long: `Assess computes the weighted quality metrics for the input text and
prints the per-dimension report. With --suggestions the directives that a
revision cycle would apply are listed as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sectionFlag, _ := cmd.Flags().GetString("section")
		section, err := parseSection(sectionFlag)
		if err != nil {
			return err
		}

		inPath, _ := cmd.Flags().GetString("in")
		text, err := readInput(inPath)
		if err != nil {
			return err
		}

		cfg := engineConfig()
		assessor, err := assess.New(cfg.Assess)
		if err != nil {
			return err
		}

		metrics := assessor.Assess(types.Content{Text: text, Section: section})

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return assess.FormatJSON(metrics, os.Stdout)
		}
		assess.FormatTable(metrics, os.Stdout)

		if withSuggestions, _ := cmd.Flags().GetBool("suggestions"); withSuggestions {
			suggestions := suggest.Suggest(metrics, cfg.Cycle.MinDimensionThreshold)
			if len(suggestions) == 0 {
				cmd.Println("\nNo revision directives: every dimension meets the threshold.")
				return nil
			}
			cmd.Println("\nRevision directives:")
			for _, s := range suggestions {
				cmd.Printf("  [%s] %s: %s\n", s.Severity, s.Dimension, s.Directive)
			}
		}
		return nil
	},
}

func init() {
	assessCmd.Flags().String("section", "", "section type: abstract, introduction, methods, results, discussion")
	assessCmd.Flags().String("in", "", "input file (default: stdin)")
	assessCmd.Flags().Bool("json", false, "output metrics as JSON")
	assessCmd.Flags().Bool("suggestions", false, "also list revision directives")
	assessCmd.MarkFlagRequired("section")

	rootCmd.AddCommand(assessCmd)
}
