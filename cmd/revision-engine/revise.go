// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/revision-engine/internal/cycle"
	"github.com/pdiddy/revision-engine/internal/events"
	"github.com/pdiddy/revision-engine/pkg/types"
)

var reviseCmd = &cobra.Command{
	Use:   "revise",
	Short: "Run the quality-gated revision cycle on a section",
	Long: `Revise scores the input text, generates revision directives for
low-scoring dimensions, and iterates rewrite attempts through the provider
chain until the text is accepted or a termination condition is reached.
The best-scoring candidate is written to stdout (or --out).`,
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
		if v, _ := cmd.Flags().GetFloat64("threshold"); v > 0 {
			cfg.Cycle.AcceptanceThreshold = v
		}
		if v, _ := cmd.Flags().GetInt("max-iterations"); v > 0 {
			cfg.Cycle.MaxIterations = v
		}
		if v, _ := cmd.Flags().GetFloat64("min-dimension-threshold"); v > 0 {
			cfg.Cycle.MinDimensionThreshold = v
		}
		if v, _ := cmd.Flags().GetString("events-db"); v != "" {
			cfg.EventsDB = v
		}

		var sinks events.MultiSink
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			sinks = append(sinks, events.NewWriterSink(os.Stderr))
		}
		if cfg.EventsDB != "" {
			store, err := events.OpenStore(cfg.EventsDB)
			if err != nil {
				return err
			}
			defer store.Close()
			sinks = append(sinks, store)
		}

		controller, err := cycle.NewFromConfig(cfg, sinks)
		if err != nil {
			return err
		}

		result := controller.Run(cmd.Context(), types.Content{Text: text, Section: section})

		cycle.FormatResult(result, os.Stderr)

		if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
			data, err := yaml.Marshal(result)
			if err != nil {
				return fmt.Errorf("encoding report: %w", err)
			}
			if err := os.WriteFile(reportPath, data, 0o644); err != nil {
				return fmt.Errorf("writing report %s: %w", reportPath, err)
			}
		}

		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" {
			fmt.Fprintln(os.Stdout, result.FinalText)
			return nil
		}
		if err := os.WriteFile(outPath, []byte(result.FinalText+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		return nil
	},
}

func init() {
	reviseCmd.Flags().String("section", "", "section type: abstract, introduction, methods, results, discussion")
	reviseCmd.Flags().String("in", "", "input file (default: stdin)")
	reviseCmd.Flags().String("out", "", "output file for the revised text (default: stdout)")
	reviseCmd.Flags().String("report", "", "write the full cycle report to a YAML file")
	reviseCmd.Flags().Float64("threshold", 0, "overall score at which revision stops (default 0.8)")
	reviseCmd.Flags().Int("max-iterations", 0, "maximum revision iterations (default 3)")
	reviseCmd.Flags().Float64("min-dimension-threshold", 0, "per-dimension score below which a directive is emitted (default 0.7)")
	reviseCmd.Flags().String("events-db", "", "SQLite file for attempt and cycle events")
	reviseCmd.Flags().Bool("verbose", false, "log provider attempts to stderr")
	reviseCmd.MarkFlagRequired("section")

	rootCmd.AddCommand(reviseCmd)
}
