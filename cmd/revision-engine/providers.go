// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/revision-engine/internal/events"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Show the configured provider chain",
	Long: `Providers lists the fallback chain in invocation order. API backends
appear only when a key was found in .secrets/ or the environment. With
--events-db the command also summarizes recorded attempt outcomes and
recent cycles from the events database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		chain := providerChain()

		fmt.Fprintln(os.Stdout, "Provider chain (in fallback order):")
		for i, p := range chain {
			model := p.Model
			if model == "" {
				model = "default"
			}
			if p.ID == "deterministic" {
				model = "n/a"
			}
			fmt.Fprintf(os.Stdout, "  %d. %-13s  model=%s\n", i+1, p.ID, model)
		}

		dbPath, _ := cmd.Flags().GetString("events-db")
		if dbPath == "" {
			return nil
		}

		store, err := events.OpenStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		counts, err := store.AttemptCounts(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "\nAttempt outcomes:")
		if len(counts) == 0 {
			fmt.Fprintln(os.Stdout, "  (none recorded)")
		}
		for _, c := range counts {
			fmt.Fprintf(os.Stdout, "  %-13s  %-10s  %d\n", c.Provider, c.Outcome, c.Count)
		}

		limit, _ := cmd.Flags().GetInt("recent")
		cycles, err := store.RecentCycles(cmd.Context(), limit)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "\nRecent cycles:")
		if len(cycles) == 0 {
			fmt.Fprintln(os.Stdout, "  (none recorded)")
			return nil
		}
		fmt.Fprintf(os.Stdout, "  %-12s  %-20s  %-5s  %-6s  %s\n", "Section", "Reason", "Iters", "Score", "When")
		fmt.Fprintln(os.Stdout, "  "+strings.Repeat("-", 66))
		for _, c := range cycles {
			fmt.Fprintf(os.Stdout, "  %-12s  %-20s  %-5d  %-6.2f  %s\n",
				c.Section, c.Reason, c.Iterations, c.FinalScore,
				c.Timestamp.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	providersCmd.Flags().String("events-db", "", "SQLite events database to summarize")
	providersCmd.Flags().Int("recent", 10, "number of recent cycles to show")

	rootCmd.AddCommand(providersCmd)
}
