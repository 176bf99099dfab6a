// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cycle

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/revision-engine/pkg/types"
)

// FormatResult writes a human-readable cycle summary to w.
func FormatResult(result types.CycleResult, w io.Writer) {
	fmt.Fprintf(w, "Termination: %s after %d iteration(s), final score %.2f\n\n",
		result.Reason, len(result.History), result.FinalScore.Overall())

	if len(result.History) == 0 {
		fmt.Fprintln(w, "No revisions were needed.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-13s  %-6s  %-6s  %s\n", "Iter", "Provider", "Pre", "Post", "Directives")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, rec := range result.History {
		dims := make([]string, 0, len(rec.SuggestionsApplied))
		for _, s := range rec.SuggestionsApplied {
			dims = append(dims, string(s.Dimension))
		}
		fmt.Fprintf(w, "%-4d  %-13s  %-6.2f  %-6.2f  %s\n",
			rec.Iteration, rec.Provider,
			rec.PreScore.Overall(), rec.PostScore.Overall(),
			strings.Join(dims, ","))
	}
}
