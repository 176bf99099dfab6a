// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assess

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/revision-engine/pkg/types"
)

// FormatTable writes the metrics as a human-readable table to w.
func FormatTable(m types.QualityMetrics, w io.Writer) {
	fmt.Fprintf(w, "%-18s  %-7s  %-6s\n", "Dimension", "Weight", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 35))
	for _, dim := range types.Dimensions() {
		fmt.Fprintf(w, "%-18s  %-7.2f  %-6.2f\n", dim, m.Weights[dim], m.Scores[dim])
	}
	fmt.Fprintln(w, strings.Repeat("-", 35))
	fmt.Fprintf(w, "%-18s  %-7s  %-6.2f\n", "overall", "", m.Overall())
	fmt.Fprintf(w, "\n%d words, %d sentences (%.1f words/sentence)\n",
		m.Stats.WordCount, m.Stats.SentenceCount, m.Stats.AvgSentenceLen)
}

// FormatJSON writes the metrics as indented JSON to w.
func FormatJSON(m types.QualityMetrics, w io.Writer) error {
	out := struct {
		types.QualityMetrics
		Overall float64 `json:"overall"`
	}{QualityMetrics: m, Overall: m.Overall()}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
