// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package suggest converts low-scoring quality dimensions into ranked,
// actionable revision directives. Output is deterministic for the same
// metrics: one suggestion per dimension below the threshold, ordered by
// severity then dimension weight.
package suggest

import (
	"fmt"
	"sort"

	"github.com/pdiddy/revision-engine/pkg/types"
)

// Severity bands for a below-threshold score.
const (
	highBelow   = 0.4
	mediumBelow = 0.6
)

// directiveTemplates fixes the per-dimension rewrite instruction.
var directiveTemplates = map[types.Dimension]struct{ directive, rationale string }{
	types.DimClarity: {
		directive: "Shorten sentences toward 15-25 words and reduce nested clauses.",
		rationale: "Average sentence length or clause density is hurting readability.",
	},
	types.DimCoherence: {
		directive: "Add logical connectors between ideas and smooth the transitions between paragraphs.",
		rationale: "The text lacks transition markers that signal logical flow.",
	},
	types.DimAcademicTone: {
		directive: "Replace informal language with formal academic terminology and keep an objective perspective.",
		rationale: "Informal markers (contractions, casual intensifiers) weaken the register.",
	},
	types.DimCompleteness: {
		directive: "Expand the section to meet its expected length and cover its required elements.",
		rationale: "The word count falls outside the expected range for this section type.",
	},
	types.DimCitationQuality: {
		directive: "Add inline citations to support claims and keep citation formatting consistent.",
		rationale: "Citation density is below the expectation for this section type.",
	},
}

// severityFor bands a below-threshold score.
func severityFor(score float64) types.Severity {
	switch {
	case score < highBelow:
		return types.SeverityHigh
	case score < mediumBelow:
		return types.SeverityMedium
	default:
		return types.SeverityLow
	}
}

// Suggest returns one suggestion per dimension scoring below threshold,
// ordered by severity descending, then dimension weight descending so
// higher-weighted dimensions are fixed first. An empty result is the
// controller's acceptance signal.
func Suggest(m types.QualityMetrics, threshold float64) []types.RevisionSuggestion {
	var suggestions []types.RevisionSuggestion

	for _, dim := range types.Dimensions() {
		score, ok := m.Scores[dim]
		if !ok || score >= threshold {
			continue
		}
		tmpl := directiveTemplates[dim]
		suggestions = append(suggestions, types.RevisionSuggestion{
			Dimension: dim,
			Severity:  severityFor(score),
			Directive: tmpl.directive,
			Rationale: fmt.Sprintf("%s (score %.2f, threshold %.2f)", tmpl.rationale, score, threshold),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		si, sj := suggestions[i], suggestions[j]
		if si.Severity.Rank() != sj.Severity.Rank() {
			return si.Severity.Rank() > sj.Severity.Rank()
		}
		return m.Weights[si.Dimension] > m.Weights[sj.Dimension]
	})

	return suggestions
}
