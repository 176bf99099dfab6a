// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"fmt"
	"strings"

	"github.com/pdiddy/revision-engine/pkg/types"
)

const systemPrompt = "You are an expert academic writer and editor. " +
	"Respond with the section text only, without commentary or headings."

// generatePrompt builds the instruction for writing a new section.
func generatePrompt(req Request) string {
	bounds := types.Content{Section: req.Section}.Bounds()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Write the %s section of an academic paper on the following topic (%d-%d words):\n\n",
		req.Section, bounds.Min, bounds.Max)
	sb.WriteString(req.Topic)
	sb.WriteString("\n\nUse formal academic register, clear transitions between ideas, and inline citations in [AuthorYear] form where claims need support.")
	return sb.String()
}

// revisePrompt builds a single rewrite instruction from the text plus all
// suggestion directives. Directives are batched into one request; one
// provider call per suggestion would multiply cost and latency.
func revisePrompt(req Request) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Revise this %s section according to the directives below. Preserve the core content, claims, and citations.\n\n", req.Section)
	sb.WriteString("Original text:\n")
	sb.WriteString(req.Text)
	sb.WriteString("\n\nDirectives:\n")
	for _, s := range req.Suggestions {
		fmt.Fprintf(&sb, "- [%s/%s] %s\n", s.Dimension, s.Severity, s.Directive)
	}
	sb.WriteString("\nRevised text:")
	return sb.String()
}
