// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"strings"
	"testing"

	"github.com/pdiddy/revision-engine/pkg/types"
)

// --- generation ---

func TestRuleBasedGenerate(t *testing.T) {
	p := NewRuleBasedProvider()

	for _, section := range types.SectionTypes() {
		got, err := p.Generate(context.Background(), Request{Section: section, Topic: "spiking neural networks"})
		if err != nil {
			t.Fatalf("Generate(%s): %v", section, err)
		}
		if !strings.Contains(got, "spiking neural networks") {
			t.Errorf("Generate(%s) output does not mention the topic", section)
		}
	}
}

func TestRuleBasedGenerateDeterministic(t *testing.T) {
	p := NewRuleBasedProvider()
	req := Request{Section: types.SectionAbstract, Topic: "graph databases"}

	first, _ := p.Generate(context.Background(), req)
	second, _ := p.Generate(context.Background(), req)
	if first != second {
		t.Error("Generate output differs for identical input")
	}
}

func TestRuleBasedGenerateEmptyTopic(t *testing.T) {
	p := NewRuleBasedProvider()
	got, err := p.Generate(context.Background(), Request{Section: types.SectionMethods})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "%s") {
		t.Errorf("template placeholder leaked into output: %q", got)
	}
}

// --- register ---

func TestFormalizeRegister(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "contraction expansion",
			in:   "The data doesn't support this, and it's unclear.",
			want: "The data does not support this, and it is unclear.",
		},
		{
			name: "capitalized contraction",
			in:   "Don't assume the result holds.",
			want: "Do not assume the result holds.",
		},
		{
			name: "casual intensifiers",
			in:   "The effect is really large and kind of surprising.",
			want: "The effect is notably large and somewhat surprising.",
		},
		{
			name: "exclamations",
			in:   "The result is striking!",
			want: "The result is striking.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formalizeRegister(tt.in); got != tt.want {
				t.Errorf("formalizeRegister(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// --- sentence splitting ---

func TestSplitLongSentences(t *testing.T) {
	long := "The experimental design incorporates a number of independent controls across each of the measurement conditions, and the resulting observations were aggregated into a single normalized dataset for the subsequent stages of the analysis."
	got := splitLongSentences(long)

	sentences := splitSentences(got)
	if len(sentences) < 2 {
		t.Fatalf("expected the long sentence to be split, got %d sentence(s): %q", len(sentences), got)
	}
	for _, s := range sentences {
		if n := len(strings.Fields(s)); n > longSentenceWords {
			t.Errorf("sentence still has %d words: %q", n, s)
		}
	}
}

func TestSplitLongSentencesLeavesShortAlone(t *testing.T) {
	short := "The results are consistent. The analysis holds."
	if got := splitLongSentences(short); got != short {
		t.Errorf("short sentences were modified: %q", got)
	}
}

// --- transitions ---

func TestInsertTransitions(t *testing.T) {
	in := "The first result stands. The second result stands. The third result stands. The fourth result stands."
	got := insertTransitions(in)

	if !strings.Contains(got, "Moreover,") {
		t.Errorf("expected a transition opener in %q", got)
	}
	if strings.Count(got, "Moreover,") > 1 {
		t.Errorf("transition cycle did not advance: %q", got)
	}
}

func TestInsertTransitionsSkipsExisting(t *testing.T) {
	in := "The first result stands. However, the second result differs."
	if got := insertTransitions(in); got != in {
		t.Errorf("sentence with an existing connective was modified: %q", got)
	}
}

// --- padding ---

func TestPadTowardBounds(t *testing.T) {
	short := "This study examines the topic."
	got := padTowardBounds(short, types.SectionAbstract)
	if len(strings.Fields(got)) <= len(strings.Fields(short)) {
		t.Error("under-length text was not extended")
	}

	// A second pass must not duplicate the elaborations.
	again := padTowardBounds(got, types.SectionAbstract)
	if strings.Count(again, "subsequent research") > 1 {
		t.Error("elaboration sentence was duplicated")
	}
}

func TestPadTowardBoundsLeavesLongTextAlone(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("word ", 200))
	if got := padTowardBounds(long, types.SectionAbstract); got != long {
		t.Error("text at the minimum bound was padded")
	}
}

// --- revision dispatch ---

func TestRuleBasedRevise(t *testing.T) {
	p := NewRuleBasedProvider()
	req := Request{
		Section: types.SectionDiscussion,
		Text:    "The data doesn't support this claim!",
		Suggestions: []types.RevisionSuggestion{
			{Dimension: types.DimAcademicTone, Severity: types.SeverityHigh},
		},
	}

	got, err := p.Revise(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "doesn't") || strings.Contains(got, "!") {
		t.Errorf("informal markers survived revision: %q", got)
	}

	second, _ := p.Revise(context.Background(), req)
	if got != second {
		t.Error("Revise output differs for identical input")
	}
}

func TestRuleBasedNeverFails(t *testing.T) {
	p := NewRuleBasedProvider()
	if !p.AlwaysAvailable() {
		t.Error("rule-based provider must report always available")
	}
	if _, err := p.Revise(context.Background(), Request{}); err != nil {
		t.Errorf("Revise on empty request: %v", err)
	}
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Errorf("Generate on empty request: %v", err)
	}
}
