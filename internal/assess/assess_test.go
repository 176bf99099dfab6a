// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assess

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/pdiddy/revision-engine/pkg/types"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// --- configuration ---

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.AssessConfig
		wantErr bool
	}{
		{
			name: "defaults",
			cfg:  types.AssessConfig{},
		},
		{
			name: "explicit valid weights",
			cfg:  types.AssessConfig{Weights: DefaultWeights(), Tolerance: 0.25},
		},
		{
			name: "missing dimension",
			cfg: types.AssessConfig{Weights: map[types.Dimension]float64{
				types.DimClarity:   0.5,
				types.DimCoherence: 0.5,
			}},
			wantErr: true,
		},
		{
			name: "unknown dimension",
			cfg: types.AssessConfig{Weights: func() map[types.Dimension]float64 {
				w := DefaultWeights()
				w[types.Dimension("novelty")] = 0
				return w
			}()},
			wantErr: true,
		},
		{
			name: "negative weight",
			cfg: types.AssessConfig{Weights: map[types.Dimension]float64{
				types.DimClarity:         -0.25,
				types.DimCoherence:       0.5,
				types.DimAcademicTone:    0.25,
				types.DimCompleteness:    0.25,
				types.DimCitationQuality: 0.25,
			}},
			wantErr: true,
		},
		{
			name: "weights do not sum to one",
			cfg: types.AssessConfig{Weights: map[types.Dimension]float64{
				types.DimClarity:         0.25,
				types.DimCoherence:       0.25,
				types.DimAcademicTone:    0.25,
				types.DimCompleteness:    0.25,
				types.DimCitationQuality: 0.25,
			}},
			wantErr: true,
		},
		{
			name:    "tolerance above one",
			cfg:     types.AssessConfig{Tolerance: 1.5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var cerr *types.ConfigurationError
				if !errors.As(err, &cerr) {
					t.Errorf("error = %T, want *types.ConfigurationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, w := range DefaultWeights() {
		sum += w
	}
	if !almostEqual(sum, 1.0) {
		t.Errorf("default weights sum = %v, want 1", sum)
	}
}

// --- assessment ---

func TestAssessDeterministic(t *testing.T) {
	assessor, err := New(types.AssessConfig{})
	if err != nil {
		t.Fatal(err)
	}
	content := types.Content{
		Text:    "The analysis suggests that the evidence indicates significant findings. Therefore, the methodology appears robust.",
		Section: types.SectionDiscussion,
	}

	first := assessor.Assess(content)
	second := assessor.Assess(content)

	for _, dim := range types.Dimensions() {
		if first.Scores[dim] != second.Scores[dim] {
			t.Errorf("score for %s differs between runs: %v vs %v", dim, first.Scores[dim], second.Scores[dim])
		}
	}
	if first.Overall() != second.Overall() {
		t.Errorf("overall differs between runs: %v vs %v", first.Overall(), second.Overall())
	}
}

func TestAssessEmptyText(t *testing.T) {
	assessor, err := New(types.AssessConfig{})
	if err != nil {
		t.Fatal(err)
	}

	m := assessor.Assess(types.Content{Text: "   \n ", Section: types.SectionAbstract})

	for _, dim := range types.Dimensions() {
		if m.Scores[dim] != 0 {
			t.Errorf("score for %s = %v, want 0 for empty text", dim, m.Scores[dim])
		}
	}
	if m.Overall() != 0 {
		t.Errorf("overall = %v, want 0", m.Overall())
	}
}

func TestAssessScoresWithinBounds(t *testing.T) {
	assessor, err := New(types.AssessConfig{})
	if err != nil {
		t.Fatal(err)
	}

	texts := []string{
		"Short.",
		strings.Repeat("word ", 500),
		"This is really pretty bad stuff! I think it's kind of okay though!",
		"The methodology demonstrates significant evidence [Smith2020]. Moreover, the findings suggest robust patterns (Jones, 2021).",
	}
	for _, text := range texts {
		m := assessor.Assess(types.Content{Text: text, Section: types.SectionIntroduction})
		for _, dim := range types.Dimensions() {
			if s := m.Scores[dim]; s < 0 || s > 1 {
				t.Errorf("score for %s = %v, want within [0,1] for %q", dim, s, text)
			}
		}
	}
}

func TestAssessShortAbstract(t *testing.T) {
	assessor, err := New(types.AssessConfig{})
	if err != nil {
		t.Fatal(err)
	}

	// 8 words against a 150-word minimum: completeness bottoms out.
	m := assessor.Assess(types.Content{
		Text:    "This study examines an interesting phenomenon in detail.",
		Section: types.SectionAbstract,
	})

	if m.Scores[types.DimCompleteness] != 0 {
		t.Errorf("completeness = %v, want 0 for far-too-short abstract", m.Scores[types.DimCompleteness])
	}
	if m.Stats.WordCount != 8 {
		t.Errorf("word count = %d, want 8", m.Stats.WordCount)
	}
}

// --- completeness interpolation ---

func TestCompletenessScore(t *testing.T) {
	bounds := types.WordBounds{Min: 100, Max: 200}
	tol := 0.5 // floor 50, ceiling 300

	tests := []struct {
		name string
		wc   int
		want float64
	}{
		{"far below floor", 40, 0},
		{"at floor", 50, 0},
		{"halfway up the ramp", 75, 0.5},
		{"at minimum", 100, 1},
		{"inside bounds", 150, 1},
		{"at maximum", 200, 1},
		{"halfway down the ramp", 250, 0.5},
		{"at ceiling", 300, 0},
		{"beyond ceiling", 400, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := completenessScore(tt.wc, bounds, tol)
			if !almostEqual(got, tt.want) {
				t.Errorf("completenessScore(%d) = %v, want %v", tt.wc, got, tt.want)
			}
		})
	}
}

// --- element coverage ---

func TestElementCoverage(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		section types.SectionType
		want    float64
	}{
		{
			name:    "all abstract elements",
			text:    "The background motivates the methods, the results, and the conclusion.",
			section: types.SectionAbstract,
			want:    1,
		},
		{
			name:    "half the methods elements",
			text:    "The procedure was followed by a detailed analysis.",
			section: types.SectionMethods,
			want:    0.5,
		},
		{
			name:    "no discussion elements",
			text:    "The text mentions nothing it should.",
			section: types.SectionDiscussion,
			want:    0,
		},
		{
			name:    "case insensitive",
			text:    "FINDINGS and Data were reported.",
			section: types.SectionResults,
			want:    0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := elementCoverage(tt.text, tt.section)
			if !almostEqual(got, tt.want) {
				t.Errorf("elementCoverage = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompletenessIncludesElementCoverage(t *testing.T) {
	assessor, err := New(types.AssessConfig{})
	if err != nil {
		t.Fatal(err)
	}

	// Both abstracts sit inside the 150-300 word bounds; only one names
	// the expected content elements.
	filler := strings.TrimSpace(strings.Repeat("word ", 196))
	withElements := filler + " background methods results conclusion"

	full := assessor.Assess(types.Content{Text: withElements, Section: types.SectionAbstract})
	bare := assessor.Assess(types.Content{Text: filler + " word word word word", Section: types.SectionAbstract})

	if !almostEqual(full.Scores[types.DimCompleteness], 1) {
		t.Errorf("completeness with all elements = %v, want 1", full.Scores[types.DimCompleteness])
	}
	if !almostEqual(bare.Scores[types.DimCompleteness], 1-elementWeight) {
		t.Errorf("completeness without elements = %v, want %v",
			bare.Scores[types.DimCompleteness], 1-elementWeight)
	}
	if bare.Scores[types.DimCompleteness] >= full.Scores[types.DimCompleteness] {
		t.Error("element coverage must separate otherwise identical lengths")
	}
}

// --- clarity ---

func TestClarityScore(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		stats types.TextStats
		want  float64
	}{
		{
			name:  "ideal length",
			stats: types.TextStats{SentenceCount: 1, AvgSentenceLen: 20},
			want:  1,
		},
		{
			name:  "short sentences",
			stats: types.TextStats{SentenceCount: 1, AvgSentenceLen: 7.5},
			want:  0.8,
		},
		{
			name:  "long sentences",
			stats: types.TextStats{SentenceCount: 1, AvgSentenceLen: 30},
			want:  0.8,
		},
		{
			name:  "very long sentences",
			stats: types.TextStats{SentenceCount: 1, AvgSentenceLen: 50},
			want:  0,
		},
		{
			name:  "clause dense",
			text:  "a, b, c, d, e, f, g",
			stats: types.TextStats{SentenceCount: 1, AvgSentenceLen: 20},
			want:  1 - 0.08*4,
		},
		{
			name: "no sentences",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clarityScore(tt.text, tt.stats)
			if !almostEqual(got, tt.want) {
				t.Errorf("clarityScore = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- coherence ---

func TestCoherenceScore(t *testing.T) {
	base := coherenceScore("The first point stands. The second point stands.",
		types.TextStats{SentenceCount: 2})
	linked := coherenceScore("However, the first point stands. Therefore, the second point stands.",
		types.TextStats{SentenceCount: 2})
	if linked <= base {
		t.Errorf("transition markers should raise coherence: linked %v <= base %v", linked, base)
	}

	single := coherenceScore("One idea here.", types.TextStats{SentenceCount: 1})
	multi := coherenceScore("One idea here.\n\nAnother idea there.", types.TextStats{SentenceCount: 2})
	if multi <= single {
		t.Errorf("paragraph structure should raise coherence: multi %v <= single %v", multi, single)
	}
}

// --- tone ---

func TestToneScore(t *testing.T) {
	informal := toneScore("The results aren't great and stuff! It's really pretty bad!")
	formal := toneScore("The analysis suggests that the evidence indicates significant findings; therefore, the methodology appears robust.")

	if formal <= informal {
		t.Errorf("formal register should outscore informal: formal %v <= informal %v", formal, informal)
	}
	if informal >= 0.6 {
		t.Errorf("informal text scored %v, want below the 0.6 baseline", informal)
	}
	if formal <= 0.6 {
		t.Errorf("formal text scored %v, want above the 0.6 baseline", formal)
	}
}

// --- citations ---

func TestIsCitationKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"Smith2020", true},
		{"smith-jones2019", true},
		{"lee_2021", true},
		{"see here", false},
		{"2020", false},
		{"Smith", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isCitationKey(tt.key); got != tt.want {
			t.Errorf("isCitationKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestCitationScore(t *testing.T) {
	// 100 words, introduction expects 1.5 citations per 100 words.
	filler := strings.Repeat("word ", 100)

	none := citationScore(filler, types.SectionIntroduction, 100)
	if none != 0 {
		t.Errorf("no citations scored %v, want 0", none)
	}

	one := citationScore(filler+"[Smith2020]", types.SectionIntroduction, 100)
	if !almostEqual(one, 1.0/1.5) {
		t.Errorf("one citation scored %v, want %v", one, 1.0/1.5)
	}

	two := citationScore(filler+"[Smith2020] (Jones, 2021)", types.SectionIntroduction, 100)
	if !almostEqual(two, 1) {
		t.Errorf("two citations scored %v, want clamped 1", two)
	}

	multi := citationScore(filler+"[Smith2020; Jones2021]", types.SectionIntroduction, 100)
	if !almostEqual(multi, 1) {
		t.Errorf("multi-key bracket scored %v, want 1", multi)
	}

	link := citationScore(filler+"[see the appendix]", types.SectionIntroduction, 100)
	if link != 0 {
		t.Errorf("non-key bracket scored %v, want 0", link)
	}
}
