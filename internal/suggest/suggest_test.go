// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"strings"
	"testing"

	"github.com/pdiddy/revision-engine/pkg/types"
)

func metricsWith(scores map[types.Dimension]float64) types.QualityMetrics {
	return types.QualityMetrics{
		Scores: scores,
		Weights: map[types.Dimension]float64{
			types.DimClarity:         0.25,
			types.DimCoherence:       0.25,
			types.DimAcademicTone:    0.20,
			types.DimCompleteness:    0.15,
			types.DimCitationQuality: 0.15,
		},
	}
}

// --- severity bands ---

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		score float64
		want  types.Severity
	}{
		{0.0, types.SeverityHigh},
		{0.39, types.SeverityHigh},
		{0.4, types.SeverityMedium},
		{0.59, types.SeverityMedium},
		{0.6, types.SeverityLow},
		{0.69, types.SeverityLow},
	}

	for _, tt := range tests {
		if got := severityFor(tt.score); got != tt.want {
			t.Errorf("severityFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

// --- suggestion generation ---

func TestSuggestEmptyWhenAllAboveThreshold(t *testing.T) {
	m := metricsWith(map[types.Dimension]float64{
		types.DimClarity:         0.7,
		types.DimCoherence:       0.85,
		types.DimAcademicTone:    0.9,
		types.DimCompleteness:    1.0,
		types.DimCitationQuality: 0.71,
	})

	if got := Suggest(m, 0.7); len(got) != 0 {
		t.Errorf("Suggest returned %d suggestions, want 0", len(got))
	}
}

func TestSuggestOnePerLowDimension(t *testing.T) {
	m := metricsWith(map[types.Dimension]float64{
		types.DimClarity:         0.3,
		types.DimCoherence:       0.5,
		types.DimAcademicTone:    0.65,
		types.DimCompleteness:    0.9,
		types.DimCitationQuality: 0.9,
	})

	got := Suggest(m, 0.7)
	if len(got) != 3 {
		t.Fatalf("Suggest returned %d suggestions, want 3", len(got))
	}

	// Ordered by severity: clarity (high), coherence (medium), tone (low).
	wantOrder := []types.Dimension{types.DimClarity, types.DimCoherence, types.DimAcademicTone}
	for i, want := range wantOrder {
		if got[i].Dimension != want {
			t.Errorf("suggestion %d dimension = %s, want %s", i, got[i].Dimension, want)
		}
	}

	if got[0].Severity != types.SeverityHigh {
		t.Errorf("clarity severity = %s, want high", got[0].Severity)
	}
	if got[0].Directive == "" {
		t.Error("directive is empty")
	}
	if !strings.Contains(got[0].Rationale, "0.30") || !strings.Contains(got[0].Rationale, "0.70") {
		t.Errorf("rationale %q should carry the score and threshold", got[0].Rationale)
	}
}

func TestSuggestOrdersEqualSeverityByWeight(t *testing.T) {
	// Tone (weight 0.20) and completeness (weight 0.15) are both low
	// severity; the heavier dimension comes first.
	m := metricsWith(map[types.Dimension]float64{
		types.DimClarity:         0.9,
		types.DimCoherence:       0.9,
		types.DimAcademicTone:    0.65,
		types.DimCompleteness:    0.65,
		types.DimCitationQuality: 0.9,
	})

	got := Suggest(m, 0.7)
	if len(got) != 2 {
		t.Fatalf("Suggest returned %d suggestions, want 2", len(got))
	}
	if got[0].Dimension != types.DimAcademicTone {
		t.Errorf("first suggestion = %s, want academic_tone (heavier weight)", got[0].Dimension)
	}
	if got[1].Dimension != types.DimCompleteness {
		t.Errorf("second suggestion = %s, want completeness", got[1].Dimension)
	}
}

func TestSuggestDeterministic(t *testing.T) {
	m := metricsWith(map[types.Dimension]float64{
		types.DimClarity:         0.2,
		types.DimCoherence:       0.5,
		types.DimAcademicTone:    0.3,
		types.DimCompleteness:    0.65,
		types.DimCitationQuality: 0.1,
	})

	first := Suggest(m, 0.7)
	second := Suggest(m, 0.7)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("suggestion %d differs between runs", i)
		}
	}
}
