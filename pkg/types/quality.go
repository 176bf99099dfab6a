// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Dimension is one axis of text quality.
type Dimension string

const (
	DimClarity         Dimension = "clarity"
	DimCoherence       Dimension = "coherence"
	DimAcademicTone    Dimension = "academic_tone"
	DimCompleteness    Dimension = "completeness"
	DimCitationQuality Dimension = "citation_quality"
)

// Dimensions lists every quality dimension in a stable order.
func Dimensions() []Dimension {
	return []Dimension{
		DimClarity,
		DimCoherence,
		DimAcademicTone,
		DimCompleteness,
		DimCitationQuality,
	}
}

// TextStats holds the basic text statistics computed during assessment.
type TextStats struct {
	// WordCount is the number of whitespace-separated words.
	WordCount int `json:"word_count" yaml:"word_count"`

	// SentenceCount is the number of sentences.
	SentenceCount int `json:"sentence_count" yaml:"sentence_count"`

	// AvgSentenceLen is words per sentence, 0 when there are no sentences.
	AvgSentenceLen float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`
}

// QualityMetrics holds per-dimension scores and the weights used to combine
// them. The overall score is always recomputed from the two maps so it can
// never go stale.
type QualityMetrics struct {
	// Scores maps each dimension to a score in [0,1].
	Scores map[Dimension]float64 `json:"scores" yaml:"scores"`

	// Weights maps each dimension to its weight; weights sum to 1.
	// Every weighted dimension has an entry in Scores.
	Weights map[Dimension]float64 `json:"weights" yaml:"weights"`

	// Stats carries the raw text statistics behind the scores.
	Stats TextStats `json:"stats" yaml:"stats"`
}

// Overall returns the weighted sum of the dimension scores.
func (m QualityMetrics) Overall() float64 {
	var total float64
	for dim, w := range m.Weights {
		total += m.Scores[dim] * w
	}
	return total
}

// Severity grades how badly a dimension misses its threshold.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank orders severities for sorting: high > medium > low.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	}
	return 0
}

// RevisionSuggestion is one actionable revision directive for a
// low-scoring dimension.
type RevisionSuggestion struct {
	// Dimension is the quality axis the suggestion addresses.
	Dimension Dimension `json:"dimension" yaml:"dimension"`

	// Severity grades the shortfall: high below 0.4, medium below 0.6,
	// low otherwise.
	Severity Severity `json:"severity" yaml:"severity"`

	// Directive is the actionable rewrite instruction.
	Directive string `json:"directive" yaml:"directive"`

	// Rationale explains why the directive was emitted.
	Rationale string `json:"rationale" yaml:"rationale"`
}
