// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assess scores section text across weighted quality dimensions.
// Scoring is a pure function of (text, section type): no network, no
// mutable state, identical input always yields identical scores.
package assess

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/pdiddy/revision-engine/pkg/types"
)

const defaultTolerance = 0.5

// Ideal academic sentence length in words.
const (
	idealSentenceMin = 15.0
	idealSentenceMax = 25.0
)

// DefaultWeights returns the standard dimension weights.
func DefaultWeights() map[types.Dimension]float64 {
	return map[types.Dimension]float64{
		types.DimClarity:         0.25,
		types.DimCoherence:       0.25,
		types.DimAcademicTone:    0.20,
		types.DimCompleteness:    0.15,
		types.DimCitationQuality: 0.15,
	}
}

// Assessor computes quality metrics for section text.
type Assessor struct {
	weights   map[types.Dimension]float64
	tolerance float64
}

// New validates cfg and returns an assessor. Missing dimensions or weights
// that do not sum to 1 are a *types.ConfigurationError, surfaced here
// rather than per call.
func New(cfg types.AssessConfig) (*Assessor, error) {
	weights := cfg.Weights
	if weights == nil {
		weights = DefaultWeights()
	}

	var sum float64
	for _, dim := range types.Dimensions() {
		w, ok := weights[dim]
		if !ok {
			return nil, &types.ConfigurationError{Reason: fmt.Sprintf("weights missing dimension %q", dim)}
		}
		if w < 0 {
			return nil, &types.ConfigurationError{Reason: fmt.Sprintf("weight for %q is negative", dim)}
		}
		sum += w
	}
	if len(weights) != len(types.Dimensions()) {
		return nil, &types.ConfigurationError{Reason: "weights contain an unknown dimension"}
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return nil, &types.ConfigurationError{Reason: fmt.Sprintf("weights sum to %.4f, want 1", sum)}
	}

	tolerance := cfg.Tolerance
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}
	if tolerance > 1 {
		return nil, &types.ConfigurationError{Reason: fmt.Sprintf("tolerance %.2f exceeds 1", tolerance)}
	}

	return &Assessor{weights: weights, tolerance: tolerance}, nil
}

// Assess scores the content on every dimension. Empty text scores 0
// everywhere.
func (a *Assessor) Assess(content types.Content) types.QualityMetrics {
	weights := make(map[types.Dimension]float64, len(a.weights))
	for dim, w := range a.weights {
		weights[dim] = w
	}

	text := content.Text
	words := strings.Fields(text)
	if len(words) == 0 {
		scores := make(map[types.Dimension]float64, len(weights))
		for dim := range weights {
			scores[dim] = 0
		}
		return types.QualityMetrics{Scores: scores, Weights: weights}
	}

	sentences := splitSentences(text)
	stats := types.TextStats{
		WordCount:     len(words),
		SentenceCount: len(sentences),
	}
	if stats.SentenceCount > 0 {
		stats.AvgSentenceLen = float64(stats.WordCount) / float64(stats.SentenceCount)
	}

	completeness := elementWeight*elementCoverage(text, content.Section) +
		(1-elementWeight)*completenessScore(stats.WordCount, content.Bounds(), a.tolerance)

	scores := map[types.Dimension]float64{
		types.DimClarity:         clarityScore(text, stats),
		types.DimCoherence:       coherenceScore(text, stats),
		types.DimAcademicTone:    toneScore(text),
		types.DimCompleteness:    completeness,
		types.DimCitationQuality: citationScore(text, content.Section, stats.WordCount),
	}

	return types.QualityMetrics{Scores: scores, Weights: weights, Stats: stats}
}

// sentenceBoundary splits on terminal punctuation runs.
var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

func splitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	var sentences []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// elementWeight is the share of the completeness score carried by the
// section element checklist; word-count interpolation carries the rest.
const elementWeight = 0.1

// sectionElements lists the content elements each section type is
// expected to mention.
var sectionElements = map[types.SectionType][]string{
	types.SectionAbstract:     {"background", "methods", "results", "conclusion"},
	types.SectionIntroduction: {"background", "problem", "objectives", "significance"},
	types.SectionMethods:      {"procedure", "materials", "analysis", "validation"},
	types.SectionResults:      {"findings", "data", "statistics", "observations"},
	types.SectionDiscussion:   {"interpretation", "implications", "limitations", "future"},
}

// elementCoverage returns the fraction of the section's expected
// elements that appear in the text. Unknown section types use the
// introduction checklist, mirroring Content.Bounds.
func elementCoverage(text string, section types.SectionType) float64 {
	elements, ok := sectionElements[section]
	if !ok {
		elements = sectionElements[types.SectionIntroduction]
	}
	lower := strings.ToLower(text)
	found := 0
	for _, e := range elements {
		if strings.Contains(lower, e) {
			found++
		}
	}
	return float64(found) / float64(len(elements))
}

// completenessScore interpolates word count against the section bounds.
// Counts outside the bounds by more than tolerance score 0; counts inside
// the bounds score 1; the edges ramp linearly so a near-miss length is
// never scored like empty text.
func completenessScore(wordCount int, bounds types.WordBounds, tolerance float64) float64 {
	wc := float64(wordCount)
	min := float64(bounds.Min)
	max := float64(bounds.Max)
	floor := min * (1 - tolerance)
	ceiling := max * (1 + tolerance)

	switch {
	case wc <= floor:
		return 0
	case wc < min:
		return (wc - floor) / (min - floor)
	case wc <= max:
		return 1
	case wc < ceiling:
		return (ceiling - wc) / (ceiling - max)
	default:
		return 0
	}
}

// clauseMarkers count toward syntactic density: commas, semicolons, and
// parenthesized asides.
func clauseMarkers(text string) int {
	return strings.Count(text, ",") + strings.Count(text, ";") + strings.Count(text, "(")
}

// clarityScore rewards sentence lengths near the academic ideal and
// penalizes clause-dense sentences.
func clarityScore(text string, stats types.TextStats) float64 {
	if stats.SentenceCount == 0 {
		return 0
	}
	avg := stats.AvgSentenceLen

	var score float64
	switch {
	case avg >= idealSentenceMin && avg <= idealSentenceMax:
		score = 1
	case avg < idealSentenceMin:
		score = 0.6 + 0.4*avg/idealSentenceMin
	default:
		score = 1 - (avg-idealSentenceMax)/idealSentenceMax
	}

	density := float64(clauseMarkers(text)) / float64(stats.SentenceCount)
	if density > 2 {
		score -= 0.08 * (density - 2)
	}
	return clamp(score)
}

// transitionMarkers matches connectives that signal logical flow.
var transitionMarkers = regexp.MustCompile(`\b(however|therefore|furthermore|moreover|consequently|thus|nevertheless|in addition|in contrast|as a result|because|since|subsequently|although|whereas|similarly)\b`)

// coherenceScore measures connective density and paragraph structure.
func coherenceScore(text string, stats types.TextStats) float64 {
	if stats.SentenceCount == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	markers := len(transitionMarkers.FindAllString(lower, -1))
	perSentence := float64(markers) / float64(stats.SentenceCount)

	score := 0.45 + math.Min(0.4, 0.8*perSentence)

	if countParagraphs(text) >= 2 {
		score += 0.15
	}
	return clamp(score)
}

func countParagraphs(text string) int {
	n := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

var (
	contractionPattern = regexp.MustCompile(`(?i)\b(can't|don't|won't|it's|that's|there's|isn't|aren't|wasn't|doesn't|didn't|we're|they're|i'm|you're|let's|couldn't|wouldn't|shouldn't)\b`)
	casualPattern      = regexp.MustCompile(`(?i)\b(really|pretty|very|basically|actually|okay|huge|stuff)\b|\b(kind of|sort of|a lot)\b`)
	casualFirstPerson  = regexp.MustCompile(`(?i)\bI (think|feel|guess|believe)\b`)
	formalPattern      = regexp.MustCompile(`(?i)\b(suggests?|indicates?|demonstrates?|may|might|appears?|arguably|analysis|methodology|findings|significant|evidence|therefore|moreover|hypothesis|examined?)\b`)
)

// toneScore penalizes informal register markers and rewards hedged,
// formal vocabulary.
func toneScore(text string) float64 {
	informal := len(contractionPattern.FindAllString(text, -1)) +
		len(casualPattern.FindAllString(text, -1)) +
		len(casualFirstPerson.FindAllString(text, -1))
	formal := len(formalPattern.FindAllString(text, -1))
	exclamations := strings.Count(text, "!")

	score := 0.6 +
		math.Min(0.3, 0.03*float64(formal)) -
		math.Min(0.35, 0.08*float64(informal)) -
		math.Min(0.2, 0.1*float64(exclamations))
	return clamp(score)
}

// citationsPerHundredWords is the expected in-text citation density per
// section type. Methods and results sections cite less than introduction
// and discussion sections.
var citationsPerHundredWords = map[types.SectionType]float64{
	types.SectionAbstract:     0.5,
	types.SectionIntroduction: 1.5,
	types.SectionMethods:      0.75,
	types.SectionResults:      0.75,
	types.SectionDiscussion:   1.5,
}

var (
	// bracketCitation matches inline keys: [Key] or [Key1; Key2].
	bracketCitation = regexp.MustCompile(`\[([^\[\]]+)\]`)

	// parenCitation matches author-year parentheticals: (Smith, 2020).
	parenCitation = regexp.MustCompile(`\([^()]*\d{4}[^()]*\)`)
)

// citationScore compares the citation-marker density against the
// section-type expectation.
func citationScore(text string, section types.SectionType, wordCount int) float64 {
	if wordCount == 0 {
		return 0
	}
	count := len(parenCitation.FindAllString(text, -1))
	for _, m := range bracketCitation.FindAllStringSubmatch(text, -1) {
		for _, part := range strings.Split(m[1], ";") {
			if isCitationKey(strings.TrimSpace(part)) {
				count++
			}
		}
	}

	expected := citationsPerHundredWords[section]
	if expected == 0 {
		expected = 1
	}
	density := float64(count) * 100 / float64(wordCount)
	return clamp(density / expected)
}

// isCitationKey checks whether a string looks like an AuthorYear citation
// key. It rejects Markdown links and other bracket content: keys are
// alphanumeric with at least one letter and one digit.
func isCitationKey(s string) bool {
	hasLetter := false
	hasDigit := false
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			hasLetter = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case c == '-', c == '_':
			// allowed
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}
