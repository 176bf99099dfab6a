// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ProviderID names a configured generation backend.
type ProviderID string

const (
	ProviderAnthropic     ProviderID = "anthropic"
	ProviderOpenAI        ProviderID = "openai"
	ProviderDeterministic ProviderID = "deterministic"
)

// TerminationReason states why a revision cycle stopped.
type TerminationReason string

const (
	// ReasonAccepted: the overall score reached the acceptance threshold,
	// or no dimension fell below the suggestion threshold.
	ReasonAccepted TerminationReason = "accepted_threshold"

	// ReasonMaxIterations: the iteration budget ran out before acceptance.
	ReasonMaxIterations TerminationReason = "max_iterations"

	// ReasonNoImprovement: two consecutive revisions failed to beat the
	// best score by more than the configured epsilon.
	ReasonNoImprovement TerminationReason = "no_improvement"

	// ReasonProviderExhausted: every provider, including the deterministic
	// fallback, failed. Indicates a misconfigured fallback.
	ReasonProviderExhausted TerminationReason = "provider_exhausted"

	// ReasonCancelled: the caller's context was cancelled between
	// iterations.
	ReasonCancelled TerminationReason = "cancelled"
)

// RevisionRecord captures one iteration of the revision loop. Records are
// appended in strict iteration order and never mutated, so the history is
// an auditable log that supports rollback to the best-scoring candidate.
type RevisionRecord struct {
	// Iteration is the 1-based loop iteration that produced this record.
	Iteration int `json:"iteration" yaml:"iteration"`

	// PreScore is the assessment of the text before this revision.
	PreScore QualityMetrics `json:"pre_score" yaml:"pre_score"`

	// SuggestionsApplied lists the directives sent to the provider.
	SuggestionsApplied []RevisionSuggestion `json:"suggestions_applied" yaml:"suggestions_applied"`

	// PostScore is the assessment of the revised text.
	PostScore QualityMetrics `json:"post_score" yaml:"post_score"`

	// Provider identifies the backend that produced the revision.
	Provider ProviderID `json:"provider" yaml:"provider"`

	// Timestamp is when the record was appended (UTC).
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// CycleResult is the terminal value of one revision cycle.
type CycleResult struct {
	// FinalText is the best-scoring candidate observed during the cycle,
	// which is not necessarily the last revision.
	FinalText string `json:"final_text" yaml:"final_text"`

	// FinalScore is the assessment of FinalText.
	FinalScore QualityMetrics `json:"final_score" yaml:"final_score"`

	// History lists one record per completed revision iteration. It is
	// empty when the original text was accepted outright.
	History []RevisionRecord `json:"history" yaml:"history"`

	// Reason states why the cycle stopped.
	Reason TerminationReason `json:"reason" yaml:"reason"`
}
