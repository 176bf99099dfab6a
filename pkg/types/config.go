// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ProviderSettings configures one generation backend in the fallback chain.
type ProviderSettings struct {
	// ID selects the backend: anthropic, openai, or deterministic.
	ID ProviderID `json:"id" yaml:"id"`

	// Model is the backend model identifier (e.g. "claude-sonnet-4-5-20250929").
	// Ignored by the deterministic backend.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// APIKey is the authentication key for the backend API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Timeout bounds a single call to the backend (default 60s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxRetries is the number of retry attempts on transient failures
	// before falling through to the next provider (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// HealthConfig tunes the orchestrator's provider-health bookkeeping.
type HealthConfig struct {
	// FailureThreshold is the number of consecutive fatal failures after
	// which a provider is skipped (default 3).
	FailureThreshold int `json:"failure_threshold" yaml:"failure_threshold"`

	// Cooldown is how long a failed provider stays skipped (default 30s).
	Cooldown time.Duration `json:"cooldown" yaml:"cooldown"`
}

// Normalize applies documented defaults in place.
func (c *HealthConfig) Normalize() {
	if c.FailureThreshold <= 0 {
		c.FailureThreshold = 3
	}
	if c.Cooldown <= 0 {
		c.Cooldown = 30 * time.Second
	}
}

// OrchestratorConfig holds the ordered provider chain. The last entry must
// be the deterministic backend so a call can always return a result.
type OrchestratorConfig struct {
	// Providers lists the backends in fallback order.
	Providers []ProviderSettings `json:"providers" yaml:"providers"`

	Health HealthConfig `json:"health" yaml:"health"`
}

// CycleConfig holds the revision loop's acceptance and termination policy.
// The documented defaults (0.8 acceptance, 0.7 suggestion floor) are
// configuration, not constants, so deployments can tune them per call.
type CycleConfig struct {
	// AcceptanceThreshold is the overall score at which revision stops
	// successfully (default 0.8).
	AcceptanceThreshold float64 `json:"acceptance_threshold" yaml:"acceptance_threshold"`

	// MinDimensionThreshold is the per-dimension score below which a
	// revision suggestion is emitted (default 0.7).
	MinDimensionThreshold float64 `json:"min_dimension_threshold" yaml:"min_dimension_threshold"`

	// MaxIterations bounds the number of revision iterations (default 3).
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`

	// Epsilon is the minimum overall-score gain counted as improvement
	// (default 0.01).
	Epsilon float64 `json:"epsilon" yaml:"epsilon"`
}

// Normalize applies documented defaults in place.
func (c *CycleConfig) Normalize() {
	if c.AcceptanceThreshold <= 0 {
		c.AcceptanceThreshold = 0.8
	}
	if c.MinDimensionThreshold <= 0 {
		c.MinDimensionThreshold = 0.7
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = 3
	}
	if c.Epsilon <= 0 {
		c.Epsilon = 0.01
	}
}

// AssessConfig holds settings for the quality assessor.
type AssessConfig struct {
	// Weights overrides the default dimension weights. When set, the
	// weights must cover every dimension and sum to 1.
	Weights map[Dimension]float64 `json:"weights,omitempty" yaml:"weights,omitempty"`

	// Tolerance is the fraction outside the word-count bounds at which
	// completeness reaches 0 (default 0.5).
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`
}

// EngineConfig groups the configuration for one revision engine instance.
type EngineConfig struct {
	Orchestrator OrchestratorConfig `json:"orchestrator" yaml:"orchestrator"`
	Cycle        CycleConfig        `json:"cycle" yaml:"cycle"`
	Assess       AssessConfig       `json:"assess" yaml:"assess"`

	// EventsDB is an optional path to a SQLite file for attempt and cycle
	// events. Empty disables the durable sink.
	EventsDB string `json:"events_db,omitempty" yaml:"events_db,omitempty"`
}
