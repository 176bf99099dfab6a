// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConfigurationError reports an invalid engine setup: an empty provider
// chain, a missing deterministic fallback, or malformed assessor weights.
// It is raised at construction time and never surfaces mid-cycle.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}
