// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package provider implements the generation-backend orchestrator: a
// uniform capability interface over interchangeable text backends with
// ordered fallback, retry with backoff on transient failures, per-provider
// health tracking, and a deterministic last-resort backend that cannot
// fail. Each backend (Anthropic, OpenAI, deterministic) implements the
// Provider interface per the Strategy pattern.
package provider

import (
	"context"

	"github.com/pdiddy/revision-engine/pkg/types"
)

// Capability names an operation a provider can perform.
type Capability string

const (
	CapabilityGenerate Capability = "generate"
	CapabilityRevise   Capability = "revise"
)

// Request carries the inputs for one generate or revise call.
type Request struct {
	// Section is the section type being written or revised.
	Section types.SectionType

	// Topic is the generation subject (generate only).
	Topic string

	// Text is the current section text (revise only).
	Text string

	// Suggestions are the revision directives to apply (revise only).
	Suggestions []types.RevisionSuggestion
}

// Result is the outcome of a successful Invoke.
type Result struct {
	// Text is the generated or revised section text.
	Text string

	// Provider identifies the backend that produced the text.
	Provider types.ProviderID
}

// Provider is one interchangeable generation backend.
type Provider interface {
	// ID returns the provider identifier used in configuration, health
	// bookkeeping, and events.
	ID() types.ProviderID

	// AlwaysAvailable reports whether the provider is guaranteed to
	// succeed. Only the deterministic backend returns true; the
	// orchestrator requires such a backend as the final chain entry.
	AlwaysAvailable() bool

	// Generate produces new section text for a topic.
	Generate(ctx context.Context, req Request) (string, error)

	// Revise rewrites req.Text according to req.Suggestions.
	Revise(ctx context.Context, req Request) (string, error)
}
