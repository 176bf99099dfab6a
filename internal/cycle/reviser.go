// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cycle

import (
	"context"

	"github.com/pdiddy/revision-engine/internal/provider"
	"github.com/pdiddy/revision-engine/pkg/types"
)

// Invoker is the slice of the orchestrator the reviser needs; tests
// supply a mock.
type Invoker interface {
	Invoke(ctx context.Context, cap provider.Capability, req provider.Request) (provider.Result, error)
}

// ProviderReviser obtains candidate rewrites from the provider chain. All
// suggestion directives are batched into one revise request per iteration;
// a call per suggestion would multiply cost and latency. Provider errors
// propagate unchanged.
type ProviderReviser struct {
	invoker Invoker
}

// NewReviser returns a reviser over the given orchestrator.
func NewReviser(invoker Invoker) *ProviderReviser {
	return &ProviderReviser{invoker: invoker}
}

// Revise requests a rewrite of the content applying every suggestion. The
// content itself is never mutated.
func (r *ProviderReviser) Revise(ctx context.Context, content types.Content, suggestions []types.RevisionSuggestion) (string, types.ProviderID, error) {
	res, err := r.invoker.Invoke(ctx, provider.CapabilityRevise, provider.Request{
		Section:     content.Section,
		Text:        content.Text,
		Suggestions: suggestions,
	})
	if err != nil {
		return "", "", err
	}
	return res.Text, res.Provider, nil
}
