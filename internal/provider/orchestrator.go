// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pdiddy/revision-engine/internal/events"
	"github.com/pdiddy/revision-engine/pkg/types"
)

// retryBaseDelay controls the base duration for exponential backoff on
// transient failures. Tests override this to avoid real sleeps.
var retryBaseDelay = 500 * time.Millisecond

const (
	defaultMaxRetries = 3
	defaultTimeout    = 60 * time.Second
)

// Entry pairs a provider with its per-call settings.
type Entry struct {
	Provider   Provider
	Timeout    time.Duration
	MaxRetries int
}

// Orchestrator walks an ordered provider chain until one call succeeds.
// Transient failures are retried with exponential backoff before falling
// through; fatal failures fall through immediately and count against the
// provider's health. The final chain entry is a deterministic backend, so
// Invoke always returns a result unless the caller's context is cancelled
// or the chain is misconfigured.
type Orchestrator struct {
	entries []Entry
	health  *healthTable
	sink    events.Sink
}

// NewOrchestrator validates the chain and returns an orchestrator.
// An empty chain or a final entry that is not always-available is a
// *types.ConfigurationError: those mistakes surface at construction, never
// mid-cycle.
func NewOrchestrator(entries []Entry, health types.HealthConfig, sink events.Sink) (*Orchestrator, error) {
	if len(entries) == 0 {
		return nil, &types.ConfigurationError{Reason: "provider chain is empty"}
	}
	last := entries[len(entries)-1]
	if last.Provider == nil || !last.Provider.AlwaysAvailable() {
		return nil, &types.ConfigurationError{Reason: "final provider must be the deterministic fallback"}
	}
	if sink == nil {
		sink = events.NopSink{}
	}

	normalized := make([]Entry, len(entries))
	for i, e := range entries {
		if e.Provider == nil {
			return nil, &types.ConfigurationError{Reason: fmt.Sprintf("provider chain entry %d is nil", i)}
		}
		if e.Timeout <= 0 {
			e.Timeout = defaultTimeout
		}
		if e.MaxRetries <= 0 {
			e.MaxRetries = defaultMaxRetries
		}
		normalized[i] = e
	}

	return &Orchestrator{
		entries: normalized,
		health:  newHealthTable(health),
		sink:    sink,
	}, nil
}

// Invoke dispatches the request to the provider chain and returns the
// first successful result. The error is non-nil only when the caller's
// context ends or every provider fails (which requires a misconfigured
// fallback).
func (o *Orchestrator) Invoke(ctx context.Context, cap Capability, req Request) (Result, error) {
	var lastErr error

	for _, e := range o.entries {
		id := e.Provider.ID()

		if !o.health.available(id) {
			o.sink.Attempt(events.AttemptEvent{
				Provider:   id,
				Capability: string(cap),
				Outcome:    events.OutcomeSkipped,
				Timestamp:  time.Now().UTC(),
			})
			continue
		}

		text, err := o.tryProvider(ctx, e, cap, req)
		if err == nil {
			o.health.recordSuccess(id)
			return Result{Text: text, Provider: id}, nil
		}
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		lastErr = err
	}

	if lastErr != nil {
		return Result{}, fmt.Errorf("%s: %w: %w", cap, ErrExhausted, lastErr)
	}
	return Result{}, fmt.Errorf("%s: %w", cap, ErrExhausted)
}

// tryProvider runs one provider with its retry budget. Only transient
// failures consume retries; the first fatal failure returns immediately
// and is recorded in the health table.
func (o *Orchestrator) tryProvider(ctx context.Context, e Entry, cap Capability, req Request) (string, error) {
	id := e.Provider.ID()
	var lastErr error

	for attempt := 1; attempt <= e.MaxRetries; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(math.Pow(2, float64(attempt-2))) * retryBaseDelay
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, e.Timeout)
		start := time.Now()
		text, err := dispatch(callCtx, e.Provider, cap, req)
		latency := time.Since(start)
		cancel()

		if err == nil {
			o.sink.Attempt(events.AttemptEvent{
				Provider:   id,
				Capability: string(cap),
				Outcome:    events.OutcomeOK,
				Attempt:    attempt,
				LatencyMS:  latency.Milliseconds(),
				Timestamp:  time.Now().UTC(),
			})
			return text, nil
		}

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		perr := classify(id, err)
		outcome := events.OutcomeTransient
		if perr.Kind == FailureFatal {
			outcome = events.OutcomeFatal
		}
		o.sink.Attempt(events.AttemptEvent{
			Provider:   id,
			Capability: string(cap),
			Outcome:    outcome,
			Attempt:    attempt,
			LatencyMS:  latency.Milliseconds(),
			Timestamp:  time.Now().UTC(),
		})

		if perr.Kind == FailureFatal {
			o.health.recordFatal(id)
			return "", perr
		}
		lastErr = perr
	}

	return "", lastErr
}

// dispatch routes a capability to the provider method.
func dispatch(ctx context.Context, p Provider, cap Capability, req Request) (string, error) {
	switch cap {
	case CapabilityGenerate:
		return p.Generate(ctx, req)
	case CapabilityRevise:
		return p.Revise(ctx, req)
	default:
		return "", Fatal(p.ID(), fmt.Errorf("unknown capability %q", cap))
	}
}

// FromConfig builds the provider chain described by cfg and returns the
// orchestrator over it. Unknown provider IDs are a *types.ConfigurationError.
func FromConfig(cfg types.OrchestratorConfig, sink events.Sink) (*Orchestrator, error) {
	entries := make([]Entry, 0, len(cfg.Providers))
	for _, ps := range cfg.Providers {
		var p Provider
		switch ps.ID {
		case types.ProviderAnthropic:
			if ps.APIKey == "" {
				return nil, &types.ConfigurationError{Reason: "anthropic provider requires an API key"}
			}
			p = NewAnthropicProvider(ps.Model, ps.APIKey)
		case types.ProviderOpenAI:
			if ps.APIKey == "" {
				return nil, &types.ConfigurationError{Reason: "openai provider requires an API key"}
			}
			p = NewOpenAIProvider(ps.Model, ps.APIKey)
		case types.ProviderDeterministic:
			p = NewRuleBasedProvider()
		default:
			return nil, &types.ConfigurationError{Reason: fmt.Sprintf("unknown provider id %q", ps.ID)}
		}
		entries = append(entries, Entry{Provider: p, Timeout: ps.Timeout, MaxRetries: ps.MaxRetries})
	}
	return NewOrchestrator(entries, cfg.Health, sink)
}
