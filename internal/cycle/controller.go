// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cycle drives the assess-suggest-revise loop until acceptance or
// a termination condition. The loop is an explicit state machine: each
// run walks Assessing -> (Accepted | Suggesting -> Revising -> Assessing)
// and finishes with an enumerated termination reason rather than an
// error, since running out of iterations or improvement is an expected
// outcome, not a failure.
package cycle

import (
	"context"
	"time"

	"github.com/pdiddy/revision-engine/internal/assess"
	"github.com/pdiddy/revision-engine/internal/events"
	"github.com/pdiddy/revision-engine/internal/provider"
	"github.com/pdiddy/revision-engine/internal/suggest"
	"github.com/pdiddy/revision-engine/pkg/types"
)

// Assessor scores content; the production implementation is
// assess.Assessor.
type Assessor interface {
	Assess(content types.Content) types.QualityMetrics
}

// Reviser produces a candidate rewrite for content under the given
// suggestions and reports which provider produced it.
type Reviser interface {
	Revise(ctx context.Context, content types.Content, suggestions []types.RevisionSuggestion) (string, types.ProviderID, error)
}

// SuggestFunc converts metrics into revision suggestions given the
// per-dimension threshold.
type SuggestFunc func(m types.QualityMetrics, threshold float64) []types.RevisionSuggestion

// Controller owns one revision cycle's state and history. Each Run is a
// single sequential pipeline: every iteration depends on the previous
// one's output. Independent contents may run concurrently through
// separate Run calls; the only shared state is the orchestrator's
// provider-health table.
type Controller struct {
	assessor Assessor
	suggest  SuggestFunc
	reviser  Reviser
	cfg      types.CycleConfig
	sink     events.Sink
}

// NewController returns a controller using the standard suggestion
// generator. cfg defaults are applied via Normalize.
func NewController(assessor Assessor, reviser Reviser, cfg types.CycleConfig, sink events.Sink) *Controller {
	cfg.Normalize()
	if sink == nil {
		sink = events.NopSink{}
	}
	return &Controller{
		assessor: assessor,
		suggest:  suggest.Suggest,
		reviser:  reviser,
		cfg:      cfg,
		sink:     sink,
	}
}

// NewFromConfig wires the full engine: assessor, provider chain,
// reviser, and controller. Configuration mistakes surface here as
// *types.ConfigurationError before any cycle runs.
func NewFromConfig(cfg types.EngineConfig, sink events.Sink) (*Controller, error) {
	assessor, err := assess.New(cfg.Assess)
	if err != nil {
		return nil, err
	}
	orch, err := provider.FromConfig(cfg.Orchestrator, sink)
	if err != nil {
		return nil, err
	}
	return NewController(assessor, NewReviser(orch), cfg.Cycle, sink), nil
}

// noImprovementLimit is the number of consecutive sub-epsilon iterations
// tolerated before the loop stops; it guards against oscillation and
// degenerate revisions.
const noImprovementLimit = 2

// Run executes the revision cycle on content and returns the terminal
// result. Run never returns an error: provider exhaustion, cancellation,
// and budget exhaustion are all reported through the termination reason,
// and the result always carries the best-scoring candidate observed.
func (c *Controller) Run(ctx context.Context, content types.Content) types.CycleResult {
	current := content
	metrics := c.assessor.Assess(current)

	bestText := current.Text
	bestScore := metrics
	noImprove := 0
	var history []types.RevisionRecord

	finish := func(reason types.TerminationReason) types.CycleResult {
		c.sink.Cycle(events.CycleEvent{
			Section:    content.Section,
			Reason:     reason,
			Iterations: len(history),
			FinalScore: bestScore.Overall(),
			Timestamp:  time.Now().UTC(),
		})
		return types.CycleResult{
			FinalText:  bestText,
			FinalScore: bestScore,
			History:    history,
			Reason:     reason,
		}
	}

	for {
		// Assessing -> Accepted.
		if metrics.Overall() >= c.cfg.AcceptanceThreshold {
			return finish(types.ReasonAccepted)
		}
		suggestions := c.suggest(metrics, c.cfg.MinDimensionThreshold)
		if len(suggestions) == 0 {
			return finish(types.ReasonAccepted)
		}

		// Termination guards, checked between iterations.
		if noImprove >= noImprovementLimit {
			return finish(types.ReasonNoImprovement)
		}
		if len(history) >= c.cfg.MaxIterations {
			return finish(types.ReasonMaxIterations)
		}
		if ctx.Err() != nil {
			return finish(types.ReasonCancelled)
		}

		// Suggesting -> Revising.
		revised, providerID, err := c.reviser.Revise(ctx, current, suggestions)
		if err != nil {
			if ctx.Err() != nil {
				return finish(types.ReasonCancelled)
			}
			return finish(types.ReasonProviderExhausted)
		}

		// Revising -> Assessing. The record is appended before the next
		// iteration begins; history stays in strict iteration order.
		pre := metrics
		current = types.Content{Text: revised, Section: content.Section}
		post := c.assessor.Assess(current)
		history = append(history, types.RevisionRecord{
			Iteration:          len(history) + 1,
			PreScore:           pre,
			SuggestionsApplied: suggestions,
			PostScore:          post,
			Provider:           providerID,
			Timestamp:          time.Now().UTC(),
		})

		if post.Overall() > bestScore.Overall()+c.cfg.Epsilon {
			noImprove = 0
		} else {
			noImprove++
		}
		if post.Overall() > bestScore.Overall() {
			bestText = revised
			bestScore = post
		}
		metrics = post
	}
}
