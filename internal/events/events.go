// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package events carries structured observability events out of the
// revision engine: one event per provider attempt and one summary per
// cycle. Events never include content bodies.
package events

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pdiddy/revision-engine/pkg/types"
)

// Outcome states how a provider attempt ended.
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeTransient Outcome = "transient"
	OutcomeFatal     Outcome = "fatal"
	OutcomeSkipped   Outcome = "skipped"
)

// AttemptEvent describes one call attempt against one provider.
type AttemptEvent struct {
	// Provider is the backend that was attempted.
	Provider types.ProviderID `json:"provider" yaml:"provider"`

	// Capability is the operation requested: generate or revise.
	Capability string `json:"capability" yaml:"capability"`

	// Outcome is ok, transient, fatal, or skipped (health cool-down).
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Attempt is the 1-based retry attempt within the provider.
	Attempt int `json:"attempt" yaml:"attempt"`

	// LatencyMS is the call latency in milliseconds (0 when skipped).
	LatencyMS int64 `json:"latency_ms" yaml:"latency_ms"`

	// Timestamp is when the attempt finished (UTC).
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// CycleEvent summarizes one finished revision cycle.
type CycleEvent struct {
	// Section is the section type that was revised.
	Section types.SectionType `json:"section" yaml:"section"`

	// Reason states why the cycle stopped.
	Reason types.TerminationReason `json:"reason" yaml:"reason"`

	// Iterations is the number of completed revision iterations.
	Iterations int `json:"iterations" yaml:"iterations"`

	// FinalScore is the overall score of the returned candidate.
	FinalScore float64 `json:"final_score" yaml:"final_score"`

	// Timestamp is when the cycle finished (UTC).
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Sink receives engine events. Implementations must be safe for
// concurrent use; cycles on different content share one sink.
type Sink interface {
	Attempt(AttemptEvent)
	Cycle(CycleEvent)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Attempt(AttemptEvent) {}
func (NopSink) Cycle(CycleEvent)     {}

// WriterSink writes one line per event to w.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink that logs events to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Attempt(e AttemptEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "attempt provider=%s capability=%s outcome=%s attempt=%d latency=%dms\n",
		e.Provider, e.Capability, e.Outcome, e.Attempt, e.LatencyMS)
}

func (s *WriterSink) Cycle(e CycleEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "cycle section=%s reason=%s iterations=%d score=%.3f\n",
		e.Section, e.Reason, e.Iterations, e.FinalScore)
}

// MultiSink fans events out to several sinks.
type MultiSink []Sink

func (m MultiSink) Attempt(e AttemptEvent) {
	for _, s := range m {
		s.Attempt(e)
	}
}

func (m MultiSink) Cycle(e CycleEvent) {
	for _, s := range m {
		s.Cycle(e)
	}
}
