// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"sync"
	"time"

	"github.com/pdiddy/revision-engine/pkg/types"
)

// healthTable tracks consecutive fatal failures per provider. After the
// failure threshold is reached the provider is skipped until the cool-down
// window elapses. The table is the only mutable state shared across
// concurrent cycles; all access goes through the mutex. Mis-marking costs
// at most one wasted attempt, so readers tolerate staleness.
type healthTable struct {
	mu        sync.Mutex
	threshold int
	cooldown  time.Duration
	now       func() time.Time
	states    map[types.ProviderID]*healthState
}

type healthState struct {
	consecutiveFatals int
	unavailableUntil  time.Time
}

func newHealthTable(cfg types.HealthConfig) *healthTable {
	cfg.Normalize()
	return &healthTable{
		threshold: cfg.FailureThreshold,
		cooldown:  cfg.Cooldown,
		now:       time.Now,
		states:    make(map[types.ProviderID]*healthState),
	}
}

// available reports whether the provider may be invoked. A provider whose
// cool-down window has elapsed becomes available again with a fresh
// failure count.
func (h *healthTable) available(id types.ProviderID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	st, ok := h.states[id]
	if !ok {
		return true
	}
	if st.unavailableUntil.IsZero() {
		return true
	}
	if h.now().After(st.unavailableUntil) {
		st.unavailableUntil = time.Time{}
		st.consecutiveFatals = 0
		return true
	}
	return false
}

// recordFatal counts one fatal failure and opens the cool-down window
// when the threshold is reached.
func (h *healthTable) recordFatal(id types.ProviderID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	st, ok := h.states[id]
	if !ok {
		st = &healthState{}
		h.states[id] = st
	}
	st.consecutiveFatals++
	if st.consecutiveFatals >= h.threshold {
		st.unavailableUntil = h.now().Add(h.cooldown)
	}
}

// recordSuccess resets the provider's failure count.
func (h *healthTable) recordSuccess(id types.ProviderID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if st, ok := h.states[id]; ok {
		st.consecutiveFatals = 0
		st.unavailableUntil = time.Time{}
	}
}
