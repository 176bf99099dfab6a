// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/revision-engine/pkg/types"
)

// FailureKind classifies a provider failure for retry and fallback
// decisions. Transient failures are retried with backoff; fatal failures
// skip retries, count against provider health, and advance the chain.
type FailureKind int

const (
	FailureTransient FailureKind = iota
	FailureFatal
)

func (k FailureKind) String() string {
	if k == FailureFatal {
		return "fatal"
	}
	return "transient"
}

// ProviderError wraps a backend failure with its classification.
type ProviderError struct {
	Provider types.ProviderID
	Kind     FailureKind
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %s failure: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Transient wraps err as a retryable failure.
func Transient(id types.ProviderID, err error) *ProviderError {
	return &ProviderError{Provider: id, Kind: FailureTransient, Err: err}
}

// Fatal wraps err as a non-retryable failure.
func Fatal(id types.ProviderID, err error) *ProviderError {
	return &ProviderError{Provider: id, Kind: FailureFatal, Err: err}
}

// ErrExhausted is returned when every provider in the chain, including
// the deterministic fallback, failed. Reaching it means the fallback is
// misconfigured; it is not an expected runtime condition.
var ErrExhausted = errors.New("all providers exhausted")

// classify wraps an unclassified backend error as a ProviderError. SDK
// errors surface status codes in their message, so classification checks
// the error chain first and falls back to string inspection.
func classify(id types.ProviderID, err error) *ProviderError {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr
	}

	// A deadline on the call context is a timeout: transient.
	if errors.Is(err, context.DeadlineExceeded) {
		return Transient(id, err)
	}

	msg := strings.ToLower(err.Error())

	// Rate limits and server-side trouble are retryable.
	if strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "overloaded") || strings.Contains(msg, "quota") {
		return Transient(id, err)
	}
	if strings.Contains(msg, "500") || strings.Contains(msg, "502") ||
		strings.Contains(msg, "503") || strings.Contains(msg, "504") ||
		strings.Contains(msg, "internal server error") ||
		strings.Contains(msg, "service unavailable") {
		return Transient(id, err)
	}
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") || strings.Contains(msg, "temporary failure") {
		return Transient(id, err)
	}

	// Auth problems and malformed requests will not succeed on retry.
	return Fatal(id, err)
}
