package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by all providers.
var (
	// ErrNotFound means the provider answered cleanly but had no usable record.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited means the provider rejected the request with HTTP 429.
	ErrRateLimited = errors.New("rate limited")

	// ErrProviderUnavailable means the provider cannot be used at all for this
	// operation (missing credential, unsupported operation). The resolver
	// skips the provider without treating it as a hard failure.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// ErrorKind classifies provider failures that are not covered by sentinels.
type ErrorKind string

const (
	KindNetwork ErrorKind = "network"
	KindParse   ErrorKind = "parse"
)

// ProviderError wraps a transport or deserialization failure from a single
// provider attempt.
type ProviderError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Attempt records the outcome of one provider in a fallback chain.
type Attempt struct {
	Provider string
	Err      error
}

// AllProvidersFailedError is returned when every provider in the chain failed
// or returned an empty answer. Individual provider errors never propagate on
// their own; they are collected here.
type AllProvidersFailedError struct {
	Query    string
	Attempts []Attempt
}

func (e *AllProvidersFailedError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Provider, a.Err))
	}
	return fmt.Sprintf("all providers failed for %q: %s", e.Query, strings.Join(parts, "; "))
}
