// Package simerr defines the kernel's error taxonomy (§7). Only
// ConfigurationError (see worldpreset.ErrConfiguration) is fatal; every
// other kind is recovered locally by the component that detects it and
// logged once per unique key via a Reporter.
package simerr

import "errors"

var (
	// ErrState marks a StateError: a surface state references a body
	// that no longer exists in the universe (§7). Recovered by
	// downgrading to Flying.
	ErrState = errors.New("state error")

	// ErrNumerical marks a NumericalError: NaN/Inf observed in a pose.
	// Recovered by snapping to the last valid pose.
	ErrNumerical = errors.New("numerical error")

	// ErrContractViolation marks an out-of-range command value.
	// Recovered by clamping silently.
	ErrContractViolation = errors.New("contract violation")

	// ErrNotReady marks an action invoked before initWorld. Recovered
	// by ignoring the action and logging a warning.
	ErrNotReady = errors.New("not ready")
)

// Reporter logs a recoverable error exactly once per unique key, so
// that a steady-state fault (e.g. a vanished anchor body referenced
// every tick) does not flood the log. It has no export beyond this
// package's callers: every kernel component that can hit a
// recoverable error per §7 owns one Reporter instance.
type Reporter struct {
	seen map[string]bool
	sink func(format string, args ...any)
}

// NewReporter returns a Reporter that forwards unseen-key messages to
// sink (typically (*log.Logger).Printf).
func NewReporter(sink func(format string, args ...any)) *Reporter {
	return &Reporter{seen: make(map[string]bool), sink: sink}
}

// Once logs the formatted message the first time it is called with a
// given key, and is silent on every subsequent call with that key.
func (r *Reporter) Once(key, format string, args ...any) {
	if r.seen[key] {
		return
	}
	r.seen[key] = true
	if r.sink != nil {
		r.sink(format, args...)
	}
}
