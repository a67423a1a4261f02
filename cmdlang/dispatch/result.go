// File: result.go
// Title: Dispatch Result Types
// Description: Final states, per-attempt records, and the per-command and
//              batch result structures returned by the dispatcher. Results
//              are write-once; the dispatcher never mutates a result after
//              returning it.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package dispatch

import (
	"time"

	cmderror "github.com/beamctl/beamctl/core/error"
	"github.com/beamctl/beamctl/cmdlang/syntax"
)

// State is the terminal state of one dispatched command
type State string

const (
	// StateSucceeded means the host accepted the command
	StateSucceeded State = "succeeded"

	// StateFailed means execution was attempted and exhausted its attempts
	StateFailed State = "failed"

	// StateRejected means validation failed and execution was never attempted
	StateRejected State = "rejected"

	// StateNeedsConfirmation means the command is destructive and was not
	// executed; the caller must re-dispatch with confirmation
	StateNeedsConfirmation State = "needs-confirmation"

	// StateSkipped means a preceding batch item failed under the halt policy
	StateSkipped State = "skipped"
)

// Attempt records one execution attempt against the host
type Attempt struct {
	// Index is 1-based
	Index int

	// Result is the host's result string on success
	Result string

	// Err is the host's error on failure
	Err error

	// Duration is the wall-clock time of this attempt
	Duration time.Duration
}

// Result is the outcome of dispatching one command
type Result struct {
	// RequestID uniquely identifies this dispatch call
	RequestID string

	// Command is the command string as dispatched
	Command string

	// State is the terminal state
	State State

	// Executed reports whether the host was called at least once
	Executed bool

	// Output is the host's result string when State is StateSucceeded
	Output string

	// Err is set for StateRejected, StateFailed, and StateSkipped
	Err *cmderror.Error

	// Validation carries the syntax result, including warnings on success
	Validation syntax.ValidationResult

	// ConfirmationReason explains why confirmation is needed; set only for
	// StateNeedsConfirmation
	ConfirmationReason string

	// Severity of the destructive classification, when one matched
	Severity cmderror.Severity

	// Attempts lists every execution attempt in order
	Attempts []Attempt

	// Duration is the total wall-clock time of the dispatch call
	Duration time.Duration
}

// Succeeded reports whether the command reached the host and was accepted
func (r *Result) Succeeded() bool {
	return r.State == StateSucceeded
}

// BatchResult is the outcome of dispatching an ordered command list. The
// Results slice always has one entry per input command, in input order.
type BatchResult struct {
	RequestID string
	Results   []*Result

	// Halted reports whether the halt-on-failure policy stopped the batch
	Halted bool

	// HaltIndex is the 0-based index of the command that triggered the
	// halt; meaningful only when Halted
	HaltIndex int

	Duration time.Duration
}

// Succeeded reports whether every command in the batch succeeded
func (b *BatchResult) Succeeded() bool {
	for _, r := range b.Results {
		if !r.Succeeded() {
			return false
		}
	}
	return true
}
