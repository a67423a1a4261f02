// File: dispatch.go
// Title: Execution Dispatcher
// Description: Orchestrates the command pipeline against the host runtime:
//              syntax validation, destructive-action confirmation gating,
//              sequential execution with bounded retries, and ordered batch
//              processing with a halt-on-failure policy. Every attempt is
//              logged through the structured logger.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package dispatch

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/beamctl/beamctl/core/config"
	cmderror "github.com/beamctl/beamctl/core/error"
	"github.com/beamctl/beamctl/core/log"
	"github.com/beamctl/beamctl/cmdlang/safety"
	"github.com/beamctl/beamctl/cmdlang/syntax"
)

// Options configures a dispatcher. Use DefaultOptions as the base and
// override individual fields.
type Options struct {
	// Runner is the host runtime. Required.
	Runner Runner

	// Logger receives per-attempt diagnostics. Nil uses the default logger.
	Logger *log.Logger

	// Profile is the grammar profile for validation and classification.
	// Nil uses the built-in defaults.
	Profile *config.GrammarProfile

	// MaxAttempts per command; 1 means no retry. Retries are sequential
	// with no backoff.
	MaxAttempts int

	// SafetyCheck runs the destructive classifier before execution
	SafetyCheck bool

	// ConfirmDestructive withholds execution of destructive commands whose
	// severity requires confirmation until the caller re-dispatches with
	// confirmation. Low-severity matches execute without the gate.
	ConfirmDestructive bool

	// HaltOnError stops remaining batch items after a failure. When false,
	// a failed item is recorded and the batch continues.
	HaltOnError bool

	// Timeout bounds one dispatch call. Best effort: it is checked between
	// attempts and batch items and bounds waiting on the host, but cannot
	// preempt an already-dispatched synchronous call. 0 disables it.
	Timeout time.Duration

	// Undo and Target are opaque handles forwarded to the host
	Undo   Handle
	Target Handle
}

// DefaultOptions returns the dispatcher defaults: single attempt, safety
// checking and confirmation on, halt on error, no timeout.
func DefaultOptions() Options {
	return Options{
		MaxAttempts:        1,
		SafetyCheck:        true,
		ConfirmDestructive: true,
		HaltOnError:        true,
	}
}

// OptionsFromConfig maps the execution section of a configuration file onto
// dispatcher options
func OptionsFromConfig(cfg config.ExecutionConfig) Options {
	return Options{
		MaxAttempts:        cfg.MaxAttempts,
		SafetyCheck:        cfg.SafetyCheck,
		ConfirmDestructive: cfg.ConfirmDestructive,
		HaltOnError:        cfg.HaltOnError,
		Timeout:            cfg.Timeout(),
	}
}

// Dispatcher drives commands through validation, confirmation gating, and
// execution. It is stateless between calls and safe for sequential reuse.
type Dispatcher struct {
	opts       Options
	validator  *syntax.Validator
	classifier *safety.Classifier
	logger     *log.Logger
}

// New creates a dispatcher. The runner is required; everything else has
// working defaults.
func New(opts Options) (*Dispatcher, error) {
	if opts.Runner == nil {
		return nil, cmderror.New("dispatcher requires a runner").
			WithCode(cmderror.CodeConfigInvalid).
			WithOperation("dispatch.New")
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	return &Dispatcher{
		opts:       opts,
		validator:  syntax.New(opts.Profile),
		classifier: safety.New(opts.Profile),
		logger:     logger.WithField("component", "dispatch"),
	}, nil
}

// Dispatch validates and executes one command. Destructive commands of
// medium or higher severity return a StateNeedsConfirmation result without
// touching the host; obtain the user's confirmation and call
// DispatchConfirmed.
func (d *Dispatcher) Dispatch(ctx context.Context, command string) *Result {
	return d.dispatch(ctx, command, false)
}

// DispatchConfirmed executes one command with the confirmation gate already
// satisfied. Validation and logging still apply.
func (d *Dispatcher) DispatchConfirmed(ctx context.Context, command string) *Result {
	return d.dispatch(ctx, command, true)
}

// DispatchBatch executes commands strictly in order. The returned result
// always carries one entry per input command: executed, failed, or skipped
// under the halt policy. Confirmation gating applies per item.
func (d *Dispatcher) DispatchBatch(ctx context.Context, commands []string) *BatchResult {
	started := time.Now()
	batch := &BatchResult{
		RequestID: uuid.NewString(),
		Results:   make([]*Result, 0, len(commands)),
	}

	ctx, cancel := d.bound(ctx)
	defer cancel()

	halted := false
	for i, command := range commands {
		if halted {
			batch.Results = append(batch.Results, d.skipped(command, batch.HaltIndex))
			continue
		}

		result := d.dispatch(ctx, command, false)
		batch.Results = append(batch.Results, result)

		if !result.Succeeded() && d.opts.HaltOnError {
			halted = true
			batch.Halted = true
			batch.HaltIndex = i
			d.logger.Warn("batch halted", log.Fields{
				"request_id": batch.RequestID,
				"index":      i,
				"command":    command,
			})
		}
	}

	batch.Duration = time.Since(started)
	return batch
}

// DispatchAsync validates the command and enqueues it on the host without
// waiting. Destructive commands are still gated.
func (d *Dispatcher) DispatchAsync(command string) error {
	if err := d.preflight(command); err != nil {
		return err
	}
	d.logger.Debug("enqueueing command", log.Fields{"command": command})
	return d.opts.Runner.ExecuteAsync(command, d.opts.Undo, d.opts.Target)
}

// DispatchAsyncAndWait validates the command, enqueues it, and blocks until
// that queued item completes
func (d *Dispatcher) DispatchAsyncAndWait(ctx context.Context, command string) error {
	if err := d.preflight(command); err != nil {
		return err
	}
	ctx, cancel := d.bound(ctx)
	defer cancel()
	d.logger.Debug("enqueueing command and waiting", log.Fields{"command": command})
	return d.opts.Runner.ExecuteAsyncAndWait(ctx, command, d.opts.Undo, d.opts.Target)
}

// dispatch runs the per-command state machine: validate, gate, execute
// with retries
func (d *Dispatcher) dispatch(ctx context.Context, command string, confirmed bool) *Result {
	started := time.Now()
	result := &Result{
		RequestID: uuid.NewString(),
		Command:   command,
	}

	result.Validation = d.validator.Validate(command)
	if !result.Validation.Valid {
		result.State = StateRejected
		result.Err = result.Validation.Err
		result.Duration = time.Since(started)
		d.logger.Warn("command rejected", log.Fields{
			"request_id": result.RequestID,
			"command":    command,
			"error":      result.Err.Error(),
		})
		return result
	}

	if d.opts.SafetyCheck {
		classification := d.classifier.Classify(command)
		if classification.Destructive {
			result.Severity = classification.Severity
			if d.opts.ConfirmDestructive && !confirmed && classification.Severity.RequiresConfirmation() {
				result.State = StateNeedsConfirmation
				result.ConfirmationReason = classification.Reason
				result.Duration = time.Since(started)
				d.logger.Info("confirmation required", log.Fields{
					"request_id": result.RequestID,
					"command":    command,
					"reason":     classification.Reason,
					"severity":   classification.Severity.String(),
				})
				return result
			}
		}
	}

	ctx, cancel := d.bound(ctx)
	defer cancel()

	d.execute(ctx, result)
	result.Duration = time.Since(started)
	return result
}

// execute runs up to MaxAttempts sequential attempts against the host and
// records each one
func (d *Dispatcher) execute(ctx context.Context, result *Result) {
	for attempt := 1; attempt <= d.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			result.State = StateFailed
			result.Err = d.timeoutError(result, err)
			return
		}

		attemptStarted := time.Now()
		output, err := d.opts.Runner.ExecuteSync(ctx, result.Command, d.opts.Undo)
		record := Attempt{
			Index:    attempt,
			Result:   output,
			Err:      err,
			Duration: time.Since(attemptStarted),
		}
		result.Executed = true
		result.Attempts = append(result.Attempts, record)

		fields := log.Fields{
			"request_id": result.RequestID,
			"command":    result.Command,
			"attempt":    attempt,
		}
		if err == nil {
			d.logger.Info("command executed", fields)
			result.State = StateSucceeded
			result.Output = output
			return
		}

		fields["error"] = err.Error()
		if attempt < d.opts.MaxAttempts {
			d.logger.Warn("attempt failed, retrying", fields)
		} else {
			d.logger.Error("attempt failed", fields)
		}
	}

	result.State = StateFailed
	result.Err = d.aggregateFailure(result)
}

// preflight applies validation and the confirmation gate for the async
// entry points
func (d *Dispatcher) preflight(command string) error {
	validation := d.validator.Validate(command)
	if !validation.Valid {
		return validation.Err
	}
	if d.opts.SafetyCheck && d.opts.ConfirmDestructive {
		if classification := d.classifier.Classify(command); classification.Destructive && classification.Severity.RequiresConfirmation() {
			return cmderror.Newf("destructive command requires confirmation: %s", classification.Reason).
				WithCode(cmderror.CodeSafetyConfirmationRequired).
				WithSeverity(classification.Severity).
				WithOperation("dispatch.preflight").
				WithSuggestion("dispatch synchronously and confirm, or disable confirmation")
		}
	}
	return nil
}

// aggregateFailure folds every attempt's message into one final error
func (d *Dispatcher) aggregateFailure(result *Result) *cmderror.Error {
	messages := make([]string, 0, len(result.Attempts))
	for _, attempt := range result.Attempts {
		if attempt.Err != nil {
			messages = append(messages, attempt.Err.Error())
		}
	}
	return cmderror.Newf("command failed after %d attempt(s)", len(result.Attempts)).
		WithCode(cmderror.CodeExecutionFailed).
		WithOperation("dispatch.execute").
		WithDetail("command", result.Command).
		WithDetail("attempts", strings.Join(messages, "; "))
}

// timeoutError maps a context error onto the execution taxonomy
func (d *Dispatcher) timeoutError(result *Result, cause error) *cmderror.Error {
	code := cmderror.CodeExecutionTimeout
	message := "command timed out before execution"
	if errors.Is(cause, context.Canceled) {
		code = cmderror.CodeExecutionFailed
		message = "command canceled before execution"
	}
	return cmderror.Wrap(cause, message).
		WithCode(code).
		WithOperation("dispatch.execute").
		WithDetail("command", result.Command)
}

// skipped builds the result for a batch item never reached because of the
// halt policy
func (d *Dispatcher) skipped(command string, haltIndex int) *Result {
	return &Result{
		RequestID: uuid.NewString(),
		Command:   command,
		State:     StateSkipped,
		Err: cmderror.Newf("skipped: batch halted at item %d", haltIndex).
			WithCode(cmderror.CodeBatchHalted).
			WithOperation("dispatch.DispatchBatch").
			WithDetail("command", command),
	}
}

// bound derives a context honoring the configured timeout
func (d *Dispatcher) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.opts.Timeout > 0 {
		return context.WithTimeout(ctx, d.opts.Timeout)
	}
	return context.WithCancel(ctx)
}
