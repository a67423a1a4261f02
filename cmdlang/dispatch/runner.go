// File: runner.go
// Title: Host Runtime Interface
// Description: Declares the execution primitives of the external console
//              runtime the dispatcher drives. The host is single-threaded
//              and cooperative; the synchronous primitive blocks until the
//              console applies the command, the asynchronous ones enqueue.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package dispatch

import "context"

// Handle is an opaque token the host associates with a command, for undo
// grouping or queue targeting. The dispatcher never inspects it.
type Handle interface{}

// Runner is implemented by the external host runtime. An in-flight
// synchronous call cannot be preempted; the context bounds waiting, not
// the host's own work.
type Runner interface {
	// ExecuteSync applies the command and blocks until the console has
	// processed it, returning the host's result string (possibly empty).
	ExecuteSync(ctx context.Context, command string, undo Handle) (string, error)

	// ExecuteAsync enqueues the command and returns immediately.
	ExecuteAsync(command string, undo, target Handle) error

	// ExecuteAsyncAndWait enqueues the command and blocks until that
	// specific queued item completes.
	ExecuteAsyncAndWait(ctx context.Context, command string, undo, target Handle) error
}
