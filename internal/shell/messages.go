// File: messages.go
// Title: Shell Messages
// Description: Bubbletea messages exchanged between the shell model and its
//              asynchronous commands.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package shell

import "github.com/beamctl/beamctl/cmdlang/dispatch"

// resultMsg carries the outcome of one dispatched command back into the
// update loop
type resultMsg struct {
	command string
	result  *dispatch.Result
	err     error
}
