// File: doc.go
// Title: Command Language Package Documentation
// Description: Documents the cmdlang package, the high-level entry point to
//              the lighting console command pipeline: validation, safety
//              classification, template expansion, command building,
//              sequence optimization, and dispatch.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

/*
Package cmdlang implements the lighting console command pipeline.

The console speaks a textual command grammar of space-delimited tokens:
a leading verb or object type, optional quoted identifiers, the range
keyword Thru, the combination operator +, and trailing modifier clauses
such as Fade, Delay, and Time.

	Fixture 1 Thru 10 At 75 Fade 3
	Select Group "Stage Wash"
	Store Cue 12 Fade 3
	Delete Cue 5

Commands flow through the pipeline in a fixed order: the syntax validator
checks structural well-formedness, the parameter validator checks values
against their declared kinds, the safety classifier flags destructive
effects, the builder and template engine produce command strings from
structured input, the optimizer merges compatible sequences, and the
dispatcher executes against the host runtime with bounded retries.

The Engine type wires the pipeline together over one shared grammar
profile:

	engine, err := cmdlang.NewEngine(cmdlang.Options{Runner: runner})
	if err != nil {
		return err
	}
	result, err := engine.Execute(ctx, "Fixture 1 At 50")

All validators are pure and stateless; the engine is safe for sequential
reuse. Destructive commands return a needs-confirmation result without
touching the host, and the caller re-dispatches after confirming.
*/
package cmdlang
