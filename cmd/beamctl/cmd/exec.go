package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/beamctl/beamctl/cmdlang"
	"github.com/beamctl/beamctl/cmdlang/dispatch"
)

var (
	execDryRun  bool
	execYes     bool
	execNoHalt  bool
	execRetries int
	execTimeout time.Duration
)

var execCmd = &cobra.Command{
	Use:   "exec <command>...",
	Short: "Dispatch commands to the console",
	Long: `Exec validates each command and dispatches it to the console host.
Multiple commands run as an ordered batch after sequence optimization.

Destructive commands are refused unless --yes is given. Without a
configured console link the built-in echo host prints each command
instead of applying it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	execCmd.Flags().BoolVar(&execDryRun, "dry-run", false, "validate and print, never dispatch")
	execCmd.Flags().BoolVarP(&execYes, "yes", "y", false, "confirm destructive commands up front")
	execCmd.Flags().BoolVar(&execNoHalt, "no-halt", false, "continue the batch after a failure")
	execCmd.Flags().IntVar(&execRetries, "retries", 0, "extra attempts per command")
	execCmd.Flags().DurationVar(&execTimeout, "timeout", 0, "best-effort execution time bound")
	rootCmd.AddCommand(execCmd)
}

// echoRunner is the built-in host used when no console link is configured.
// It prints each command instead of applying it.
type echoRunner struct{}

func (echoRunner) ExecuteSync(ctx context.Context, command string, undo dispatch.Handle) (string, error) {
	fmt.Printf("-> %s\n", command)
	return "", nil
}

func (echoRunner) ExecuteAsync(command string, undo, target dispatch.Handle) error {
	fmt.Printf("-> %s (queued)\n", command)
	return nil
}

func (echoRunner) ExecuteAsyncAndWait(ctx context.Context, command string, undo, target dispatch.Handle) error {
	fmt.Printf("-> %s (queued, waited)\n", command)
	return nil
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if execRetries > 0 {
		cfg.Execution.MaxAttempts = 1 + execRetries
	}
	if execNoHalt {
		cfg.Execution.HaltOnError = false
	}
	if execTimeout > 0 {
		cfg.Execution.TimeoutSeconds = int(execTimeout / time.Second)
	}

	engine, err := cmdlang.NewEngine(cmdlang.Options{
		Logger: newLogger(),
		Config: cfg,
		Runner: echoRunner{},
	})
	if err != nil {
		return err
	}

	if execDryRun {
		return runExecDry(engine, args)
	}

	ctx := context.Background()
	if len(args) == 1 {
		return reportResult(execOne(ctx, engine, args[0]))
	}
	if execYes {
		return runExecConfirmedBatch(ctx, engine, args, cfg.Execution.HaltOnError)
	}

	batch, err := engine.ExecuteBatch(ctx, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, result := range batch.Results {
		if err := reportResult(result, nil); err != nil {
			failed++
		}
	}
	if batch.Halted {
		fmt.Printf("batch halted at item %d\n", batch.HaltIndex+1)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d command(s) failed", failed, len(batch.Results))
	}
	return nil
}

// execOne dispatches a single command, honoring the --yes pre-confirmation
func execOne(ctx context.Context, engine *cmdlang.Engine, command string) (*dispatch.Result, error) {
	if execYes {
		return engine.ExecuteConfirmed(ctx, command)
	}
	return engine.Execute(ctx, command)
}

// runExecConfirmedBatch dispatches an optimized batch item by item with the
// confirmation gate already satisfied
func runExecConfirmedBatch(ctx context.Context, engine *cmdlang.Engine, args []string, halt bool) error {
	failed := 0
	for _, command := range engine.Optimize(args) {
		result, err := engine.ExecuteConfirmed(ctx, command)
		if reportResult(result, err) != nil {
			failed++
			if halt {
				fmt.Println("batch halted")
				break
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d command(s) failed", failed)
	}
	return nil
}

// runExecDry validates and prints without dispatching
func runExecDry(engine *cmdlang.Engine, args []string) error {
	failed := 0
	for _, command := range engine.Optimize(args) {
		result := engine.ValidateSyntax(command)
		if !result.Valid {
			failed++
			fmt.Printf("FAIL  %q: %v\n", command, result.Err)
			continue
		}
		if c := engine.Classify(command); c.Destructive {
			fmt.Printf("OK    %s  (destructive: %s)\n", command, c.Reason)
		} else {
			fmt.Printf("OK    %s\n", command)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d command(s) failed validation", failed)
	}
	return nil
}

// reportResult prints one dispatch outcome and returns an error for
// non-successful terminal states
func reportResult(result *dispatch.Result, err error) error {
	if err != nil {
		printError("dispatch failed", err)
		return err
	}

	switch result.State {
	case dispatch.StateSucceeded:
		if result.Output != "" {
			fmt.Println(result.Output)
		}
		return nil
	case dispatch.StateNeedsConfirmation:
		fmt.Printf("refused %q: %s (re-run with --yes)\n", result.Command, result.ConfirmationReason)
		return fmt.Errorf("confirmation required")
	case dispatch.StateSkipped:
		fmt.Printf("skipped %q\n", result.Command)
		return fmt.Errorf("skipped")
	default:
		printError(fmt.Sprintf("command %q", result.Command), result.Err)
		return result.Err
	}
}
