package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/beamctl/beamctl/cmdlang/dispatch"
	"github.com/beamctl/beamctl/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive command shell",
	Long: `Shell starts an interactive session. Commands are validated and
dispatched as they are entered; destructive commands ask for an inline
y/n confirmation. Input history lives for the session only.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// quietRunner returns the applied command as the result string instead of
// printing, so the shell owns the terminal
type quietRunner struct{}

func (quietRunner) ExecuteSync(ctx context.Context, command string, undo dispatch.Handle) (string, error) {
	return "applied " + command, nil
}

func (quietRunner) ExecuteAsync(command string, undo, target dispatch.Handle) error {
	return nil
}

func (quietRunner) ExecuteAsyncAndWait(ctx context.Context, command string, undo, target dispatch.Handle) error {
	return nil
}

func runShell(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(quietRunner{})
	if err != nil {
		return err
	}
	return shell.Run(engine)
}
