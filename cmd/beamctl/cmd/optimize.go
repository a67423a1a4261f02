package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [command]...",
	Short: "Merge compatible command sequences",
	Long: `Optimize merges a selection followed by property-setting commands
into single equivalent commands. Commands are taken from the arguments,
or read one per line from stdin when no arguments are given.`,
	RunE: runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(nil)
	if err != nil {
		return err
	}

	commands := args
	if len(commands) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				commands = append(commands, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	for _, command := range engine.Optimize(commands) {
		fmt.Println(command)
	}
	return nil
}
