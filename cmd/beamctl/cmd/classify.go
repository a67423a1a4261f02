package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <command>...",
	Short: "Classify commands for destructive effects",
	Long: `Classify matches each command against the destructive action table
and reports the severity and reason for matches.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(nil)
	if err != nil {
		return err
	}

	for _, arg := range args {
		c := engine.Classify(arg)
		if c.Destructive {
			fmt.Printf("DESTRUCTIVE  %-10s %q: %s\n", c.Severity, arg, c.Reason)
		} else {
			fmt.Printf("safe         %q\n", arg)
		}
	}
	return nil
}
