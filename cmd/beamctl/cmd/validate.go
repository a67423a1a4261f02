package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beamctl/beamctl/cmdlang/param"
)

var (
	validateRef   bool
	validateColor bool
	validateKind  string
)

var validateCmd = &cobra.Command{
	Use:   "validate <command|expression>...",
	Short: "Validate command strings or parameter expressions",
	Long: `Validate checks each argument for structural well-formedness.

By default arguments are full command strings run through the syntax
validator. With --ref each argument is checked as an object reference
(e.g. "1 Thru 10"), with --color as a color expression, and with
--kind <name> as a numeric value of that parameter kind.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateRef, "ref", false, "validate object references")
	validateCmd.Flags().BoolVar(&validateColor, "color", false, "validate color expressions")
	validateCmd.Flags().StringVar(&validateKind, "kind", "", "validate numeric values of a kind (intensity, pan, tilt, time, dmx, cue)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(nil)
	if err != nil {
		return err
	}

	failed := 0
	for _, arg := range args {
		switch {
		case validateRef:
			if _, err := engine.ValidateReference(arg); err != nil {
				failed++
				fmt.Printf("FAIL  %q: %v\n", arg, err)
			} else {
				fmt.Printf("OK    %q\n", arg)
			}

		case validateColor:
			if _, err := engine.ValidateColor(arg); err != nil {
				failed++
				fmt.Printf("FAIL  %q: %v\n", arg, err)
			} else {
				fmt.Printf("OK    %q\n", arg)
			}

		case validateKind != "":
			kind, known := param.ParseKind(validateKind)
			if !known {
				return fmt.Errorf("unknown parameter kind %q", validateKind)
			}
			if _, err := engine.ValidateNumeric(arg, kind); err != nil {
				failed++
				fmt.Printf("FAIL  %q: %v\n", arg, err)
			} else {
				fmt.Printf("OK    %q\n", arg)
			}

		default:
			result := engine.ValidateSyntax(arg)
			if !result.Valid {
				failed++
				fmt.Printf("FAIL  %q: %v\n", arg, result.Err)
			} else {
				fmt.Printf("OK    %q\n", arg)
			}
			for _, warning := range result.Warnings {
				fmt.Printf("      warning: %s\n", warning)
			}
			for _, suggestion := range result.Suggestions {
				fmt.Printf("      hint: %s\n", suggestion)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d argument(s) failed validation", failed, len(args))
	}
	return nil
}
