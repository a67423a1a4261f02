package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beamctl/beamctl/core/config"
	"github.com/beamctl/beamctl/core/log"
	"github.com/beamctl/beamctl/cmdlang"
	"github.com/beamctl/beamctl/cmdlang/dispatch"
	"github.com/beamctl/beamctl/utils/stringx"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "beamctl",
	Short: "beamctl - lighting console command pipeline",
	Long: `beamctl validates, builds, optimizes, and executes lighting console
command strings.

Pipeline stages:
  validate  - syntax and parameter validation
  classify  - destructive-action classification
  build     - compose command strings from structured flags
  template  - expand registered command templates
  optimize  - merge compatible command sequences
  exec      - dispatch commands to the console
  shell     - interactive command shell`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads the configured file or falls back to defaults
func loadConfig() (*config.Config, error) {
	if stringx.IsBlank(cfgFile) {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

// newLogger builds the CLI logger honoring the verbose flag
func newLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	if verbose {
		logger.SetLevel(log.LevelDebug)
	} else {
		logger.SetLevel(log.LevelWarn)
	}
	return logger
}

// newEngine wires an engine from the CLI configuration. The runner may be
// nil for commands that never execute.
func newEngine(runner dispatch.Runner) (*cmdlang.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cmdlang.NewEngine(cmdlang.Options{
		Logger: newLogger(),
		Config: cfg,
		Runner: runner,
	})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
