package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beamctl/beamctl/utils/stringx"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "List and render command templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "List registered templates",
	Long: `List prints the registered templates with their patterns. An optional
filter argument restricts the list to names containing it, case-insensitively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplateList,
}

var templateParams []string

var templateRenderCmd = &cobra.Command{
	Use:   "render <name>",
	Short: "Render a template into a command string",
	Example: `  beamctl template render fixture_at -p fixtures="1 Thru 10" -p intensity=75
  beamctl template render store_cue -p cue=12 -p fade=3`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplateRender,
}

func init() {
	templateRenderCmd.Flags().StringArrayVarP(&templateParams, "param", "p", nil, "name=value parameter, repeatable")
	templateCmd.AddCommand(templateListCmd, templateRenderCmd)
	rootCmd.AddCommand(templateCmd)
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(nil)
	if err != nil {
		return err
	}

	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}

	registry := engine.Templates()
	for _, name := range registry.Names() {
		if filter != "" && !stringx.ContainsIgnoreCase(name, filter) {
			continue
		}
		tpl, err := registry.Get(name)
		if err != nil {
			continue
		}
		fmt.Printf("%-16s %s\n", name, tpl.Pattern())
		if tpl.Description() != "" {
			fmt.Printf("%-16s %s\n", "", tpl.Description())
		}
	}
	return nil
}

func runTemplateRender(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(nil)
	if err != nil {
		return err
	}

	values := make(map[string]interface{}, len(templateParams))
	for _, raw := range templateParams {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("parameter must be name=value, got %q", raw)
		}
		// Numeric-looking values render as numbers so kind constraints apply
		if n, err := strconv.ParseFloat(parts[1], 64); err == nil {
			values[parts[0]] = n
		} else {
			values[parts[0]] = parts[1]
		}
	}

	command, err := engine.Render(args[0], values)
	if err != nil {
		return err
	}
	fmt.Println(command)
	return nil
}
