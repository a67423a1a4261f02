package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beamctl/beamctl/cmdlang/builder"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compose command strings from structured flags",
	Long: `Build composes a command string from a structured specification and
prints it. The built command is syntax-validated before printing.`,
}

var (
	buildSelectType  string
	buildSelectIndex int
	buildSelectSpan  string
	buildSelectList  []int
	buildSelectName  string
)

var buildSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Build a selection command",
	Example: `  beamctl build select --type Fixture --index 1
  beamctl build select --type Fixture --span 1:10
  beamctl build select --type Fixture --list 1,3,5
  beamctl build select --type Group --name "Stage Wash"`,
	RunE: runBuildSelect,
}

var (
	buildTarget string
	buildAt     float64
	buildColor  string
	buildPan    float64
	buildTilt   float64
	buildFade   float64
	buildDelay  float64
	buildTime   float64
)

var buildPropertyCmd = &cobra.Command{
	Use:   "property",
	Short: "Build a property-setting command",
	Example: `  beamctl build property --target "Fixture 1 Thru 10" --at 75 --fade 3
  beamctl build property --target "Fixture 1" --color Red --pan 45 --tilt -20`,
	RunE: runBuildProperty,
}

var (
	buildStoreAction  string
	buildStoreTarget  string
	buildStoreOptions []string
)

var buildStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Build a storage command",
	Example: `  beamctl build store --action Store --target "Cue 12" --option Fade=3
  beamctl build store --action Record --target "Group 5"`,
	RunE: runBuildStore,
}

var (
	buildPlayAction string
	buildPlayTarget string
)

var buildPlayCmd = &cobra.Command{
	Use:   "play",
	Short: "Build a playback command",
	Example: `  beamctl build play --action Go --target "Sequence 1"
  beamctl build play --action Pause --target "Sequence 1"`,
	RunE: runBuildPlay,
}

func init() {
	buildSelectCmd.Flags().StringVar(&buildSelectType, "type", "Fixture", "object type")
	buildSelectCmd.Flags().IntVar(&buildSelectIndex, "index", 0, "single object index")
	buildSelectCmd.Flags().StringVar(&buildSelectSpan, "span", "", "inclusive range start:end")
	buildSelectCmd.Flags().IntSliceVar(&buildSelectList, "list", nil, "explicit index list")
	buildSelectCmd.Flags().StringVar(&buildSelectName, "name", "", "named object")

	buildPropertyCmd.Flags().StringVar(&buildTarget, "target", "", "target expression")
	buildPropertyCmd.Flags().Float64Var(&buildAt, "at", -1, "intensity 0-100")
	buildPropertyCmd.Flags().StringVar(&buildColor, "color", "", "color value")
	buildPropertyCmd.Flags().Float64Var(&buildPan, "pan", -1000, "pan position")
	buildPropertyCmd.Flags().Float64Var(&buildTilt, "tilt", -1000, "tilt position")
	buildPropertyCmd.Flags().Float64Var(&buildFade, "fade", -1, "fade time in seconds")
	buildPropertyCmd.Flags().Float64Var(&buildDelay, "delay", -1, "delay time in seconds")
	buildPropertyCmd.Flags().Float64Var(&buildTime, "time", -1, "time in seconds")

	buildStoreCmd.Flags().StringVar(&buildStoreAction, "action", "Store", "storage action")
	buildStoreCmd.Flags().StringVar(&buildStoreTarget, "target", "", "storage target")
	buildStoreCmd.Flags().StringArrayVar(&buildStoreOptions, "option", nil, "key=value option, repeatable")

	buildPlayCmd.Flags().StringVar(&buildPlayAction, "action", "Go", "playback action")
	buildPlayCmd.Flags().StringVar(&buildPlayTarget, "target", "", "playback target")

	buildCmd.AddCommand(buildSelectCmd, buildPropertyCmd, buildStoreCmd, buildPlayCmd)
	rootCmd.AddCommand(buildCmd)
}

func runBuildSelect(cmd *cobra.Command, args []string) error {
	var selector builder.Selector
	switch {
	case buildSelectName != "":
		selector = builder.Name(buildSelectName)
	case buildSelectSpan != "":
		parts := strings.SplitN(buildSelectSpan, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("span must be start:end, got %q", buildSelectSpan)
		}
		start, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("invalid span start %q", parts[0])
		}
		end, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("invalid span end %q", parts[1])
		}
		selector = builder.Span(start, end)
	case len(buildSelectList) > 0:
		selector = builder.List(buildSelectList...)
	case buildSelectIndex > 0:
		selector = builder.Index(buildSelectIndex)
	default:
		return fmt.Errorf("one of --index, --span, --list, --name is required")
	}

	return printBuilt(builder.SelectionSpec{
		ObjectType: buildSelectType,
		Selector:   selector,
	})
}

func runBuildProperty(cmd *cobra.Command, args []string) error {
	spec := builder.PropertySpec{
		Target: buildTarget,
		Color:  buildColor,
	}
	if buildAt >= 0 {
		spec.Intensity = builder.F(buildAt)
	}
	if buildPan > -1000 {
		spec.Pan = builder.F(buildPan)
	}
	if buildTilt > -1000 {
		spec.Tilt = builder.F(buildTilt)
	}
	if buildFade >= 0 {
		spec.Fade = builder.F(buildFade)
	}
	if buildDelay >= 0 {
		spec.Delay = builder.F(buildDelay)
	}
	if buildTime >= 0 {
		spec.Time = builder.F(buildTime)
	}
	return printBuilt(spec)
}

func runBuildStore(cmd *cobra.Command, args []string) error {
	if buildStoreTarget == "" {
		return fmt.Errorf("--target is required")
	}
	spec := builder.StorageSpec{
		Action: buildStoreAction,
		Target: buildStoreTarget,
	}
	for _, raw := range buildStoreOptions {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("option must be key=value, got %q", raw)
		}
		spec.Options = append(spec.Options, builder.Option{Key: parts[0], Value: parts[1]})
	}
	return printBuilt(spec)
}

func runBuildPlay(cmd *cobra.Command, args []string) error {
	if buildPlayTarget == "" {
		return fmt.Errorf("--target is required")
	}
	return printBuilt(builder.PlaybackSpec{
		Action: buildPlayAction,
		Target: buildPlayTarget,
	})
}

func printBuilt(spec builder.Spec) error {
	engine, err := newEngine(nil)
	if err != nil {
		return err
	}
	command, err := engine.Build(spec)
	if err != nil {
		return err
	}
	fmt.Println(command)
	return nil
}
