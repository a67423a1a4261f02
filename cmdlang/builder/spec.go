// File: spec.go
// Title: Command Specification Types
// Description: Defines the tagged union of structured command specifications
//              consumed by the builder: selection, property-set, storage,
//              playback, and raw custom commands, plus the selector shapes a
//              selection can address.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package builder

// Spec is the tagged union of structured command specifications. Exactly
// the five concrete types in this package implement it.
type Spec interface {
	isSpec()
}

// SelectorShape identifies the addressing form of a selection
type SelectorShape int

const (
	// SelectIndex addresses a single object: "Select Fixture 1"
	SelectIndex SelectorShape = iota

	// SelectRange addresses an inclusive range: "Select Fixture 1 Thru 10"
	SelectRange

	// SelectList addresses an explicit list: "Select Fixture 1 + 3 + 5"
	SelectList

	// SelectRangeList addresses multiple ranges: "Select Fixture 1 Thru 5 + 10 Thru 20"
	SelectRangeList

	// SelectName addresses a named object: `Select Group "My Group"`
	SelectName
)

// Selector describes which objects a selection addresses
type Selector struct {
	Shape  SelectorShape
	Index  int
	Start  int
	End    int
	List   []int
	Ranges [][2]int
	Name   string
}

// Index selects a single object by index
func Index(n int) Selector {
	return Selector{Shape: SelectIndex, Index: n}
}

// Span selects an inclusive index range
func Span(start, end int) Selector {
	return Selector{Shape: SelectRange, Start: start, End: end}
}

// List selects an explicit set of indices
func List(indices ...int) Selector {
	return Selector{Shape: SelectList, List: indices}
}

// Spans selects multiple inclusive ranges
func Spans(pairs ...[2]int) Selector {
	return Selector{Shape: SelectRangeList, Ranges: pairs}
}

// Name selects a named object; the builder adds quotes
func Name(name string) Selector {
	return Selector{Shape: SelectName, Name: name}
}

// SelectionSpec selects objects of one type
type SelectionSpec struct {
	ObjectType string
	Selector   Selector
}

func (SelectionSpec) isSpec() {}

// PropertySpec sets properties and timing modifiers on a target. Nil fields
// are omitted; present fields render in the fixed clause order At, Color,
// Position, Gobo, Zoom, Focus, Iris, Fade, Delay, Time. Some consoles are
// order-sensitive in chained modifiers, so the order never varies.
type PropertySpec struct {
	Target    string
	Intensity *float64
	Color     string
	Pan       *float64
	Tilt      *float64
	Gobo      *float64
	Zoom      *float64
	Focus     *float64
	Iris      *float64
	Fade      *float64
	Delay     *float64
	Time      *float64
}

func (PropertySpec) isSpec() {}

// Option is one key/value pair appended to a storage command
type Option struct {
	Key   string
	Value string
}

// StorageSpec stores or records an object with optional settings, rendered
// in insertion order
type StorageSpec struct {
	Action  string
	Target  string
	Options []Option
}

func (StorageSpec) isSpec() {}

// PlaybackSpec controls playback of a target
type PlaybackSpec struct {
	Action string
	Target string
}

func (PlaybackSpec) isSpec() {}

// CustomSpec passes a raw command string through unmodified
type CustomSpec struct {
	Raw string
}

func (CustomSpec) isSpec() {}

// F is a convenience for optional numeric fields
func F(v float64) *float64 {
	return &v
}
