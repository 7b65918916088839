// Package measure observes a scroll target and its content container and
// derives the sizes the windowing math works with.
//
// All sizes are projected onto a main axis (the axis the list scrolls along)
// and a cross axis, so the rest of the pipeline never has to care whether a
// list scrolls vertically or horizontally.
package measure

import "math"

// Direction is the scroll direction of a list.
type Direction uint8

const (
	// Vertical lists scroll along the y axis. Lanes are columns.
	Vertical Direction = iota
	// Horizontal lists scroll along the x axis. Lanes are rows.
	Horizontal
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseDirection parses "vertical" or "horizontal". Anything else yields
// Vertical and false.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "vertical", "v", "":
		return Vertical, true
	case "horizontal", "h":
		return Horizontal, true
	}
	return Vertical, false
}

// Extent is a size projected onto the main and cross axes.
type Extent struct {
	Main  int
	Cross int
}

// Project converts a width/height pair into main/cross extents.
func (d Direction) Project(width, height float64) Extent {
	if d == Horizontal {
		return Extent{Main: Int(width), Cross: Int(height)}
	}
	return Extent{Main: Int(height), Cross: Int(width)}
}

// Unproject converts main/cross values back into x/y (or width/height).
func (d Direction) Unproject(main, cross int) (x, y int) {
	if d == Horizontal {
		return main, cross
	}
	return cross, main
}

// Box describes the content container: its size and its offset from the
// scroll target origin.
type Box struct {
	Main        int
	Cross       int
	OffsetMain  int
	OffsetCross int
}

// Measurements is the read-only output of the Provider.
//
// Item, Target and Container are only meaningful once Measured is true.
type Measurements struct {
	Measured   bool
	ScrollMain int
	Item       Extent
	Target     Extent
	Container  Box
}

// ItemSize is an item size request. Zero means unset on that axis.
type ItemSize struct {
	Width  float64
	Height float64
}

// Sizer computes an item size from the container's content cross size.
type Sizer func(crossContentSize float64, horizontal bool) ItemSize

// ItemSizing is either a static size or a Sizer.
type ItemSizing struct {
	static  ItemSize
	dynamic Sizer
}

// Static returns a fixed item sizing.
func Static(width, height float64) ItemSizing {
	return ItemSizing{static: ItemSize{Width: width, Height: height}}
}

// Dynamic returns an item sizing computed from the content cross size.
func Dynamic(sizer Sizer) ItemSizing {
	return ItemSizing{dynamic: sizer}
}

// IsDynamic reports whether the sizing depends on the container size.
func (s ItemSizing) IsDynamic() bool {
	return s.dynamic != nil
}

// Resolve returns the item extents for the given content cross size.
// An unset cross extent falls back to the content cross size.
func (s ItemSizing) Resolve(d Direction, crossContent float64) Extent {
	size := s.static
	if s.dynamic != nil {
		size = s.dynamic(crossContent, d == Horizontal)
	}
	e := d.Project(size.Width, size.Height)
	if e.Cross <= 0 {
		e.Cross = Int(crossContent)
	}
	return e
}

// Node is one element of the host's layout tree.
type Node interface {
	// OffsetParent returns the nearest positioned ancestor, or nil.
	OffsetParent() Node
	// Offset returns the position relative to OffsetParent.
	Offset() (x, y float64)
}

// ScrollTarget is the scrollable viewport.
type ScrollTarget interface {
	Node
	// ScrollOffset returns the current scroll offsets.
	ScrollOffset() (x, y float64)
	// Subscribe registers fn for scroll notifications and returns a function
	// removing the registration.
	Subscribe(fn func()) (unsubscribe func())
}

// ResizeObserver delivers size changes of observed nodes to the Provider
// through HandleResize.
type ResizeObserver interface {
	Observe(n Node)
	Unobserve(n Node)
}

// Observation is one size notification. Width and Height are the border box,
// ContentWidth and ContentHeight the content box.
type Observation struct {
	Node          Node
	Width         float64
	Height        float64
	ContentWidth  float64
	ContentHeight float64
}

// Int floors v and maps NaN and infinities to 0.
func Int(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Floor(v))
}
