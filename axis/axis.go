// Package axis turns measurements into the windowing state of a list or
// grid: how many lanes and rows exist and which rows have to be live.
package axis

import (
	"math"

	"github.com/xqrs/gridview/measure"
)

const (
	// DefaultOverscanDistance is the buffer kept live beyond the viewport on
	// each side, in the host's length unit.
	DefaultOverscanDistance = 180
	// MinOverscan is the minimum number of overscan rows on each side, so a
	// key press never runs out of pre-rendered neighbors in one frame.
	MinOverscan = 2
)

// CrossCountFunc returns the number of lanes. The result is floored; values
// below 1 mean a plain list.
type CrossCountFunc func(m measure.Measurements, itemCount int) float64

// Cross is the cross-axis part of the state.
type Cross struct {
	// Total is the number of lanes, at least 1 and at most the item count.
	Total int
}

// Main is the main-axis part of the state.
type Main struct {
	// Total is the number of rows.
	Total int
	// FocusPosition is the row holding the focused item.
	FocusPosition int
}

// State is the output of a planning pass.
type State struct {
	Cross Cross
	Main  Main

	Overscan     int
	VisibleCount int
	// PositionCount is the number of rows kept live, not counting the slot
	// reserved for focus.
	PositionCount int
	// CurrentPosition is the first live row.
	CurrentPosition int
}

// Initial returns the state used before anything has been measured.
func Initial() State {
	return State{Cross: Cross{Total: 1}}
}

// Windowed reports whether only a window of the rows is live.
func (s State) Windowed() bool {
	return s.Main.Total > s.PositionCount
}

// EndPosition returns one past the last live row of the window.
func (s State) EndPosition() int {
	return s.CurrentPosition + s.PositionCount
}

// ContentMain returns the main-axis length of the full content.
func (s State) ContentMain(itemMain int) int {
	return s.Main.Total * max(itemMain, 0)
}

// Planner computes State values.
type Planner struct {
	// CrossCount is optional; nil means a plain list.
	CrossCount CrossCountFunc
	// OverscanDistance defaults to DefaultOverscanDistance when zero.
	OverscanDistance float64
}

// Plan derives the next state. When the measurements are not trusted yet the
// previous state is returned unchanged.
func (p Planner) Plan(prev State, m measure.Measurements, itemCount int, focusPosition int) State {
	if !m.Measured {
		return prev
	}
	itemCount = max(itemCount, 0)

	var s State
	s.Cross.Total = 1
	if p.CrossCount != nil {
		s.Cross.Total = max(1, measure.Int(p.CrossCount(m, itemCount)))
	}
	// Lanes past the last item would only hold empty slots.
	s.Cross.Total = min(s.Cross.Total, max(itemCount, 1))
	s.Main.Total = ceilDiv(itemCount, s.Cross.Total)
	s.Main.FocusPosition = max(focusPosition, 0) / s.Cross.Total

	itemMain := float64(m.Item.Main)
	distance := p.OverscanDistance
	if distance <= 0 {
		distance = DefaultOverscanDistance
	}
	s.Overscan = max(safeInt(math.Ceil(distance/itemMain)), MinOverscan)
	s.VisibleCount = max(safeInt(math.Ceil(float64(m.Target.Main)/itemMain)), 0)
	s.PositionCount = max(min(s.VisibleCount+2*s.Overscan, s.Main.Total), 0)

	start := safeInt(math.Floor(float64(m.ScrollMain-m.Container.OffsetMain)/itemMain)) - s.Overscan
	s.CurrentPosition = clamp(start, 0, s.Main.Total-s.PositionCount)
	return s
}

// ColumnsFor returns a CrossCountFunc fitting as many lanes of at least
// minCross as the container allows.
func ColumnsFor(minCross int) CrossCountFunc {
	return func(m measure.Measurements, _ int) float64 {
		if minCross <= 0 {
			return 1
		}
		return float64(m.Container.Cross) / float64(minCross)
	}
}

// FixedColumns returns a CrossCountFunc with a constant lane count.
func FixedColumns(n int) CrossCountFunc {
	return func(measure.Measurements, int) float64 {
		return float64(n)
	}
}

// LanesFromItem derives the lane count from the resolved item cross size.
func LanesFromItem(m measure.Measurements, _ int) float64 {
	if m.Item.Cross <= 0 {
		return 1
	}
	return float64(m.Container.Cross) / float64(m.Item.Cross)
}

// safeInt converts v to int, mapping NaN and infinities to 0 and saturating
// values outside the int range.
func safeInt(v float64) int {
	switch {
	case math.IsNaN(v), math.IsInf(v, 0):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

func ceilDiv(a, b int) int {
	if b <= 0 || a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
