package engine

import "fmt"

// Key identifies a rendering slot: a pool slot and a lane within its row.
type Key struct {
	Slot int
	Lane int
}

// Style places a slot inside the content container.
type Style struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Transform returns the CSS-like transform for the style.
func (s Style) Transform() string {
	return fmt.Sprintf("translate(%dpx, %dpx)", s.X, s.Y)
}

// Slot is one live rendering slot.
type Slot struct {
	Key Key

	Row   int
	Lane  int
	Index int

	// Generation changes whenever the slot starts to show another item.
	Generation uint64

	// TabIndex is 0 for the focused item and -1 otherwise.
	TabIndex int
	// Empty slots point past the end of the items and render nothing.
	Empty bool

	Style Style
}

type slotIdentity struct {
	index      int
	generation uint64
}
