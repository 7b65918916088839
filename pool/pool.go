package pool

import (
	"slices"

	"github.com/xqrs/gridview/axis"
)

// Slot is one entry of the pool.
type Slot struct {
	// Position is the main-axis row assigned to the slot.
	Position int
	// Generation changes whenever the slot starts to represent another row,
	// so renderers can drop per-item state.
	Generation uint64
}

// Pool owns the slot to row assignment between passes.
type Pool struct {
	positions []int
	slots     []Slot
	start     int
	nextGen   uint64
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{}
}

// Update runs one diff pass for s and reports whether any slot changed.
func (p *Pool) Update(s axis.State) bool {
	next := Diff(s.Main.Total, s.Main.FocusPosition, s.PositionCount, s.CurrentPosition, p.start, p.positions)
	p.start = s.CurrentPosition
	if len(next) == len(p.positions) && slices.Equal(next, p.positions) {
		p.positions = next
		return false
	}

	slots := make([]Slot, len(next))
	for i, pos := range next {
		if i < len(p.slots) && p.slots[i].Position == pos {
			slots[i] = p.slots[i]
			continue
		}
		p.nextGen++
		slots[i] = Slot{Position: pos, Generation: p.nextGen}
	}
	p.positions = next
	p.slots = slots
	return true
}

// Slots returns the current slots. The slice must not be modified.
func (p *Pool) Slots() []Slot {
	return p.slots
}

// Positions returns the current row assignment. The slice must not be
// modified.
func (p *Pool) Positions() []int {
	return p.positions
}

// Len returns the number of slots.
func (p *Pool) Len() int {
	return len(p.positions)
}

// Clear drops every slot. Generations keep increasing across Clear so stale
// renderer state is never matched again.
func (p *Pool) Clear() {
	p.positions = nil
	p.slots = nil
	p.start = 0
}
