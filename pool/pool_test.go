package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/gridview/axis"
)

func windowState(total, positionCount, start, focusRow int) axis.State {
	return axis.State{
		Cross:           axis.Cross{Total: 1},
		Main:            axis.Main{Total: total, FocusPosition: focusRow},
		PositionCount:   positionCount,
		CurrentPosition: start,
	}
}

func TestPool_GenerationsFollowReassignment(t *testing.T) {
	p := New()
	require.True(t, p.Update(windowState(100, 4, 0, 0)))
	require.Equal(t, []int{0, 1, 2, 3, 4}, p.Positions())

	before := append([]Slot(nil), p.Slots()...)
	gens := map[uint64]bool{}
	for _, s := range before {
		assert.False(t, gens[s.Generation], "generation reused")
		gens[s.Generation] = true
	}

	require.True(t, p.Update(windowState(100, 4, 2, 0)))
	after := p.Slots()
	require.Len(t, after, 5)
	for i, s := range after {
		if s.Position == before[i].Position {
			assert.Equal(t, before[i].Generation, s.Generation, "slot %d kept its row", i)
		} else {
			assert.Greater(t, s.Generation, before[i].Generation, "slot %d was recycled", i)
		}
	}
}

func TestPool_NoChange(t *testing.T) {
	p := New()
	p.Update(windowState(100, 4, 0, 0))
	assert.False(t, p.Update(windowState(100, 4, 0, 0)))
}

func TestPool_Empty(t *testing.T) {
	p := New()
	assert.False(t, p.Update(axis.Initial()))
	assert.Equal(t, 0, p.Len())
}

func TestPool_ClearKeepsGenerationsMonotonic(t *testing.T) {
	p := New()
	p.Update(windowState(3, 3, 0, 0))
	last := p.Slots()[2].Generation

	p.Clear()
	assert.Equal(t, 0, p.Len())

	p.Update(windowState(3, 3, 0, 0))
	assert.Greater(t, p.Slots()[0].Generation, last)
}
