package axis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xqrs/gridview/measure"
)

func measured(itemMain, itemCross, targetMain, containerCross, scroll int) measure.Measurements {
	return measure.Measurements{
		Measured:   true,
		ScrollMain: scroll,
		Item:       measure.Extent{Main: itemMain, Cross: itemCross},
		Target:     measure.Extent{Main: targetMain, Cross: containerCross},
		Container:  measure.Box{Cross: containerCross},
	}
}

func TestPlan_List(t *testing.T) {
	type tc struct {
		m         measure.Measurements
		itemCount int
		want      State
	}

	tests := map[string]tc{
		"top of a long list": {
			m:         measured(30, 300, 600, 300, 0),
			itemCount: 1000,
			want: State{
				Cross:         Cross{Total: 1},
				Main:          Main{Total: 1000},
				Overscan:      6,
				VisibleCount:  20,
				PositionCount: 32,
			},
		},
		"scrolled into the middle": {
			m:         measured(30, 300, 600, 300, 3000),
			itemCount: 1000,
			want: State{
				Cross:           Cross{Total: 1},
				Main:            Main{Total: 1000},
				Overscan:        6,
				VisibleCount:    20,
				PositionCount:   32,
				CurrentPosition: 94,
			},
		},
		"scrolled past the end clamps": {
			m:         measured(30, 300, 600, 300, 1_000_000),
			itemCount: 1000,
			want: State{
				Cross:           Cross{Total: 1},
				Main:            Main{Total: 1000},
				Overscan:        6,
				VisibleCount:    20,
				PositionCount:   32,
				CurrentPosition: 968,
			},
		},
		"everything fits": {
			m:         measured(30, 300, 600, 300, 0),
			itemCount: 5,
			want: State{
				Cross:         Cross{Total: 1},
				Main:          Main{Total: 5},
				Overscan:      6,
				VisibleCount:  20,
				PositionCount: 5,
			},
		},
		"large items floor overscan at two": {
			m:         measured(200, 300, 600, 300, 0),
			itemCount: 100,
			want: State{
				Cross:         Cross{Total: 1},
				Main:          Main{Total: 100},
				Overscan:      2,
				VisibleCount:  3,
				PositionCount: 7,
			},
		},
		"empty list": {
			m:         measured(30, 300, 600, 300, 0),
			itemCount: 0,
			want: State{
				Cross:        Cross{Total: 1},
				Overscan:     6,
				VisibleCount: 20,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Planner{}.Plan(Initial(), tt.m, tt.itemCount, 0)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlan_ContainerOffsetShiftsWindow(t *testing.T) {
	m := measured(10, 100, 100, 100, 500)
	m.Container.OffsetMain = 200

	got := Planner{OverscanDistance: 20}.Plan(Initial(), m, 1000, 0)

	// (500-200)/10 - 2
	assert.Equal(t, 28, got.CurrentPosition)
}

func TestPlan_Grid(t *testing.T) {
	m := measured(3, 10, 9, 35, 0)
	planner := Planner{CrossCount: LanesFromItem, OverscanDistance: 6}

	got := planner.Plan(Initial(), m, 10, 7)

	assert.Equal(t, 3, got.Cross.Total)
	assert.Equal(t, 4, got.Main.Total)
	assert.Equal(t, 2, got.Main.FocusPosition)
	assert.Equal(t, 4, got.PositionCount)
	assert.False(t, got.Windowed())
}

func TestPlan_CrossCountIsFlooredAndAtLeastOne(t *testing.T) {
	m := measured(1, 1, 10, 10, 0)

	got := Planner{CrossCount: FixedColumns(0)}.Plan(Initial(), m, 10, 0)
	assert.Equal(t, 1, got.Cross.Total)

	got = Planner{CrossCount: func(measure.Measurements, int) float64 { return 2.9 }}.Plan(Initial(), m, 10, 0)
	assert.Equal(t, 2, got.Cross.Total)
	assert.Equal(t, 5, got.Main.Total)

	got = Planner{CrossCount: ColumnsFor(3)}.Plan(Initial(), m, 10, 0)
	assert.Equal(t, 3, got.Cross.Total)
}

func TestPlan_CrossCountCappedAtItemCount(t *testing.T) {
	m := measured(1, 1, 10, 10, 0)
	tests := map[string]struct {
		itemCount int
		want      int
	}{
		"more lanes than items": {itemCount: 50, want: 50},
		"single item":           {itemCount: 1, want: 1},
		"no items":              {itemCount: 0, want: 1},
		"enough items":          {itemCount: 2_000_000_000, want: 1_000_000_000},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Planner{CrossCount: FixedColumns(1_000_000_000)}.Plan(Initial(), m, tt.itemCount, 0)
			assert.Equal(t, tt.want, got.Cross.Total)
			assert.Equal(t, min(tt.itemCount, 2), got.Main.Total)
		})
	}
}

func TestPlan_UnmeasuredKeepsPrevious(t *testing.T) {
	prev := State{Cross: Cross{Total: 2}, Main: Main{Total: 7}, PositionCount: 4, CurrentPosition: 3}

	got := Planner{}.Plan(prev, measure.Measurements{}, 100, 50)

	assert.Equal(t, prev, got)
}

func TestPlan_ZeroSizesStayFinite(t *testing.T) {
	tests := map[string]measure.Measurements{
		"zero item":            measured(0, 0, 100, 100, 50),
		"zero target":          measured(10, 10, 0, 100, 0),
		"zero item and target": measured(0, 0, 0, 0, 0),
	}
	for name, m := range tests {
		t.Run(name, func(t *testing.T) {
			got := Planner{}.Plan(Initial(), m, 100, 0)
			assert.GreaterOrEqual(t, got.PositionCount, 0)
			assert.LessOrEqual(t, got.PositionCount, 100)
			assert.GreaterOrEqual(t, got.CurrentPosition, 0)
			assert.LessOrEqual(t, got.CurrentPosition+got.PositionCount, got.Main.Total)
			assert.GreaterOrEqual(t, got.Overscan, MinOverscan)
		})
	}
}

func TestPlan_WindowBound(t *testing.T) {
	m := measured(7, 10, 95, 40, 0)
	planner := Planner{CrossCount: LanesFromItem}
	for itemCount := 0; itemCount < 400; itemCount += 13 {
		for scroll := 0; scroll < 3000; scroll += 101 {
			m.ScrollMain = scroll
			s := planner.Plan(Initial(), m, itemCount, 0)
			assert.LessOrEqual(t, s.PositionCount, max(itemCount, 1))
			assert.GreaterOrEqual(t, s.CurrentPosition, 0)
			assert.LessOrEqual(t, s.EndPosition(), s.Main.Total)
		}
	}
}

func TestState_ContentMain(t *testing.T) {
	s := State{Main: Main{Total: 12}}
	assert.Equal(t, 36, s.ContentMain(3))
	assert.Equal(t, 0, s.ContentMain(-1))
}
