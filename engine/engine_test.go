package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xqrs/gridview/axis"
	"github.com/xqrs/gridview/focus"
	"github.com/xqrs/gridview/measure"
)

type fakeNode struct {
	parent measure.Node
	x, y   float64
}

func (n *fakeNode) OffsetParent() measure.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *fakeNode) Offset() (float64, float64) { return n.x, n.y }

type fakeTarget struct {
	fakeNode
	scrollX, scrollY float64
	listeners        map[int]func()
	nextID           int
}

func (t *fakeTarget) ScrollOffset() (float64, float64) { return t.scrollX, t.scrollY }

func (t *fakeTarget) Subscribe(fn func()) func() {
	if t.listeners == nil {
		t.listeners = map[int]func(){}
	}
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	return func() { delete(t.listeners, id) }
}

func (t *fakeTarget) scrollTo(y float64) {
	t.scrollY = y
	for _, fn := range t.listeners {
		fn()
	}
}

type fakeObserver struct {
	observed map[measure.Node]bool
}

func (o *fakeObserver) Observe(n measure.Node)   { o.observed[n] = true }
func (o *fakeObserver) Unobserve(n measure.Node) { delete(o.observed, n) }

type fixture struct {
	target    *fakeTarget
	container *fakeNode
	observer  *fakeObserver
	engine    *Engine
}

func newFixture(t *testing.T, cfg Config, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		target:   &fakeTarget{},
		observer: &fakeObserver{observed: map[measure.Node]bool{}},
	}
	f.container = &fakeNode{parent: f.target}
	cfg.Target = f.target
	cfg.Container = f.container
	cfg.Observer = f.observer
	f.engine = New(cfg, opts...)
	t.Cleanup(f.engine.Dispose)
	return f
}

// resize delivers one observation batch sizing both nodes to width x height.
func (f *fixture) resize(width, height float64) {
	f.engine.Provider().HandleResize([]measure.Observation{
		{Node: f.target, Width: width, Height: height, ContentWidth: width, ContentHeight: height},
		{Node: f.container, Width: width, Height: height, ContentWidth: width, ContentHeight: height},
	})
}

func rows(slots []Slot) []int {
	var out []int
	for _, s := range slots {
		if s.Lane == 0 {
			out = append(out, s.Row)
		}
	}
	return out
}

func TestEngine_UnmeasuredHasNoSlots(t *testing.T) {
	f := newFixture(t, Config{Sizing: measure.Static(0, 1)})
	f.engine.SetItemCount(100)

	require.True(t, f.engine.Frame())
	assert.Empty(t, f.engine.Slots())
	assert.Equal(t, axis.Initial(), f.engine.Axis())
}

func TestEngine_ListWindow(t *testing.T) {
	f := newFixture(t, Config{Sizing: measure.Static(0, 1), OverscanDistance: 4})
	f.engine.SetItemCount(1000)
	f.resize(80, 24)

	require.True(t, f.engine.Frame())
	s := f.engine.Axis()
	assert.Equal(t, 4, s.Overscan)
	assert.Equal(t, 24, s.VisibleCount)
	assert.Equal(t, 32, s.PositionCount)
	assert.Equal(t, 0, s.CurrentPosition)

	slots := f.engine.Slots()
	require.Len(t, slots, 33)
	assert.Equal(t, 32, slots[32].Row, "reserved slot sits right after the window")
	assert.Equal(t, Style{X: 0, Y: 5, Width: 80, Height: 1}, slots[5].Style)
	assert.Equal(t, 0, slots[0].TabIndex)
	assert.Equal(t, -1, slots[1].TabIndex)
}

func TestEngine_ScrollReusesSlots(t *testing.T) {
	f := newFixture(t, Config{Sizing: measure.Static(0, 1), OverscanDistance: 4})
	f.engine.SetItemCount(1000)
	f.resize(80, 24)
	f.engine.Frame()

	before := map[int]uint64{}
	for _, s := range f.engine.Slots() {
		before[s.Row] = s.Generation
	}

	f.target.scrollTo(10)
	require.True(t, f.engine.Frame())
	assert.Equal(t, 6, f.engine.Axis().CurrentPosition)

	slots := f.engine.Slots()
	require.Len(t, slots, 33)
	got := map[int]bool{}
	for _, s := range slots {
		got[s.Row] = true
		if gen, ok := before[s.Row]; ok {
			assert.Equal(t, gen, s.Generation, "row %d kept its slot", s.Row)
		}
	}
	for row := 6; row < 38; row++ {
		assert.True(t, got[row], "row %d is live", row)
	}
	assert.True(t, got[0], "focused row stays live")
}

func TestEngine_FrameCoalesces(t *testing.T) {
	f := newFixture(t, Config{Sizing: measure.Static(0, 1)})
	f.engine.SetItemCount(1000)
	f.resize(80, 24)
	f.engine.Frame()
	passes := f.engine.Passes()

	f.target.scrollTo(1)
	f.target.scrollTo(2)
	f.target.scrollTo(3)
	f.engine.Invalidate()

	assert.True(t, f.engine.Frame())
	assert.False(t, f.engine.Frame())
	assert.Equal(t, passes+1, f.engine.Passes())
}

func TestEngine_Grid(t *testing.T) {
	f := newFixture(t, Config{Sizing: measure.Static(10, 1), CrossCount: axis.FixedColumns(3)})
	f.engine.SetItemCount(10)
	f.resize(80, 24)
	f.engine.Frame()

	s := f.engine.Axis()
	assert.Equal(t, 3, s.Cross.Total)
	assert.Equal(t, 4, s.Main.Total)
	assert.False(t, s.Windowed())

	slots := f.engine.Slots()
	require.Len(t, slots, 12)

	tests := map[string]struct {
		slot  Slot
		index int
		empty bool
		style Style
	}{
		"first":        {slot: slots[0], index: 0, style: Style{X: 0, Y: 0, Width: 10, Height: 1}},
		"second row":   {slot: slots[4], index: 4, style: Style{X: 10, Y: 1, Width: 10, Height: 1}},
		"last item":    {slot: slots[9], index: 9, style: Style{X: 0, Y: 3, Width: 10, Height: 1}},
		"past the end": {slot: slots[11], index: 11, empty: true, style: Style{X: 20, Y: 3, Width: 10, Height: 1}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.index, tt.slot.Index)
			assert.Equal(t, tt.empty, tt.slot.Empty)
			assert.Equal(t, tt.style, tt.slot.Style)
		})
	}
	assert.Equal(t, -1, slots[11].TabIndex)
	assert.Equal(t, "translate(10px, 1px)", slots[4].Style.Transform())
}

func TestEngine_LanesBoundedByItems(t *testing.T) {
	f := newFixture(t, Config{Sizing: measure.Static(0, 1), CrossCount: axis.FixedColumns(1_000_000_000)})
	f.engine.SetItemCount(50)
	f.resize(10, 10)
	f.engine.Frame()

	assert.Equal(t, 50, f.engine.Axis().Cross.Total)
	assert.Equal(t, 1, f.engine.Axis().Main.Total)
	assert.LessOrEqual(t, len(f.engine.Slots()), 2*50)
	_, ok := f.engine.Lookup(49)
	assert.True(t, ok)
}

func TestEngine_HorizontalStyle(t *testing.T) {
	f := newFixture(t, Config{Direction: measure.Horizontal, Sizing: measure.Static(12, 0)})
	f.engine.SetItemCount(50)
	f.resize(80, 4)
	f.engine.Frame()

	slot, ok := f.engine.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, Style{X: 36, Y: 0, Width: 12, Height: 4}, slot.Style)

	w, h := f.engine.ContentSize()
	assert.Equal(t, 600, w)
	assert.Equal(t, 4, h)
}

func TestEngine_LaneChangeStartsNewGenerations(t *testing.T) {
	f := newFixture(t, Config{Sizing: measure.Static(10, 1), CrossCount: axis.FixedColumns(2)})
	f.engine.SetItemCount(12)
	f.resize(80, 24)
	f.engine.Frame()
	before := map[Key]Slot{}
	for _, s := range f.engine.Slots() {
		before[s.Key] = s
	}

	f.engine.SetCrossCount(axis.FixedColumns(3))
	f.engine.Frame()

	for _, s := range f.engine.Slots() {
		prev, ok := before[s.Key]
		if !ok {
			continue
		}
		if prev.Index == s.Index {
			assert.Equal(t, prev.Generation, s.Generation, "%+v", s.Key)
		} else {
			assert.NotEqual(t, prev.Generation, s.Generation, "%+v", s.Key)
		}
	}
}

func TestEngine_ContentSize(t *testing.T) {
	f := newFixture(t, Config{Sizing: measure.Static(0, 2)})
	f.engine.SetItemCount(1000)
	f.resize(80, 24)
	f.engine.Frame()

	w, h := f.engine.ContentSize()
	assert.Equal(t, 80, w)
	assert.Equal(t, 2000, h)
}

func TestEngine_ShrinkClampsFocus(t *testing.T) {
	f := newFixture(t, Config{Sizing: measure.Static(0, 1)})
	f.engine.SetItemCount(100)
	f.resize(80, 24)
	f.engine.Frame()
	f.engine.Focus().SetPosition(90)

	f.engine.SetItemCount(10)
	f.engine.Frame()

	assert.Equal(t, 9, f.engine.Focus().Position())
	for _, s := range f.engine.Slots() {
		assert.Less(t, s.Row, 10)
	}
}

type element struct {
	focused, scrolled int
}

func (e *element) Focus()          { e.focused++ }
func (e *element) ScrollIntoView() { e.scrolled++ }
func (e *element) Activate()       {}

// liveElements hands out one element per item index.
type liveElements struct {
	elements map[int]*element
}

func (l *liveElements) Element(s Slot) (focus.Element, bool) {
	el, ok := l.elements[s.Index]
	if !ok {
		el = &element{}
		l.elements[s.Index] = el
	}
	return el, true
}

func (l *liveElements) FocusedIndex() (int, bool)            { return 0, false }
func (l *liveElements) ActiveElement() (focus.Element, bool) { return nil, false }
func (l *liveElements) ContainsFocus() bool                  { return true }

func TestEngine_FocusWaitsForTheSlot(t *testing.T) {
	f := newFixture(t, Config{Sizing: measure.Static(0, 1), OverscanDistance: 2})
	f.engine.SetItemCount(1000)
	host := &liveElements{elements: map[int]*element{}}
	f.engine.SetElements(host)
	var changes []int
	f.engine.SetFocusChangedFunc(func(p int) { changes = append(changes, p) })
	f.resize(80, 24)
	f.engine.Frame()

	require.True(t, f.engine.Focus().SetPosition(500))
	assert.Empty(t, host.elements, "row 500 is not live yet")
	assert.True(t, f.engine.Dirty())

	require.True(t, f.engine.Frame())
	assert.Contains(t, rows(f.engine.Slots()), 500)
	require.Contains(t, host.elements, 500)
	assert.Equal(t, 1, host.elements[500].focused)
	assert.Equal(t, 1, host.elements[500].scrolled)
	assert.Equal(t, []int{500}, changes)

	slot, ok := f.engine.Lookup(500)
	require.True(t, ok)
	assert.Equal(t, 0, slot.TabIndex)
}

func TestEngine_DeferRunsAfterThePass(t *testing.T) {
	f := newFixture(t, Config{Sizing: measure.Static(0, 1)})
	f.engine.SetItemCount(10)
	f.resize(80, 24)

	var order []string
	f.engine.Defer(func() {
		order = append(order, "deferred")
		f.engine.Defer(func() { order = append(order, "nested") })
	})
	order = append(order, "before")
	f.engine.Frame()

	assert.Equal(t, []string{"before", "deferred", "nested"}, order)
	assert.False(t, f.engine.Dirty(), "deferring inside a pass does not schedule another one")
}

func TestEngine_Dispose(t *testing.T) {
	f := newFixture(t, Config{Sizing: measure.Static(0, 1)})
	f.engine.SetItemCount(10)
	f.resize(80, 24)
	f.engine.Frame()
	require.Len(t, f.target.listeners, 1)
	require.Len(t, f.observer.observed, 2)

	f.engine.Dispose()
	f.engine.Dispose()

	assert.True(t, f.engine.Disposed())
	assert.Empty(t, f.target.listeners)
	assert.Empty(t, f.observer.observed)
	assert.Empty(t, f.engine.Slots())
	assert.False(t, f.engine.Frame())
}

func TestEngine_LogsPasses(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	f := newFixture(t, Config{Sizing: measure.Static(0, 1)}, WithLogger(zap.New(core)))
	f.engine.SetItemCount(10)
	f.resize(80, 24)
	f.engine.Frame()

	entries := logs.FilterMessage("recompute").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(10), fields["items"])
	assert.Equal(t, true, fields["measured"])
}
