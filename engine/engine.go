// Package engine wires the measurement, axis, pool and focus stages into one
// recompute pass and keeps the live slots for a renderer.
package engine

import (
	"go.uber.org/zap"

	"github.com/xqrs/gridview/axis"
	"github.com/xqrs/gridview/focus"
	"github.com/xqrs/gridview/measure"
	"github.com/xqrs/gridview/pool"
)

// Config holds the inputs of an Engine.
type Config struct {
	Direction measure.Direction
	Target    measure.ScrollTarget
	Container measure.Node
	Observer  measure.ResizeObserver
	Sizing    measure.ItemSizing

	// CrossCount is optional; nil means a plain list.
	CrossCount axis.CrossCountFunc
	// OverscanDistance defaults to axis.DefaultOverscanDistance when zero.
	OverscanDistance float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine runs the pipeline
//
//	Measurements -> Axis -> Pool -> Focus
//
// once per frame at most. It is not safe for concurrent use; it is driven
// from the host's event loop.
type Engine struct {
	provider *measure.Provider
	planner  axis.Planner
	pool     *pool.Pool
	focus    *focus.Controller
	queue    Queue
	logger   *zap.Logger

	state     axis.State
	itemCount int
	slots     []Slot
	identity  map[Key]slotIdentity
	nextGen   uint64

	dirty    bool
	running  bool
	version  uint64
	passes   uint64
	disposed bool

	elements     Elements
	focusChanged func(position int)
}

// New returns an engine attached to cfg.Target.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		planner: axis.Planner{
			CrossCount:       cfg.CrossCount,
			OverscanDistance: cfg.OverscanDistance,
		},
		pool:     pool.New(),
		logger:   zap.NewNop(),
		state:    axis.Initial(),
		identity: make(map[Key]slotIdentity),
		dirty:    true,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.focus = focus.New(focusHost{e}, e)
	e.focus.SetChangedFunc(e.onFocusChanged)
	e.provider = measure.NewProvider(measure.Config{
		Direction: cfg.Direction,
		Target:    cfg.Target,
		Container: cfg.Container,
		Observer:  cfg.Observer,
		Sizing:    cfg.Sizing,
	})
	return e
}

// Elements gives the engine access to the host's live elements.
type Elements interface {
	// Element returns the element rendered into the slot.
	Element(s Slot) (focus.Element, bool)
	// FocusedIndex returns the item whose element currently holds focus.
	FocusedIndex() (int, bool)
	ActiveElement() (focus.Element, bool)
	// ContainsFocus reports whether focus is anywhere inside the container.
	ContainsFocus() bool
}

// SetLogger replaces the logger. nil restores the no-op logger.
func (e *Engine) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	e.logger = logger
}

// Provider returns the measurement provider, which the host feeds with
// resize batches and scroll notifications.
func (e *Engine) Provider() *measure.Provider {
	return e.provider
}

// SetElements connects the focus controller to the host's live elements.
func (e *Engine) SetElements(elements Elements) {
	e.elements = elements
}

// SetFocusChangedFunc sets a handler called whenever the focus position
// changes.
func (e *Engine) SetFocusChangedFunc(handler func(position int)) {
	e.focusChanged = handler
}

// SetItemCount sets the number of items.
func (e *Engine) SetItemCount(n int) {
	n = max(n, 0)
	if n == e.itemCount {
		return
	}
	e.itemCount = n
	e.focus.Clamp()
	e.Invalidate()
}

// ItemCount returns the number of items.
func (e *Engine) ItemCount() int {
	return e.itemCount
}

// SetDirection changes the scroll direction. Slots are kept until the new
// direction has been measured.
func (e *Engine) SetDirection(d measure.Direction) {
	e.provider.SetDirection(d)
	e.Invalidate()
}

// SetSizing replaces the item sizing.
func (e *Engine) SetSizing(s measure.ItemSizing) {
	e.provider.SetSizing(s)
	e.Invalidate()
}

// SetCrossCount replaces the lane count function.
func (e *Engine) SetCrossCount(fn axis.CrossCountFunc) {
	e.planner.CrossCount = fn
	e.Invalidate()
}

// SetOverscanDistance replaces the overscan distance.
func (e *Engine) SetOverscanDistance(distance float64) {
	e.planner.OverscanDistance = distance
	e.Invalidate()
}

// Invalidate schedules a pass for the next frame.
func (e *Engine) Invalidate() {
	e.dirty = true
}

// Dirty reports whether the next Frame runs a pass.
func (e *Engine) Dirty() bool {
	return e.dirty || e.provider.Version() != e.version
}

// Frame runs one pass when anything changed since the previous pass. Any
// number of notifications between two frames result in a single pass.
func (e *Engine) Frame() bool {
	if e.disposed || !e.Dirty() {
		return false
	}
	e.Recompute()
	return true
}

// Recompute runs one full pass and then drains the deferred functions.
func (e *Engine) Recompute() {
	if e.disposed {
		return
	}
	e.running = true
	defer func() { e.running = false }()
	e.passes++

	m := e.provider.Measurements()
	e.focus.Clamp()
	e.state = e.planner.Plan(e.state, m, e.itemCount, e.focus.Position())
	changed := e.pool.Update(e.state)
	e.slots = e.expand(m)

	e.logger.Debug("recompute",
		zap.Uint64("pass", e.passes),
		zap.Bool("measured", m.Measured),
		zap.Int("items", e.itemCount),
		zap.Int("lanes", e.state.Cross.Total),
		zap.Int("rows", e.state.Main.Total),
		zap.Int("start", e.state.CurrentPosition),
		zap.Int("positions", e.state.PositionCount),
		zap.Int("slots", len(e.slots)),
		zap.Bool("pool_changed", changed),
	)

	// Focus changes from here on need another pass.
	e.dirty = false
	e.version = e.provider.Version()
	e.queue.Drain()
}

// Passes returns the number of passes run so far.
func (e *Engine) Passes() uint64 {
	return e.passes
}

// Defer runs fn after the current pass. Outside of a pass fn runs after the
// next one.
func (e *Engine) Defer(fn func()) {
	e.queue.Defer(fn)
	if !e.running {
		e.dirty = true
	}
}

// Slots returns the live slots of the last pass. The slice must not be
// modified.
func (e *Engine) Slots() []Slot {
	return e.slots
}

// Lookup returns the live, non-empty slot showing the item at index.
func (e *Engine) Lookup(index int) (Slot, bool) {
	for _, s := range e.slots {
		if s.Index == index && !s.Empty {
			return s, true
		}
	}
	return Slot{}, false
}

// Axis returns the axis state of the last pass.
func (e *Engine) Axis() axis.State {
	return e.state
}

// Measurements returns the current measurements.
func (e *Engine) Measurements() measure.Measurements {
	return e.provider.Measurements()
}

// Focus returns the focus controller.
func (e *Engine) Focus() *focus.Controller {
	return e.focus
}

// ContentSize returns the width and height of the full content.
func (e *Engine) ContentSize() (width, height int) {
	m := e.provider.Measurements()
	return e.provider.Direction().Unproject(e.state.ContentMain(m.Item.Main), m.Container.Cross)
}

// Dispose detaches the observers and the scroll listener and drops every
// slot. It is safe to call more than once.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.provider.Close()
	e.pool.Clear()
	e.queue.Reset()
	e.slots = nil
	clear(e.identity)
	e.logger.Debug("disposed", zap.Uint64("passes", e.passes))
}

// Disposed reports whether Dispose was called.
func (e *Engine) Disposed() bool {
	return e.disposed
}

func (e *Engine) onFocusChanged(position int) {
	e.Invalidate()
	if e.focusChanged != nil {
		e.focusChanged(position)
	}
}

// expand turns the row slots of the pool into one slot per lane.
func (e *Engine) expand(m measure.Measurements) []Slot {
	rows := e.pool.Slots()
	lanes := max(e.state.Cross.Total, 1)
	dir := e.provider.Direction()
	width, height := dir.Unproject(m.Item.Main, m.Item.Cross)

	slots := make([]Slot, 0, len(rows)*lanes)
	seen := make(map[Key]struct{}, len(rows)*lanes)
	for i, row := range rows {
		for lane := 0; lane < lanes; lane++ {
			key := Key{Slot: i, Lane: lane}
			seen[key] = struct{}{}
			s := Slot{
				Key:      key,
				Row:      row.Position,
				Lane:     lane,
				Index:    row.Position*lanes + lane,
				TabIndex: -1,
			}
			s.Empty = row.Position < 0 || row.Position >= e.state.Main.Total || s.Index >= e.itemCount
			if !s.Empty {
				s.TabIndex = e.focus.TabIndex(s.Index)
			}
			s.Generation = e.generation(key, s.Index)

			x, y := dir.Unproject(row.Position*m.Item.Main, lane*m.Item.Cross)
			s.Style = Style{X: x, Y: y, Width: width, Height: height}
			slots = append(slots, s)
		}
	}
	for key := range e.identity {
		if _, ok := seen[key]; !ok {
			delete(e.identity, key)
		}
	}
	return slots
}

// generation returns the generation of the slot at key, starting a new one
// when the slot now shows another item.
func (e *Engine) generation(key Key, index int) uint64 {
	id, ok := e.identity[key]
	if ok && id.index == index {
		return id.generation
	}
	e.nextGen++
	e.identity[key] = slotIdentity{index: index, generation: e.nextGen}
	return e.nextGen
}

// focusHost resolves focus positions through the live slots.
type focusHost struct {
	e *Engine
}

func (h focusHost) ItemCount() int  { return h.e.itemCount }
func (h focusHost) CrossTotal() int { return h.e.state.Cross.Total }
func (h focusHost) PageRows() int   { return max(h.e.state.VisibleCount-1, 1) }

func (h focusHost) Resolve(position int) (focus.Element, bool) {
	if h.e.elements == nil {
		return nil, false
	}
	s, ok := h.e.Lookup(position)
	if !ok {
		return nil, false
	}
	return h.e.elements.Element(s)
}

func (h focusHost) FocusedPosition() (int, bool) {
	if h.e.elements == nil {
		return 0, false
	}
	return h.e.elements.FocusedIndex()
}

func (h focusHost) ActiveElement() (focus.Element, bool) {
	if h.e.elements == nil {
		return nil, false
	}
	return h.e.elements.ActiveElement()
}

func (h focusHost) ContainsFocus() bool {
	return h.e.elements != nil && h.e.elements.ContainsFocus()
}
