package gridview

import (
	"fmt"

	"github.com/gdamore/tcell/v3"
	"go.uber.org/zap"

	"github.com/xqrs/gridview/axis"
	"github.com/xqrs/gridview/engine"
	"github.com/xqrs/gridview/focus"
	"github.com/xqrs/gridview/keybind"
	"github.com/xqrs/gridview/measure"
)

const (
	// defaultWheelStep is the number of cells a mouse wheel notch scrolls.
	defaultWheelStep = 3
	// defaultOverscan is the distance in cells kept live beyond the viewport.
	defaultOverscan = 8
)

// GridSlot describes one live item handed to a GridRenderer.
type GridSlot[T any] struct {
	Items []T
	Item  T
	Index int
	// TabIndex is 0 for the item holding the focus position, -1 otherwise.
	TabIndex int
	// Style is the slot geometry in content coordinates.
	Style      engine.Style
	Generation uint64
}

// Focused reports whether the slot holds the focus position.
func (s GridSlot[T]) Focused() bool {
	return s.TabIndex == 0
}

// GridRenderer returns the primitive shown in a slot. It is called again
// only when the slot starts showing another item or the items are replaced.
// A primitive with a SetTabIndex(int) method is told when it gains or loses
// the focus position.
type GridRenderer[T any] func(slot GridSlot[T]) Primitive

// gridChild is the primitive currently rendered into one slot.
type gridChild struct {
	index      int
	generation uint64
	tabIndex   int
	primitive  Primitive
}

// VirtualGrid is a windowed list or grid. Only the rows around the viewport
// have primitives; they are recycled while the user scrolls.
//
// The grid is its own scroll target: it owns the main-axis scroll offset and
// notifies the measurement provider about resizes and scrolls.
type VirtualGrid[T any] struct {
	*Box

	engine *engine.Engine
	logger *zap.Logger

	items     []T
	renderer  GridRenderer[T]
	keyMap    keybind.NavigationKeyMap
	direction measure.Direction

	// Main-axis scroll offset in cells.
	scroll int

	listeners    map[int]func()
	nextListener int
	observed     map[measure.Node]struct{}
	content      *gridContent
	// Last viewport size delivered to the provider; -1 forces a delivery.
	lastWidth, lastHeight int

	children map[engine.Key]*gridChild
	// Index of the item whose primitive holds focus, -1 when none does.
	active int

	scrollBar     *ScrollBar
	showScrollBar bool
	separators    bool
	wheelStep     int

	selected func(index int, item T)
	changed  func(index int, item T)

	disposed bool
}

// NewVirtualGrid returns a single-lane vertical list of one-row items.
func NewVirtualGrid[T any]() *VirtualGrid[T] {
	g := &VirtualGrid[T]{
		Box:        NewBox(),
		logger:     zap.NewNop(),
		keyMap:     keybind.DefaultNavigationKeyMap(),
		listeners:  make(map[int]func()),
		observed:   make(map[measure.Node]struct{}),
		lastWidth:  -1,
		lastHeight: -1,
		children:   make(map[engine.Key]*gridChild),
		active:     -1,
		scrollBar:  NewScrollBar(OrientationVertical),
		wheelStep:  defaultWheelStep,
	}
	g.content = &gridContent{parent: g}
	g.engine = engine.New(engine.Config{
		Direction: measure.Vertical,
		Target:    g,
		Container: g.content,
		Observer:  g,
		Sizing:    measure.Static(0, 1),

		OverscanDistance: defaultOverscan,
	}, engine.WithLogger(g.logger))
	g.engine.SetElements(gridElements[T]{g})
	g.engine.SetFocusChangedFunc(g.onFocusChanged)
	g.scrollBar.SetChangedFunc(g.ScrollTo)
	g.scrollBar.setDirtyParent(g.Box)
	return g
}

// SetLogger sets the logger of the grid and its engine.
func (g *VirtualGrid[T]) SetLogger(logger *zap.Logger) *VirtualGrid[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	g.logger = logger
	g.engine.SetLogger(logger)
	return g
}

// SetItems replaces the items. Every rendered primitive is rebuilt.
func (g *VirtualGrid[T]) SetItems(items []T) *VirtualGrid[T] {
	g.items = items
	g.resetChildren()
	g.engine.SetItemCount(len(items))
	g.logger.Debug("items set", zap.Int("count", len(items)))
	g.MarkDirty()
	return g
}

// Items returns the items.
func (g *VirtualGrid[T]) Items() []T {
	return g.items
}

// SetRenderer sets the function building slot primitives. The default renders
// a Cell with the item formatted by fmt.
func (g *VirtualGrid[T]) SetRenderer(renderer GridRenderer[T]) *VirtualGrid[T] {
	g.renderer = renderer
	g.resetChildren()
	g.MarkDirty()
	return g
}

// SetItemSize sets a fixed item size in cells. A zero width (for vertical
// grids) or height (for horizontal ones) fills the lane.
func (g *VirtualGrid[T]) SetItemSize(width, height int) *VirtualGrid[T] {
	return g.SetSizing(measure.Static(float64(width), float64(height)))
}

// SetSizing sets the item sizing.
func (g *VirtualGrid[T]) SetSizing(sizing measure.ItemSizing) *VirtualGrid[T] {
	g.engine.SetSizing(sizing)
	g.MarkDirty()
	return g
}

// SetDirection sets the scroll axis. The scroll offset is reset.
func (g *VirtualGrid[T]) SetDirection(direction measure.Direction) *VirtualGrid[T] {
	if g.direction == direction {
		return g
	}
	g.direction = direction
	g.scroll = 0
	g.lastWidth, g.lastHeight = -1, -1
	if direction == measure.Horizontal {
		g.scrollBar.SetOrientation(OrientationHorizontal)
	} else {
		g.scrollBar.SetOrientation(OrientationVertical)
	}
	g.engine.SetDirection(direction)
	g.MarkDirty()
	return g
}

// Direction returns the scroll axis.
func (g *VirtualGrid[T]) Direction() measure.Direction {
	return g.direction
}

// SetCrossCount sets the function deciding the number of lanes.
func (g *VirtualGrid[T]) SetCrossCount(fn axis.CrossCountFunc) *VirtualGrid[T] {
	g.engine.SetCrossCount(fn)
	g.MarkDirty()
	return g
}

// SetColumns sets a fixed number of lanes.
func (g *VirtualGrid[T]) SetColumns(n int) *VirtualGrid[T] {
	return g.SetCrossCount(axis.FixedColumns(n))
}

// SetOverscan sets the distance in cells rendered beyond the viewport on
// either side.
func (g *VirtualGrid[T]) SetOverscan(distance int) *VirtualGrid[T] {
	g.engine.SetOverscanDistance(float64(distance))
	g.MarkDirty()
	return g
}

// SetKeyMap sets the navigation keys.
func (g *VirtualGrid[T]) SetKeyMap(keyMap keybind.NavigationKeyMap) *VirtualGrid[T] {
	g.keyMap = keyMap
	return g
}

// KeyMap returns the navigation keys.
func (g *VirtualGrid[T]) KeyMap() keybind.NavigationKeyMap {
	return g.keyMap
}

// SetSelectedFunc sets a handler called when an item is activated with the
// select key or a click.
func (g *VirtualGrid[T]) SetSelectedFunc(handler func(index int, item T)) *VirtualGrid[T] {
	g.selected = handler
	return g
}

// SetChangedFunc sets a handler called when the focus position changes.
func (g *VirtualGrid[T]) SetChangedFunc(handler func(index int, item T)) *VirtualGrid[T] {
	g.changed = handler
	return g
}

// SetScrollBarVisible reserves the last column (or row for horizontal grids)
// for a scroll bar.
func (g *VirtualGrid[T]) SetScrollBarVisible(visible bool) *VirtualGrid[T] {
	if g.showScrollBar != visible {
		g.showScrollBar = visible
		g.MarkDirty()
	}
	return g
}

// ScrollBar returns the scroll bar for styling.
func (g *VirtualGrid[T]) ScrollBar() *ScrollBar {
	return g.scrollBar
}

// SetLaneSeparators draws a separator between lanes. Each item gives up its
// last cross-axis cell for it.
func (g *VirtualGrid[T]) SetLaneSeparators(separators bool) *VirtualGrid[T] {
	if g.separators != separators {
		g.separators = separators
		g.MarkDirty()
	}
	return g
}

// SetWheelStep sets the number of cells scrolled per wheel notch.
func (g *VirtualGrid[T]) SetWheelStep(step int) *VirtualGrid[T] {
	g.wheelStep = max(step, 1)
	return g
}

// Engine returns the underlying engine.
func (g *VirtualGrid[T]) Engine() *engine.Engine {
	return g.engine
}

// Slots returns the live slots of the last layout.
func (g *VirtualGrid[T]) Slots() []engine.Slot {
	return g.engine.Slots()
}

// FocusPosition returns the index of the item holding the focus position.
func (g *VirtualGrid[T]) FocusPosition() int {
	return g.engine.Focus().Position()
}

// SetFocusPosition moves the focus position to index and scrolls it into
// view, possibly after the next layout.
func (g *VirtualGrid[T]) SetFocusPosition(index int) *VirtualGrid[T] {
	g.engine.Focus().SetPosition(index)
	g.MarkDirty()
	return g
}

// ScrollPosition returns the main-axis scroll offset.
func (g *VirtualGrid[T]) ScrollPosition() int {
	return g.scroll
}

// ScrollTo sets the main-axis scroll offset, clamped to the content.
func (g *VirtualGrid[T]) ScrollTo(offset int) {
	offset = min(max(offset, 0), g.maxScroll())
	if offset == g.scroll {
		return
	}
	g.scroll = offset
	g.logger.Debug("scroll", zap.Int("offset", offset))
	g.MarkDirty()
	g.notifyScroll()
}

// ScrollBy moves the main-axis scroll offset by delta cells.
func (g *VirtualGrid[T]) ScrollBy(delta int) {
	g.ScrollTo(g.scroll + delta)
}

// Layout delivers pending size changes and runs at most one engine pass, and
// one follow-up pass when deferred focus work scrolled. It then rebuilds the
// primitives of slots that changed.
func (g *VirtualGrid[T]) Layout() {
	if g.disposed {
		return
	}
	g.observe()
	if g.engine.Frame() {
		g.clampScroll()
		// Deferred focus work may have scrolled during the pass.
		g.engine.Frame()
	}
	g.reconcile()
	g.updateScrollBar()
}

// IndexAt returns the item drawn at the screen position.
func (g *VirtualGrid[T]) IndexAt(x, y int) (int, bool) {
	vx, vy, vw, vh := g.viewport()
	if x < vx || x >= vx+vw || y < vy || y >= vy+vh {
		return 0, false
	}
	for _, s := range g.engine.Slots() {
		if s.Empty {
			continue
		}
		sx, sy := g.slotOrigin(s, vx, vy)
		if x >= sx && x < sx+s.Style.Width && y >= sy && y < sy+s.Style.Height {
			return s.Index, true
		}
	}
	return 0, false
}

// Draw lays out the grid and draws the visible slots.
func (g *VirtualGrid[T]) Draw(screen tcell.Screen) {
	g.DrawForSubclass(screen, g)
	g.Layout()

	vx, vy, vw, vh := g.viewport()
	if vw <= 0 || vh <= 0 {
		return
	}
	clipped := newClippedScreen(screen, vx, vy, vw, vh)
	separator := g.GetBorderSet().Separator(g.direction == measure.Vertical)
	separatorStyle := tcell.StyleDefault.Foreground(Styles.BorderColor).Background(g.GetBackgroundColor())
	lanes := g.engine.Axis().Cross.Total

	for _, s := range g.engine.Slots() {
		if s.Empty {
			continue
		}
		child := g.children[s.Key]
		if child == nil {
			continue
		}
		x, y := g.slotOrigin(s, vx, vy)
		width, height := s.Style.Width, s.Style.Height
		if x >= vx+vw || y >= vy+vh || x+width <= vx || y+height <= vy {
			continue
		}
		drawSeparator := g.separators && s.Lane < lanes-1
		if drawSeparator {
			if g.direction == measure.Vertical {
				width--
			} else {
				height--
			}
		}
		child.primitive.SetRect(x, y, width, height)
		child.primitive.Draw(clipped)
		child.primitive.MarkClean()

		if drawSeparator {
			if g.direction == measure.Vertical {
				for row := y; row < y+height; row++ {
					clipped.Put(x+width, row, separator, separatorStyle)
				}
			} else {
				for col := x; col < x+width; col++ {
					clipped.Put(col, y+height, separator, separatorStyle)
				}
			}
		}
	}

	if g.showScrollBar {
		g.scrollBar.Draw(screen)
		g.scrollBar.MarkClean()
	}
}

// IsDirty reports whether the grid or a pending engine pass needs a draw.
func (g *VirtualGrid[T]) IsDirty() bool {
	return g.Box.IsDirty() || (!g.disposed && g.engine.Dirty())
}

// InputHandler moves the focus position with the navigation keys and
// activates the focused item with the select key. Other keys go to the
// focused item's primitive.
func (g *VirtualGrid[T]) InputHandler(event *tcell.EventKey) Command {
	if g.disposed {
		return nil
	}
	if action, ok := g.action(event); ok {
		if !g.engine.Focus().Move(action) {
			return nil
		}
		g.MarkDirty()
		return RedrawCommand{}
	}
	if keybind.Matches(event, g.keyMap.Select) {
		if g.engine.Focus().Activate() {
			return RedrawCommand{}
		}
		return nil
	}
	if child := g.activeChild(); child != nil {
		return child.primitive.InputHandler(event)
	}
	return nil
}

// PasteHandler forwards pasted text to the focused item's primitive.
func (g *VirtualGrid[T]) PasteHandler(text string) Command {
	if child := g.activeChild(); child != nil {
		return child.primitive.PasteHandler(text)
	}
	return nil
}

// MouseHandler focuses an item on press, activates it on click and scrolls
// with the wheel.
func (g *VirtualGrid[T]) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if g.disposed || !g.InRect(event.Position()) {
		return nil, nil
	}
	if g.showScrollBar && g.scrollBar.InRect(event.Position()) {
		return g.scrollBar.MouseHandler(action, event)
	}

	x, y := event.Position()
	switch action {
	case MouseLeftDown:
		if index, ok := g.IndexAt(x, y); ok {
			g.engine.Focus().SetPosition(index)
			g.MarkDirty()
		}
		return nil, SetFocusCommand{Target: g}
	case MouseLeftClick:
		index, ok := g.IndexAt(x, y)
		if !ok {
			return nil, nil
		}
		g.activate(index)
		return nil, RedrawCommand{}
	case MouseScrollUp, MouseScrollLeft:
		g.ScrollBy(-g.wheelStep)
		return nil, RedrawCommand{}
	case MouseScrollDown, MouseScrollRight:
		g.ScrollBy(g.wheelStep)
		return nil, RedrawCommand{}
	}
	return nil, nil
}

// Focus moves focus into the grid, onto the item holding the focus
// position.
func (g *VirtualGrid[T]) Focus(delegate func(p Primitive)) {
	g.Box.Focus(delegate)
	if g.active < 0 {
		g.active = g.engine.Focus().Position()
	}
	g.engine.Focus().FocusIn()
	g.MarkDirty()
}

// Blur removes focus from the grid and its items.
func (g *VirtualGrid[T]) Blur() {
	if child := g.activeChild(); child != nil {
		child.primitive.Blur()
	}
	g.active = -1
	g.Box.Blur()
	g.engine.Focus().FocusOut()
}

// Dispose releases the engine and every rendered primitive. The grid draws
// nothing afterwards.
func (g *VirtualGrid[T]) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	g.engine.Dispose()
	g.resetChildren()
	clear(g.listeners)
	clear(g.observed)
	g.MarkDirty()
}

// OffsetParent implements measure.Node. The grid is the root of its own
// layout tree.
func (g *VirtualGrid[T]) OffsetParent() measure.Node {
	return nil
}

// Offset implements measure.Node.
func (g *VirtualGrid[T]) Offset() (x, y float64) {
	vx, vy, _, _ := g.viewport()
	return float64(vx), float64(vy)
}

// ScrollOffset implements measure.ScrollTarget.
func (g *VirtualGrid[T]) ScrollOffset() (x, y float64) {
	sx, sy := g.direction.Unproject(g.scroll, 0)
	return float64(sx), float64(sy)
}

// Subscribe implements measure.ScrollTarget.
func (g *VirtualGrid[T]) Subscribe(fn func()) (unsubscribe func()) {
	id := g.nextListener
	g.nextListener++
	g.listeners[id] = fn
	return func() { delete(g.listeners, id) }
}

// Observe implements measure.ResizeObserver.
func (g *VirtualGrid[T]) Observe(n measure.Node) {
	g.observed[n] = struct{}{}
	g.lastWidth, g.lastHeight = -1, -1
}

// Unobserve implements measure.ResizeObserver.
func (g *VirtualGrid[T]) Unobserve(n measure.Node) {
	delete(g.observed, n)
}

// viewport returns the screen rectangle items are drawn into.
func (g *VirtualGrid[T]) viewport() (x, y, width, height int) {
	x, y, width, height = g.GetInnerRect()
	if g.showScrollBar {
		if g.direction == measure.Horizontal {
			height = max(height-1, 0)
		} else {
			width = max(width-1, 0)
		}
	}
	return x, y, width, height
}

// observe delivers one resize batch when the viewport size changed.
func (g *VirtualGrid[T]) observe() {
	_, _, width, height := g.viewport()
	if width == g.lastWidth && height == g.lastHeight {
		return
	}
	g.lastWidth, g.lastHeight = width, height

	batch := make([]measure.Observation, 0, len(g.observed))
	for n := range g.observed {
		batch = append(batch, measure.Observation{
			Node:          n,
			Width:         float64(width),
			Height:        float64(height),
			ContentWidth:  float64(width),
			ContentHeight: float64(height),
		})
	}
	g.logger.Debug("resize", zap.Int("width", width), zap.Int("height", height))
	g.engine.Provider().HandleResize(batch)
	g.clampScroll()
}

func (g *VirtualGrid[T]) notifyScroll() {
	for _, fn := range g.listeners {
		fn()
	}
}

// maxScroll returns the largest main-axis offset that still fills the
// viewport.
func (g *VirtualGrid[T]) maxScroll() int {
	m := g.engine.Measurements()
	if !m.Measured {
		return 0
	}
	return max(g.engine.Axis().ContentMain(m.Item.Main)-m.Target.Main, 0)
}

// clampScroll pulls the offset back after the content shrank. It reports
// whether the offset changed.
func (g *VirtualGrid[T]) clampScroll() bool {
	limit := g.maxScroll()
	if g.scroll <= limit {
		return false
	}
	g.scroll = limit
	g.notifyScroll()
	return true
}

// scrollIntoView scrolls the least amount that shows the whole slot.
func (g *VirtualGrid[T]) scrollIntoView(style engine.Style) {
	start, length := style.Y, style.Height
	if g.direction == measure.Horizontal {
		start, length = style.X, style.Width
	}
	viewport := g.engine.Measurements().Target.Main
	switch {
	case start < g.scroll:
		g.ScrollTo(start)
	case start+length > g.scroll+viewport:
		g.ScrollTo(start + length - viewport)
	}
}

// slotOrigin returns the screen position of a slot.
func (g *VirtualGrid[T]) slotOrigin(s engine.Slot, vx, vy int) (int, int) {
	dx, dy := g.direction.Unproject(g.scroll, 0)
	return vx + s.Style.X - dx, vy + s.Style.Y - dy
}

func (g *VirtualGrid[T]) updateScrollBar() {
	m := g.engine.Measurements()
	content := 0
	if m.Measured {
		content = g.engine.Axis().ContentMain(m.Item.Main)
	}
	g.scrollBar.SetLengths(ScrollLengths{ContentLen: content, ViewportLen: m.Target.Main})
	g.scrollBar.SetOffset(g.scroll)

	x, y, width, height := g.GetInnerRect()
	if g.direction == measure.Horizontal {
		g.scrollBar.SetRect(x, y+height-1, width, 1)
	} else {
		g.scrollBar.SetRect(x+width-1, y, 1, height)
	}
}

// tabIndexer is implemented by rendered primitives that track whether they
// hold the focus position.
type tabIndexer interface {
	SetTabIndex(tabIndex int)
}

// reconcile keeps one primitive per live, non-empty slot. Primitives are
// rebuilt only when the slot shows another item; a tab index change is passed
// on through SetTabIndex.
func (g *VirtualGrid[T]) reconcile() {
	slots := g.engine.Slots()
	live := make(map[engine.Key]struct{}, len(slots))
	for _, s := range slots {
		if s.Empty || s.Index >= len(g.items) {
			continue
		}
		live[s.Key] = struct{}{}
		child := g.children[s.Key]
		if child != nil && child.generation == s.Generation && child.index == s.Index {
			if child.tabIndex != s.TabIndex {
				child.tabIndex = s.TabIndex
				if t, ok := child.primitive.(tabIndexer); ok {
					t.SetTabIndex(s.TabIndex)
				}
				g.MarkDirty()
			}
			continue
		}
		if child != nil {
			g.releaseChild(child)
		}
		child = &gridChild{
			index:      s.Index,
			generation: s.Generation,
			tabIndex:   s.TabIndex,
			primitive:  g.render(s),
		}
		g.children[s.Key] = child
		bindDirtyParent(child.primitive, g.Box)
		if s.Index == g.active && g.HasFocus() {
			child.primitive.Focus(func(Primitive) {})
		}
		g.MarkDirty()
	}
	for key, child := range g.children {
		if _, ok := live[key]; !ok {
			g.releaseChild(child)
			delete(g.children, key)
		}
	}
}

func (g *VirtualGrid[T]) render(s engine.Slot) Primitive {
	slot := GridSlot[T]{
		Items:      g.items,
		Item:       g.items[s.Index],
		Index:      s.Index,
		TabIndex:   s.TabIndex,
		Style:      s.Style,
		Generation: s.Generation,
	}
	if g.renderer != nil {
		if p := g.renderer(slot); p != nil {
			return p
		}
	}
	return NewCell(fmt.Sprint(slot.Item))
}

func (g *VirtualGrid[T]) releaseChild(child *gridChild) {
	if child.primitive.HasFocus() {
		child.primitive.Blur()
	}
	unbindDirtyParent(child.primitive, g.Box)
}

func (g *VirtualGrid[T]) resetChildren() {
	for _, child := range g.children {
		g.releaseChild(child)
	}
	clear(g.children)
}

// childAt returns the primitive showing the item at index.
func (g *VirtualGrid[T]) childAt(index int) *gridChild {
	s, ok := g.engine.Lookup(index)
	if !ok {
		return nil
	}
	child := g.children[s.Key]
	if child == nil || child.index != index {
		return nil
	}
	return child
}

func (g *VirtualGrid[T]) activeChild() *gridChild {
	if g.active < 0 {
		return nil
	}
	return g.childAt(g.active)
}

// setActive moves primitive focus to the item at index.
func (g *VirtualGrid[T]) setActive(index int) {
	if g.active == index {
		if child := g.childAt(index); child != nil && !child.primitive.HasFocus() && g.HasFocus() {
			child.primitive.Focus(func(Primitive) {})
		}
		return
	}
	if child := g.activeChild(); child != nil {
		child.primitive.Blur()
	}
	g.active = index
	if child := g.childAt(index); child != nil && g.HasFocus() {
		child.primitive.Focus(func(Primitive) {})
	}
	g.MarkDirty()
}

// activator is implemented by primitives reacting to activation, e.g. Cell.
type activator interface {
	Activate() bool
}

func (g *VirtualGrid[T]) activate(index int) {
	if index < 0 || index >= len(g.items) {
		return
	}
	if child := g.childAt(index); child != nil {
		if a, ok := child.primitive.(activator); ok {
			a.Activate()
		}
	}
	g.logger.Debug("activate", zap.Int("index", index))
	if g.selected != nil {
		g.selected(index, g.items[index])
	}
}

func (g *VirtualGrid[T]) onFocusChanged(position int) {
	g.MarkDirty()
	if g.changed != nil && position >= 0 && position < len(g.items) {
		g.changed(position, g.items[position])
	}
}

// action maps a key onto a navigation action. Up and down follow the main
// axis of vertical grids and the cross axis of horizontal ones.
func (g *VirtualGrid[T]) action(event *tcell.EventKey) (focus.Action, bool) {
	vertical := g.direction == measure.Vertical
	switch {
	case keybind.Matches(event, g.keyMap.Up):
		if vertical {
			return focus.MainPrev, true
		}
		return focus.CrossPrev, true
	case keybind.Matches(event, g.keyMap.Down):
		if vertical {
			return focus.MainNext, true
		}
		return focus.CrossNext, true
	case keybind.Matches(event, g.keyMap.Left):
		if vertical {
			return focus.CrossPrev, true
		}
		return focus.MainPrev, true
	case keybind.Matches(event, g.keyMap.Right):
		if vertical {
			return focus.CrossNext, true
		}
		return focus.MainNext, true
	case keybind.Matches(event, g.keyMap.PageUp):
		return focus.PagePrev, true
	case keybind.Matches(event, g.keyMap.PageDown):
		return focus.PageNext, true
	case keybind.Matches(event, g.keyMap.Home):
		return focus.First, true
	case keybind.Matches(event, g.keyMap.End):
		return focus.Last, true
	}
	return 0, false
}

var (
	_ Primitive              = (*VirtualGrid[string])(nil)
	_ measure.ScrollTarget   = (*VirtualGrid[string])(nil)
	_ measure.ResizeObserver = (*VirtualGrid[string])(nil)
)
