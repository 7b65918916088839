// Package focus implements roving keyboard focus over a windowed list or
// grid whose live elements are recycled while the user navigates.
package focus

// Action is a navigation request.
type Action uint8

const (
	// MainPrev moves one row back along the scroll axis.
	MainPrev Action = iota
	// MainNext moves one row forward along the scroll axis.
	MainNext
	// CrossPrev moves to the previous item, wrapping to the previous row.
	CrossPrev
	// CrossNext moves to the next item, wrapping to the next row.
	CrossNext
	// First moves to the first item.
	First
	// Last moves to the last item.
	Last
	// PagePrev moves one page of rows back.
	PagePrev
	// PageNext moves one page of rows forward.
	PageNext
)

// Element is a live element the controller can focus.
type Element interface {
	Focus()
	// ScrollIntoView scrolls the element into the viewport with "nearest"
	// alignment.
	ScrollIntoView()
	Activate()
}

// Host exposes the current layout to the controller.
type Host interface {
	ItemCount() int
	// CrossTotal returns the number of lanes.
	CrossTotal() int
	// PageRows returns the number of rows a page step moves.
	PageRows() int
	// Resolve returns the live element showing the item at position.
	Resolve(position int) (Element, bool)
	// FocusedPosition returns the item whose element currently holds focus.
	FocusedPosition() (int, bool)
	// ActiveElement returns the element currently holding focus.
	ActiveElement() (Element, bool)
	// ContainsFocus reports whether focus is anywhere inside the container.
	ContainsFocus() bool
}

// Scheduler runs functions after the current pass.
type Scheduler interface {
	Defer(fn func())
}

// Controller tracks the focus position, a single logical item index.
type Controller struct {
	host      Host
	scheduler Scheduler

	position int
	changed  func(position int)
}

// New returns a controller with the focus position at 0.
func New(host Host, scheduler Scheduler) *Controller {
	return &Controller{host: host, scheduler: scheduler}
}

// SetHost replaces the host.
func (c *Controller) SetHost(host Host) {
	c.host = host
}

// SetChangedFunc sets a handler called whenever the focus position changes.
func (c *Controller) SetChangedFunc(handler func(position int)) {
	c.changed = handler
}

// Position returns the focus position.
func (c *Controller) Position() int {
	return c.position
}

// TabIndex returns 0 for the focused item and -1 for every other item.
func (c *Controller) TabIndex(position int) int {
	if position == c.position {
		return 0
	}
	return -1
}

// SetPosition moves focus to position, clamped to the item range, and
// focuses the matching element. It reports whether the position changed.
func (c *Controller) SetPosition(position int) bool {
	if c.host != nil {
		position = min(position, c.host.ItemCount()-1)
	}
	position = max(position, 0)
	if !c.set(position) {
		return false
	}
	c.Sync()
	return true
}

// Clamp pulls the position back into the item range without moving DOM
// focus, e.g. after the items shrank.
func (c *Controller) Clamp() {
	if c.host == nil {
		return
	}
	c.set(max(min(c.position, c.host.ItemCount()-1), 0))
}

// Move applies a navigation action. Moves leaving the item range are
// ignored.
func (c *Controller) Move(a Action) bool {
	if c.host == nil {
		return false
	}
	count := c.host.ItemCount()
	if count <= 0 {
		return false
	}
	lanes := max(c.host.CrossTotal(), 1)

	next := c.position
	switch a {
	case MainPrev:
		next -= lanes
	case MainNext:
		next += lanes
	case CrossPrev:
		next--
	case CrossNext:
		next++
	case First:
		next = 0
	case Last:
		next = count - 1
	case PagePrev:
		next -= lanes * max(c.host.PageRows(), 1)
		if next < 0 {
			next = c.position % lanes
		}
	case PageNext:
		next += lanes * max(c.host.PageRows(), 1)
		if next >= count {
			next = count - 1
		}
	default:
		return false
	}
	if next < 0 || next >= count || next == c.position {
		return false
	}
	c.set(next)
	c.Sync()
	return true
}

// Activate activates the element holding focus. It returns false when no
// element holds focus, in which case the key event should not be consumed.
func (c *Controller) Activate() bool {
	if c.host == nil {
		return false
	}
	el, ok := c.host.ActiveElement()
	if !ok {
		return false
	}
	el.Activate()
	return true
}

// FocusIn re-derives the position from the element holding focus. Focus may
// have entered from outside, so the previous position is not trusted.
func (c *Controller) FocusIn() {
	if c.host == nil {
		return
	}
	position, ok := c.host.FocusedPosition()
	if !ok {
		position = 0
	}
	c.set(position)
	c.Sync()
}

// FocusOut resets the position to 0 once focus has really left the
// container. The check is deferred because focus may only be moving between
// two children.
func (c *Controller) FocusOut() {
	check := func() {
		if c.host != nil && c.host.ContainsFocus() {
			return
		}
		c.set(0)
	}
	if c.scheduler == nil {
		check()
		return
	}
	c.scheduler.Defer(check)
}

// Sync focuses the element at the current position and scrolls it into
// view. When the element is not live yet the attempt is repeated once after
// the next pass; a second miss is dropped.
func (c *Controller) Sync() {
	if c.tryFocus() || c.scheduler == nil {
		return
	}
	position := c.position
	c.scheduler.Defer(func() {
		if c.position == position {
			c.tryFocus()
		}
	})
}

func (c *Controller) tryFocus() bool {
	if c.host == nil {
		return false
	}
	el, ok := c.host.Resolve(c.position)
	if !ok {
		return false
	}
	el.Focus()
	el.ScrollIntoView()
	return true
}

func (c *Controller) set(position int) bool {
	if c.position == position {
		return false
	}
	c.position = position
	if c.changed != nil {
		c.changed(position)
	}
	return true
}
