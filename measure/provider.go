package measure

// Config holds the inputs of a Provider.
type Config struct {
	Direction Direction
	Target    ScrollTarget
	Container Node
	Observer  ResizeObserver
	Sizing    ItemSizing
}

// Provider turns resize and scroll notifications into Measurements.
//
// A Provider is not safe for concurrent use; it is driven from the host's
// event loop.
type Provider struct {
	direction Direction
	target    ScrollTarget
	container Node
	observer  ResizeObserver
	sizing    ItemSizing

	attached    bool
	unsubscribe func()

	m            Measurements
	contentCross float64
	version      uint64
}

// NewProvider returns a provider attached to cfg.Target and cfg.Container.
func NewProvider(cfg Config) *Provider {
	p := &Provider{
		direction: cfg.Direction,
		target:    cfg.Target,
		container: cfg.Container,
		observer:  cfg.Observer,
		sizing:    cfg.Sizing,
	}
	p.Attach()
	return p
}

// Attach registers the resize observations and the scroll listener. It is a
// no-op when already attached or when there is no target.
func (p *Provider) Attach() {
	if p.attached || p.target == nil {
		return
	}
	p.attached = true
	if p.observer != nil {
		p.observer.Observe(p.target)
		if p.container != nil {
			p.observer.Observe(p.container)
		}
	}
	p.unsubscribe = p.target.Subscribe(p.HandleScroll)
}

// Detach releases the observer registrations and the scroll listener and
// marks the measurements as stale.
func (p *Provider) Detach() {
	if !p.attached {
		return
	}
	p.attached = false
	if p.observer != nil {
		p.observer.Unobserve(p.target)
		if p.container != nil {
			p.observer.Unobserve(p.container)
		}
	}
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	if p.m.Measured {
		p.m.Measured = false
		p.version++
	}
}

// Close detaches the provider. It is safe to call more than once.
func (p *Provider) Close() {
	p.Detach()
}

// Attached reports whether the provider currently observes its target.
func (p *Provider) Attached() bool {
	return p.attached
}

// Direction returns the current direction.
func (p *Provider) Direction() Direction {
	return p.direction
}

// SetDirection changes the direction. Measurements are reset until the next
// resize batch arrives.
func (p *Provider) SetDirection(d Direction) {
	if p.direction == d {
		return
	}
	p.Detach()
	p.direction = d
	p.m = Measurements{}
	p.contentCross = 0
	p.version++
	p.Attach()
}

// SetTarget swaps the scroll target and the container. Measurements are
// reset until the next resize batch arrives.
func (p *Provider) SetTarget(target ScrollTarget, container Node) {
	if p.target == target && p.container == container {
		return
	}
	p.Detach()
	p.target = target
	p.container = container
	p.m = Measurements{}
	p.contentCross = 0
	p.version++
	p.Attach()
}

// SetSizing replaces the item sizing input.
func (p *Provider) SetSizing(s ItemSizing) {
	p.sizing = s
	if !p.m.Measured {
		return
	}
	before := p.m.Item
	p.resizeItem()
	if p.m.Item != before {
		p.version++
	}
}

// Measurements returns the current measurements.
func (p *Provider) Measurements() Measurements {
	return p.m
}

// Version increments every time the measurements change.
func (p *Provider) Version() uint64 {
	return p.version
}

// HandleResize applies one batch of size observations.
func (p *Provider) HandleResize(batch []Observation) {
	if !p.attached {
		return
	}
	before := p.m
	for _, o := range batch {
		switch {
		case o.Node == nil:
		case o.Node == p.target:
			p.m.Target = p.direction.Project(o.Width, o.Height)
		case o.Node == p.container:
			p.observeContainer(o)
		}
	}
	if !p.m.Measured {
		p.m.Measured = true
		p.resizeItem()
	}
	// Resizes can move the effective scroll position without a scroll event.
	p.sampleScroll()
	if p.m != before {
		p.version++
	}
}

// HandleScroll samples the scroll offset of the target.
func (p *Provider) HandleScroll() {
	if !p.attached {
		return
	}
	before := p.m.ScrollMain
	p.sampleScroll()
	if p.m.ScrollMain != before {
		p.version++
	}
}

func (p *Provider) observeContainer(o Observation) {
	e := p.direction.Project(o.Width, o.Height)
	crossChanged := e.Cross != p.m.Container.Cross || !p.m.Measured
	p.m.Container.Main = e.Main
	p.m.Container.Cross = e.Cross
	if crossChanged {
		p.m.Container.OffsetMain, p.m.Container.OffsetCross = p.containerOffset()
	}

	contentCross := o.ContentWidth
	if p.direction == Horizontal {
		contentCross = o.ContentHeight
	}
	if contentCross != p.contentCross || crossChanged {
		p.contentCross = contentCross
		if p.m.Measured {
			p.resizeItem()
		}
	}
}

func (p *Provider) resizeItem() {
	p.m.Item = p.sizing.Resolve(p.direction, p.contentCross)
}

func (p *Provider) sampleScroll() {
	x, y := p.target.ScrollOffset()
	if p.direction == Horizontal {
		p.m.ScrollMain = Int(x)
	} else {
		p.m.ScrollMain = Int(y)
	}
}

// containerOffset walks the offset-parent chain from the container up to the
// scroll target.
func (p *Provider) containerOffset() (main, cross int) {
	if p.container == nil {
		return 0, 0
	}
	x, y, reached := chainOffset(p.container, p.target)
	if !reached {
		// The target is not an offset parent of the container; both are
		// measured from a common root instead.
		tx, ty, _ := chainOffset(p.target, nil)
		x -= tx
		y -= ty
	}
	e := p.direction.Project(x, y)
	return e.Main, e.Cross
}

func chainOffset(from Node, stop Node) (x, y float64, reached bool) {
	for n := from; n != nil; n = n.OffsetParent() {
		if stop != nil && n == stop {
			return x, y, true
		}
		ox, oy := n.Offset()
		x += ox
		y += oy
	}
	return x, y, stop == nil
}
