package gridview

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"

	"github.com/xqrs/gridview/engine"
	"github.com/xqrs/gridview/focus"
	"github.com/xqrs/gridview/measure"
)

// gridContent is the content container of a grid. It sits at the origin of
// the viewport, so its offset from the scroll target is always zero.
type gridContent struct {
	parent measure.Node
}

func (c *gridContent) OffsetParent() measure.Node { return c.parent }
func (c *gridContent) Offset() (x, y float64)     { return 0, 0 }

// gridElements exposes the primitives of a grid to the focus controller.
type gridElements[T any] struct {
	g *VirtualGrid[T]
}

func (e gridElements[T]) Element(s engine.Slot) (focus.Element, bool) {
	if s.Empty {
		return nil, false
	}
	return gridElement[T]{g: e.g, index: s.Index, style: s.Style}, true
}

func (e gridElements[T]) FocusedIndex() (int, bool) {
	if !e.g.HasFocus() || e.g.active < 0 {
		return 0, false
	}
	return e.g.active, true
}

func (e gridElements[T]) ActiveElement() (focus.Element, bool) {
	if !e.g.HasFocus() || e.g.active < 0 {
		return nil, false
	}
	s, ok := e.g.engine.Lookup(e.g.active)
	if !ok {
		return nil, false
	}
	return e.Element(s)
}

func (e gridElements[T]) ContainsFocus() bool {
	return e.g.HasFocus()
}

// gridElement is the live element showing one item.
type gridElement[T any] struct {
	g     *VirtualGrid[T]
	index int
	style engine.Style
}

func (e gridElement[T]) Focus()          { e.g.setActive(e.index) }
func (e gridElement[T]) ScrollIntoView() { e.g.scrollIntoView(e.style) }
func (e gridElement[T]) Activate()       { e.g.activate(e.index) }

// clippedScreen drops everything drawn outside its rectangle, so slots
// partially scrolled out of the viewport do not paint over the border.
type clippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *clippedScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.inBounds(x, y) {
		return str, 0
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *clippedScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

func (s *clippedScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.y || y >= s.y+s.height {
		return
	}

	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		cluster := gr.Str()
		width := max(uniseg.StringWidth(cluster), 1)
		if x >= s.x+s.width {
			return
		}
		if x >= s.x && x+width <= s.x+s.width {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}

func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.ShowCursor(-1, -1)
		return
	}
	s.Screen.ShowCursor(x, y)
}

var (
	_ measure.Node    = (*gridContent)(nil)
	_ engine.Elements = gridElements[string]{}
	_ focus.Element   = gridElement[string]{}
)
