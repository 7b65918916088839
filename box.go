package gridview

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v3"
)

// Box is the base of every primitive in this package: a rectangle with an
// optional border, a title and padding, a focus flag and a dirty flag. Content
// primitives embed it and draw into GetInnerRect.
type Box struct {
	x, y, width, height int

	// Cached inner rect, recomputed when innerValid is false.
	inner      [4]int
	innerValid bool

	padTop, padBottom, padLeft, padRight int

	background tcell.Color
	// Skip clearing the rect before drawing.
	dontClear bool

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title      string
	titleStyle tcell.Style

	hasFocus bool

	dirty atomic.Bool
	// Containers register here to learn when a child turns dirty.
	parent atomic.Pointer[Box]
}

// NewBox returns a dirty Box without a border.
func NewBox() *Box {
	b := &Box{
		background:  Styles.PrimitiveBackgroundColor,
		borderSet:   BorderSetPlain(),
		borderStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		titleStyle:  tcell.StyleDefault.Foreground(Styles.TitleColor),
	}
	b.dirty.Store(true)
	return b
}

// change marks b dirty and drops the cached inner rect when the layout moved.
func (b *Box) change(layout bool) {
	if layout {
		b.innerValid = false
	}
	b.MarkDirty()
}

// SetBorderPadding sets the blank cells kept between the border and the
// content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	if b.padTop != top || b.padBottom != bottom || b.padLeft != left || b.padRight != right {
		b.padTop, b.padBottom, b.padLeft, b.padRight = top, bottom, left, right
		b.change(true)
	}
	return b
}

// GetRect returns the outer rect.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// SetRect moves the box. Containers call it before every draw.
func (b *Box) SetRect(x, y, width, height int) {
	if b.x != x || b.y != y || b.width != width || b.height != height {
		b.x, b.y, b.width, b.height = x, y, width, height
		b.change(true)
	}
}

// GetInnerRect returns the rect inside the border and padding. Width and
// height never go below zero.
func (b *Box) GetInnerRect() (int, int, int, int) {
	if !b.innerValid {
		b.inner = b.computeInner()
		b.innerValid = true
	}
	return b.inner[0], b.inner[1], b.inner[2], b.inner[3]
}

func (b *Box) computeInner() [4]int {
	x, y, width, height := b.x, b.y, b.width, b.height
	if b.title != "" || b.borders.Has(BordersTop) {
		y, height = y+1, height-1
	}
	if b.borders.Has(BordersBottom) {
		height--
	}
	if b.borders.Has(BordersLeft) {
		x, width = x+1, width-1
	}
	if b.borders.Has(BordersRight) {
		width--
	}
	x += b.padLeft
	y += b.padTop
	width = max(width-b.padLeft-b.padRight, 0)
	height = max(height-b.padTop-b.padBottom, 0)
	return [4]int{x, y, width, height}
}

// InRect reports whether (x, y) lies inside the outer rect.
func (b *Box) InRect(x, y int) bool {
	return x >= b.x && x < b.x+b.width && y >= b.y && y < b.y+b.height
}

// IsDirty reports whether the box needs a redraw.
func (b *Box) IsDirty() bool {
	return b.dirty.Load()
}

// MarkDirty requests a redraw and forwards the first transition to the
// registered container.
func (b *Box) MarkDirty() {
	if b.dirty.Swap(true) {
		return
	}
	if parent := b.parent.Load(); parent != nil {
		parent.MarkDirty()
	}
}

// MarkClean clears the dirty flag after a draw.
func (b *Box) MarkClean() {
	b.dirty.Store(false)
}

func (b *Box) setDirtyParent(parent *Box) {
	if parent != nil && parent != b {
		b.parent.Store(parent)
	}
}

func (b *Box) clearDirtyParent(parent *Box) {
	if parent != nil {
		b.parent.CompareAndSwap(parent, nil)
	}
}

type dirtyParentSetter interface {
	setDirtyParent(parent *Box)
	clearDirtyParent(parent *Box)
}

// bindDirtyParent makes child dirty parent whenever it turns dirty. Children
// that do not embed a Box are polled by their container instead.
func bindDirtyParent(child Primitive, parent *Box) {
	if setter, ok := child.(dirtyParentSetter); ok && parent != nil {
		setter.setDirtyParent(parent)
	}
}

func unbindDirtyParent(child Primitive, parent *Box) {
	if setter, ok := child.(dirtyParentSetter); ok && parent != nil {
		setter.clearDirtyParent(parent)
	}
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// PasteHandler ignores pasted text.
func (b *Box) PasteHandler(text string) Command {
	return nil
}

// MouseHandler requests focus for a left press inside the box.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

// SetBackgroundColor sets the fill color, also used behind the border.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	if b.background != color {
		b.background = color
		b.borderStyle = b.borderStyle.Background(color)
		b.change(false)
	}
	return b
}

// GetBackgroundColor returns the fill color.
func (b *Box) GetBackgroundColor() tcell.Color {
	return b.background
}

// SetBorders selects the sides that get a border.
func (b *Box) SetBorders(borders Borders) *Box {
	if b.borders != borders {
		b.borders = borders
		b.change(true)
	}
	return b
}

// SetBorderSet sets the border glyphs.
func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	if b.borderSet != borderSet {
		b.borderSet = borderSet
		b.change(false)
	}
	return b
}

// GetBorderSet returns the border glyphs.
func (b *Box) GetBorderSet() BorderSet {
	return b.borderSet
}

// SetBorderStyle sets the style of the border glyphs.
func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	if b.borderStyle != style {
		b.borderStyle = style
		b.change(false)
	}
	return b
}

// SetTitle sets the text centered in the top row. A title reserves the top
// row even without a top border.
func (b *Box) SetTitle(title string) *Box {
	if b.title != title {
		b.title = title
		b.change(true)
	}
	return b
}

// GetTitle returns the title.
func (b *Box) GetTitle() string {
	return b.title
}

// SetTitleStyle sets the style of the title. The title background always
// follows the box background.
func (b *Box) SetTitleStyle(style tcell.Style) *Box {
	if b.titleStyle != style {
		b.titleStyle = style
		b.change(false)
	}
	return b
}

// SetDontClear keeps whatever is on screen below the box instead of filling
// it with the background color.
func (b *Box) SetDontClear(dontClear bool) *Box {
	b.dontClear = dontClear
	return b
}

// Draw draws the background, border and title.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the box decoration of p, a primitive embedding b.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	b.drawDecoration(screen, tcell.StyleDefault.Background(b.background))
}

// drawDecoration clears the box with fillStyle, then draws the border and
// title.
func (b *Box) drawDecoration(screen tcell.Screen, fillStyle tcell.Style) {
	if b.width <= 0 || b.height <= 0 {
		return
	}
	if !b.dontClear {
		fill(screen, b.x, b.y, b.width, b.height, fillStyle)
	}
	if b.width >= 2 && b.height >= 2 {
		b.drawBorder(screen)
	}
	if b.title != "" && b.width >= 4 {
		title := Truncate(b.title, b.width-2)
		PrintWithStyle(screen, title, b.x+1, b.y, b.width-2, AlignmentCenter, b.titleStyle.Background(b.background))
	}
}

func (b *Box) drawBorder(screen tcell.Screen) {
	left, top := b.x, b.y
	right, bottom := b.x+b.width-1, b.y+b.height-1
	set, style := b.borderSet, b.borderStyle

	// Sides run into the corner cells when the adjacent side is missing.
	x0, x1, y0, y1 := left, right, top, bottom
	if b.borders.Has(BordersLeft) {
		x0++
	}
	if b.borders.Has(BordersRight) {
		x1--
	}
	if b.borders.Has(BordersTop) {
		y0++
	}
	if b.borders.Has(BordersBottom) {
		y1--
	}
	if b.borders.Has(BordersTop) {
		hline(screen, x0, x1, top, set.Top, style)
	}
	if b.borders.Has(BordersBottom) {
		hline(screen, x0, x1, bottom, set.Bottom, style)
	}
	if b.borders.Has(BordersLeft) {
		vline(screen, left, y0, y1, set.Left, style)
	}
	if b.borders.Has(BordersRight) {
		vline(screen, right, y0, y1, set.Right, style)
	}

	corners := []struct {
		sides Borders
		x, y  int
		glyph string
	}{
		{BordersTop | BordersLeft, left, top, set.TopLeft},
		{BordersTop | BordersRight, right, top, set.TopRight},
		{BordersBottom | BordersLeft, left, bottom, set.BottomLeft},
		{BordersBottom | BordersRight, right, bottom, set.BottomRight},
	}
	for _, c := range corners {
		if b.borders&c.sides == c.sides {
			screen.Put(c.x, c.y, c.glyph, style)
		}
	}
}

func hline(screen tcell.Screen, from, to, y int, glyph string, style tcell.Style) {
	for x := from; x <= to; x++ {
		screen.Put(x, y, glyph, style)
	}
}

func vline(screen tcell.Screen, x, from, to int, glyph string, style tcell.Style) {
	for y := from; y <= to; y++ {
		screen.Put(x, y, glyph, style)
	}
}

// Focus sets the focus flag. Containers override it to pass focus on.
func (b *Box) Focus(delegate func(p Primitive)) {
	if !b.hasFocus {
		b.hasFocus = true
		b.MarkDirty()
	}
}

// Blur clears the focus flag.
func (b *Box) Blur() {
	if b.hasFocus {
		b.hasFocus = false
		b.MarkDirty()
	}
}

// HasFocus reports whether the box holds focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}
