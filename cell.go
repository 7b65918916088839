package gridview

import (
	"github.com/gdamore/tcell/v3"
)

// Cell is a labeled box rendered into one grid slot. Its text is word-wrapped
// to the cell width and vertically centered.
type Cell struct {
	*Box

	// If set to true, the cell cannot be activated.
	disabled bool

	text      string
	alignment Alignment

	// The style when not focused.
	style tcell.Style
	// The style when focused.
	focusedStyle tcell.Style
	// The style when disabled.
	disabledStyle tcell.Style

	// An optional function which is called when the cell is activated.
	selected func()
}

// NewCell returns a new cell showing text.
func NewCell(text string) *Cell {
	return &Cell{
		Box:           NewBox(),
		text:          text,
		alignment:     AlignmentLeft,
		style:         Styles.ItemStyle(),
		focusedStyle:  Styles.FocusedStyle(),
		disabledStyle: tcell.StyleDefault.Foreground(Styles.TertiaryTextColor).Background(Styles.PrimitiveBackgroundColor),
	}
}

// SetText sets the cell text.
func (c *Cell) SetText(text string) *Cell {
	if c.text != text {
		c.text = text
		c.MarkDirty()
	}
	return c
}

// GetText returns the cell text.
func (c *Cell) GetText() string {
	return c.text
}

// SetAlignment sets the horizontal alignment of the text.
func (c *Cell) SetAlignment(alignment Alignment) *Cell {
	if c.alignment != alignment {
		c.alignment = alignment
		c.MarkDirty()
	}
	return c
}

// SetStyle sets the style used when the cell is not focused.
func (c *Cell) SetStyle(style tcell.Style) *Cell {
	if c.style != style {
		c.style = style
		c.MarkDirty()
	}
	return c
}

// SetFocusedStyle sets the style used when the cell is focused.
func (c *Cell) SetFocusedStyle(style tcell.Style) *Cell {
	if c.focusedStyle != style {
		c.focusedStyle = style
		c.MarkDirty()
	}
	return c
}

// SetDisabled sets whether or not the cell is disabled. Disabled cells cannot
// be activated.
func (c *Cell) SetDisabled(disabled bool) *Cell {
	if c.disabled != disabled {
		c.disabled = disabled
		c.MarkDirty()
	}
	return c
}

// GetDisabled returns whether or not the cell is disabled.
func (c *Cell) GetDisabled() bool {
	return c.disabled
}

// SetSelectedFunc sets a handler which is called when the cell is activated.
func (c *Cell) SetSelectedFunc(handler func()) *Cell {
	c.selected = handler
	return c
}

// Activate runs the selected handler unless the cell is disabled.
func (c *Cell) Activate() bool {
	if c.disabled || c.selected == nil {
		return false
	}
	c.selected()
	return true
}

func (c *Cell) currentStyle() tcell.Style {
	switch {
	case c.disabled:
		return c.disabledStyle
	case c.HasFocus():
		return c.focusedStyle
	}
	return c.style
}

// Draw draws this primitive onto the screen.
func (c *Cell) Draw(screen tcell.Screen) {
	style := c.currentStyle()
	c.drawDecoration(screen, style)

	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	lines := WordWrap(c.text, width)
	if len(lines) > height {
		lines = lines[:height]
		lines[height-1] = Truncate(lines[height-1]+Ellipsis, width)
	}
	top := y + (height-len(lines))/2
	for i, line := range lines {
		PrintWithStyle(screen, line, x, top+i, width, c.alignment, style)
	}
}

// InputHandler activates the cell on enter.
func (c *Cell) InputHandler(event *tcell.EventKey) Command {
	if event.Key() == tcell.KeyEnter && c.Activate() {
		return RedrawCommand{}
	}
	return nil
}

// MouseHandler focuses the cell on press and activates it on click.
func (c *Cell) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if c.disabled || !c.InRect(event.Position()) {
		return nil, nil
	}
	switch action {
	case MouseLeftDown:
		return nil, SetFocusCommand{Target: c}
	case MouseLeftClick:
		if c.Activate() {
			return nil, RedrawCommand{}
		}
		return nil, ConsumeEventCommand{}
	}
	return nil, nil
}
