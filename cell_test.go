package gridview

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestCellDraw(t *testing.T) {
	tests := map[string]struct {
		text      string
		width     int
		height    int
		alignment Alignment
		want      string
	}{
		"centered vertically": {text: "Item 1", width: 8, height: 3, want: "\nItem 1"},
		"aligned right":       {text: "Item 1", width: 8, height: 1, alignment: AlignmentRight, want: "  Item 1"},
		"wrapped":             {text: "Item 1024", width: 6, height: 2, want: "Item\n1024"},
		"truncated":           {text: "Item 1024 of many", width: 6, height: 1, want: "Item …"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			screen := NewFrameScreen(tt.width, tt.height)
			c := NewCell(tt.text).SetAlignment(tt.alignment)
			c.SetRect(0, 0, tt.width, tt.height)
			c.Draw(screen)
			assert.Equal(t, tt.want, screen.String())
		})
	}
}

func TestCellFocusStyle(t *testing.T) {
	screen := NewFrameScreen(4, 1)
	c := NewCell("a")
	c.SetRect(0, 0, 4, 1)
	c.Draw(screen)
	assert.Equal(t, Styles.ItemStyle(), screen.StyleAt(0, 0))

	c.Focus(nil)
	c.Draw(screen)
	assert.Equal(t, Styles.FocusedStyle(), screen.StyleAt(0, 0))
}

func TestCellActivate(t *testing.T) {
	var n int
	c := NewCell("a").SetSelectedFunc(func() { n++ })
	c.SetRect(0, 0, 4, 1)

	assert.Equal(t, RedrawCommand{}, c.InputHandler(tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone)))
	_, cmd := c.MouseHandler(MouseLeftClick, tcell.NewEventMouse(1, 0, tcell.ButtonPrimary, tcell.ModNone))
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Equal(t, 2, n)

	c.SetDisabled(true)
	assert.False(t, c.Activate())
	assert.Nil(t, c.InputHandler(tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone)))
	assert.Equal(t, 2, n)
}
