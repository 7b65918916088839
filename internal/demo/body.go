package demo

import (
	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/gridview"
	"github.com/xqrs/gridview/help"
)

// body stacks the grid above the help footer.
type body struct {
	*gridview.Box

	grid gridview.Primitive
	help *help.Help
}

func newBody(grid gridview.Primitive, h *help.Help) *body {
	b := &body{Box: gridview.NewBox(), grid: grid, help: h}
	b.SetDontClear(true)
	return b
}

func (b *body) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
	x, y, width, height := b.GetInnerRect()
	helpHeight := min(b.help.Height(), height)
	b.grid.SetRect(x, y, width, height-helpHeight)
	b.help.SetRect(x, y+height-helpHeight, width, helpHeight)
	b.grid.Draw(screen)
	b.help.Draw(screen)
}

func (b *body) IsDirty() bool {
	return b.Box.IsDirty() || b.grid.IsDirty() || b.help.IsDirty()
}

func (b *body) MarkClean() {
	b.Box.MarkClean()
	b.grid.MarkClean()
	b.help.MarkClean()
}

func (b *body) Focus(delegate func(p gridview.Primitive)) {
	delegate(b.grid)
}

func (b *body) HasFocus() bool {
	return b.grid.HasFocus()
}

func (b *body) Blur() {
	b.grid.Blur()
}

func (b *body) InputHandler(event *tcell.EventKey) gridview.Command {
	return b.grid.InputHandler(event)
}

func (b *body) PasteHandler(text string) gridview.Command {
	return b.grid.PasteHandler(text)
}

func (b *body) MouseHandler(action gridview.MouseAction, event *tcell.EventMouse) (gridview.Primitive, gridview.Command) {
	return b.grid.MouseHandler(action, event)
}
