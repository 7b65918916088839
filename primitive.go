package gridview

import "github.com/gdamore/tcell/v3"

// Primitive is a drawable, focusable element. The Application drives one root
// Primitive; a VirtualGrid drives one Primitive per live slot.
type Primitive interface {
	Draw(screen tcell.Screen)

	// GetRect and SetRect read and place the outer rect. Containers call
	// SetRect before every Draw.
	GetRect() (int, int, int, int)
	SetRect(x, y, width, height int)

	// InputHandler handles a key while the primitive holds focus and returns
	// nil when the key is not handled.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler handles a derived mouse action. A non-nil capture
	// primitive receives the following actions until it releases the mouse.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (capture Primitive, cmd Command)
	PasteHandler(text string) Command

	// HasFocus is also true while a descendant holds focus.
	HasFocus() bool
	// Focus may call delegate to pass focus on to a child.
	Focus(delegate func(p Primitive))
	Blur()

	IsDirty() bool
	MarkClean()
}
