package gridview

import (
	"time"

	"github.com/gdamore/tcell/v3"
)

// DoubleClickInterval is the longest pause between two clicks that still
// counts as a double click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction is a logical mouse action derived from raw tcell mouse events.
type MouseAction int16

const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseMiddleDown
	MouseMiddleUp
	MouseMiddleClick
	MouseMiddleDoubleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseRightDoubleClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

var mouseButtons = []struct {
	button                       tcell.ButtonMask
	down, up, click, doubleClick MouseAction
}{
	{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick, MouseLeftDoubleClick},
	{tcell.ButtonMiddle, MouseMiddleDown, MouseMiddleUp, MouseMiddleClick, MouseMiddleDoubleClick},
	{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick, MouseRightDoubleClick},
}

var mouseWheels = []struct {
	button tcell.ButtonMask
	action MouseAction
}{
	{tcell.WheelUp, MouseScrollUp},
	{tcell.WheelDown, MouseScrollDown},
	{tcell.WheelLeft, MouseScrollLeft},
	{tcell.WheelRight, MouseScrollRight},
}

// mouseTracker turns the button state carried by tcell mouse events into
// press, release, click and wheel actions.
type mouseTracker struct {
	x, y         int
	downX, downY int
	buttons      tcell.ButtonMask
	lastClick    time.Time
}

// actions returns the actions event stands for, in firing order.
func (m *mouseTracker) actions(event *tcell.EventMouse, now time.Time) []MouseAction {
	var actions []MouseAction
	x, y := event.Position()
	if x != m.x || y != m.y {
		actions = append(actions, MouseMove)
		m.x, m.y = x, y
	}

	buttons := event.Buttons()
	changed := buttons ^ m.buttons
	moved := x != m.downX || y != m.downY
	pressed := false
	for _, b := range mouseButtons {
		if changed&b.button == 0 {
			continue
		}
		if buttons&b.button != 0 {
			actions = append(actions, b.down)
			pressed = true
			continue
		}
		actions = append(actions, b.up)
		if moved {
			continue
		}
		if m.lastClick.Add(DoubleClickInterval).Before(now) {
			actions = append(actions, b.click)
			m.lastClick = now
		} else {
			actions = append(actions, b.doubleClick)
			m.lastClick = time.Time{}
		}
	}
	for _, w := range mouseWheels {
		if buttons&w.button != 0 {
			actions = append(actions, w.action)
		}
	}

	m.buttons = buttons
	if pressed {
		m.downX, m.downY = x, y
	}
	return actions
}
