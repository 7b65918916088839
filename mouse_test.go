package gridview

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/google/go-cmp/cmp"
)

func TestMouseTrackerActions(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	steps := []struct {
		name    string
		x, y    int
		buttons tcell.ButtonMask
		at      time.Duration
		want    []MouseAction
	}{
		{name: "move", x: 3, y: 2, want: []MouseAction{MouseMove}},
		{name: "press", x: 3, y: 2, buttons: tcell.ButtonPrimary, want: []MouseAction{MouseLeftDown}},
		{name: "release", x: 3, y: 2, at: time.Second, want: []MouseAction{MouseLeftUp, MouseLeftClick}},
		{name: "press again", x: 3, y: 2, buttons: tcell.ButtonPrimary, at: time.Second, want: []MouseAction{MouseLeftDown}},
		{name: "double", x: 3, y: 2, at: time.Second + 100*time.Millisecond, want: []MouseAction{MouseLeftUp, MouseLeftDoubleClick}},
		{name: "drag", x: 3, y: 2, buttons: tcell.ButtonPrimary, at: 3 * time.Second, want: []MouseAction{MouseLeftDown}},
		{name: "drop elsewhere", x: 6, y: 2, at: 3 * time.Second, want: []MouseAction{MouseMove, MouseLeftUp}},
		{name: "wheel", x: 6, y: 2, buttons: tcell.WheelDown, at: 4 * time.Second, want: []MouseAction{MouseScrollDown}},
	}

	var m mouseTracker
	for _, step := range steps {
		event := tcell.NewEventMouse(step.x, step.y, step.buttons, tcell.ModNone)
		got := m.actions(event, start.Add(step.at))
		if diff := cmp.Diff(step.want, got); diff != "" {
			t.Errorf("%s: actions mismatch (-want +got):\n%s", step.name, diff)
		}
	}
}
