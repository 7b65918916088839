package gridview

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestComputeScrollMetrics(t *testing.T) {
	tests := map[string]struct {
		trackCells, content, viewport, offset int
		want                                  scrollMetrics
	}{
		"top": {
			trackCells: 10, content: 100, viewport: 10, offset: 0,
			want: scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 8, thumbStart: 0},
		},
		"bottom": {
			trackCells: 10, content: 100, viewport: 10, offset: 90,
			want: scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 8, thumbStart: 72},
		},
		"offset past the end is clamped": {
			trackCells: 10, content: 100, viewport: 10, offset: 500,
			want: scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 8, thumbStart: 72},
		},
		"content fits": {
			trackCells: 4, content: 3, viewport: 10, offset: 0,
			want: scrollMetrics{trackCells: 4, trackLen: 32, thumbLen: 32},
		},
		"no track": {
			trackCells: 0, content: 100, viewport: 10,
			want: scrollMetrics{},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, computeScrollMetrics(tt.trackCells, tt.content, tt.viewport, tt.offset))
		})
	}
}

func TestScrollBarDrawFractionalThumb(t *testing.T) {
	tests := map[string]struct {
		orientation Orientation
		offset      int
		want        string
	}{
		"top":        {orientation: OrientationVertical, offset: 0, want: "█\n█\n│\n│"},
		"half cell":  {orientation: OrientationVertical, offset: 1, want: "▄\n█\n▀\n│"},
		"bottom":     {orientation: OrientationVertical, offset: 4, want: "│\n│\n█\n█"},
		"horizontal": {orientation: OrientationHorizontal, offset: 1, want: "▐█▌─"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			width, height := 1, 4
			if tt.orientation == OrientationHorizontal {
				width, height = 4, 1
			}
			s := NewScrollBar(tt.orientation).
				SetGlyphSet(UnicodeGlyphSet()).
				SetLengths(ScrollLengths{ContentLen: 8, ViewportLen: 4}).
				SetOffset(tt.offset)
			s.SetRect(0, 0, width, height)
			screen := NewFrameScreen(width, height)
			s.Draw(screen)
			assert.Equal(t, tt.want, screen.String())
		})
	}
}

func TestScrollBarAutoHide(t *testing.T) {
	s := NewScrollBar(OrientationVertical).SetLengths(ScrollLengths{ContentLen: 3, ViewportLen: 5})
	s.SetRect(0, 0, 1, 5)
	screen := NewFrameScreen(1, 5)
	s.Draw(screen)
	assert.Equal(t, "", screen.String())

	s.SetLengths(ScrollLengths{ContentLen: 50, ViewportLen: 5})
	s.Draw(screen)
	assert.NotEqual(t, "", screen.String())
}

func TestScrollBarMouse(t *testing.T) {
	var requested []int
	s := NewScrollBar(OrientationVertical).SetLengths(ScrollLengths{ContentLen: 100, ViewportLen: 10})
	s.SetRect(0, 0, 1, 10)
	s.SetChangedFunc(func(offset int) { requested = append(requested, offset) })

	_, cmd := s.MouseHandler(MouseScrollDown, tcell.NewEventMouse(0, 3, tcell.WheelDown, tcell.ModNone))
	assert.Equal(t, RedrawCommand{}, cmd)
	// A click below the thumb pages down.
	s.MouseHandler(MouseLeftClick, tcell.NewEventMouse(0, 9, tcell.ButtonPrimary, tcell.ModNone))
	// Scrolling up at the top requests nothing.
	s.MouseHandler(MouseScrollUp, tcell.NewEventMouse(0, 3, tcell.WheelUp, tcell.ModNone))

	assert.Equal(t, []int{1, 10}, requested)
	// The owner applies offsets, not the scroll bar.
	assert.Equal(t, 0, s.Offset())

	_, cmd = s.MouseHandler(MouseScrollDown, tcell.NewEventMouse(5, 3, tcell.WheelDown, tcell.ModNone))
	assert.Nil(t, cmd)
}

func TestGridScrollBarDrivesGrid(t *testing.T) {
	g, screen := newTestGrid(100, 10, 5)
	g.SetScrollBarVisible(true)
	drawGrid(g, screen)

	g.MouseHandler(MouseLeftClick, tcell.NewEventMouse(9, 4, tcell.ButtonPrimary, tcell.ModNone))
	assert.Equal(t, 5, g.ScrollPosition())
	drawGrid(g, screen)
	assert.Equal(t, 5, g.ScrollBar().Offset())
}
