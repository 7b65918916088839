package gridview

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// FrameScreen is a tcell simulation screen that reads back as plain text. It
// renders primitives without a terminal, for snapshots and tests, and can
// drive Application.Run with injected events.
type FrameScreen struct {
	tcell.SimulationScreen
}

// NewFrameScreen returns an initialized blank screen of the given size.
func NewFrameScreen(width, height int) *FrameScreen {
	sim := tcell.NewSimulationScreen("UTF-8")
	// Init only fails for an unknown charset.
	_ = sim.Init()
	sim.SetSize(max(width, 0), max(height, 0))
	return &FrameScreen{SimulationScreen: sim}
}

// contents flushes pending drawing and returns the displayed cells.
func (s *FrameScreen) contents() ([]tcell.SimCell, int, int) {
	s.Show()
	return s.GetContents()
}

// StyleAt returns the displayed style of the cell at x, y.
func (s *FrameScreen) StyleAt(x, y int) tcell.Style {
	cells, width, height := s.contents()
	if x < 0 || y < 0 || x >= width || y >= height {
		return tcell.StyleDefault
	}
	return cells[y*width+x].Style
}

// Lines returns the screen as plain text, one string per row, trailing blanks
// included.
func (s *FrameScreen) Lines() []string {
	cells, width, height := s.contents()
	lines := make([]string, height)
	for y := range lines {
		var b strings.Builder
		for x := 0; x < width; x++ {
			text := string(cells[y*width+x].Runes)
			if text == "" {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(text)
			// The cells covered by a wide cluster keep stale runes.
			x += max(uniseg.StringWidth(text), 1) - 1
		}
		lines[y] = b.String()
	}
	return lines
}

// String returns Lines joined by newlines with trailing blanks and empty
// trailing rows removed.
func (s *FrameScreen) String() string {
	lines := s.Lines()
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
