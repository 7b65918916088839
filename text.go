package gridview

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Alignment positions text within a row.
type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// TextWidth returns the number of cells text occupies on screen.
func TextWidth(text string) int {
	return uniseg.StringWidth(text)
}

// WordWrap splits text into lines no wider than width cells. Lines break at
// Unicode line break opportunities; words wider than a line are split between
// grapheme clusters.
func WordWrap(text string, width int) (lines []string) {
	if width <= 0 {
		return nil
	}

	var (
		line      strings.Builder
		lineWidth int
	)
	flush := func() {
		lines = append(lines, strings.TrimRight(line.String(), "\r\n"))
		line.Reset()
		lineWidth = 0
	}

	state := -1
	for rest := text; len(rest) > 0; {
		var (
			segment   string
			mustBreak bool
		)
		segment, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)
		segmentWidth := TextWidth(segment)

		if lineWidth+segmentWidth > width && lineWidth > 0 {
			flush()
		}
		if segmentWidth > width {
			// Split an overlong word, keeping the tail open for the next segment.
			clusterState := -1
			for len(segment) > 0 {
				var (
					cluster      string
					clusterWidth int
				)
				cluster, segment, clusterWidth, clusterState = uniseg.FirstGraphemeClusterInString(segment, clusterState)
				if lineWidth+clusterWidth > width && lineWidth > 0 {
					flush()
				}
				line.WriteString(cluster)
				lineWidth += clusterWidth
			}
		} else {
			line.WriteString(segment)
			lineWidth += segmentWidth
		}

		if mustBreak && rest != "" {
			flush()
		}
	}
	flush()
	return lines
}

// Truncate shortens text to at most width cells, ending it with an ellipsis
// when anything was cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if TextWidth(text) <= width {
		return text
	}
	limit := width - TextWidth(Ellipsis)
	if limit < 0 {
		return ""
	}

	var used, length int
	state := -1
	for rest := text; len(rest) > 0; {
		var (
			cluster      string
			clusterWidth int
		)
		cluster, rest, clusterWidth, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+clusterWidth > limit {
			break
		}
		used += clusterWidth
		length += len(cluster)
	}
	return text[:length] + Ellipsis
}

// PrintWithStyle prints one row of text into (x, y, maxWidth, 1) and returns
// the number of bytes and cells printed. Text wider than maxWidth is cut
// according to the alignment: right-aligned text loses its head, centered
// text loses both ends.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (printedBytes, printedWidth int) {
	screenWidth, screenHeight := screen.Size()
	if maxWidth <= 0 || text == "" || y < 0 || y >= screenHeight {
		return 0, 0
	}

	textWidth := TextWidth(text)
	skip := 0
	switch alignment {
	case AlignmentRight:
		skip = textWidth - maxWidth
	case AlignmentCenter:
		skip = (textWidth - maxWidth) / 2
	}
	if skip > 0 {
		text = dropWidth(text, skip)
		textWidth = TextWidth(text)
	}
	if textWidth < maxWidth {
		switch alignment {
		case AlignmentRight:
			x += maxWidth - textWidth
		case AlignmentCenter:
			x += (maxWidth - textWidth) / 2
		}
		maxWidth = textWidth
	}

	right := x + maxWidth
	state := -1
	for rest := text; len(rest) > 0 && x < right && x < screenWidth; {
		var (
			cluster string
			width   int
		)
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if x+width > right {
			break
		}
		if width > 0 {
			screen.Put(x, y, cluster, style)
		}
		x += width
		printedBytes += len(cluster)
		printedWidth += width
	}
	return printedBytes, printedWidth
}

// dropWidth removes leading grapheme clusters until at least width cells are
// gone.
func dropWidth(text string, width int) string {
	state := -1
	for width > 0 && len(text) > 0 {
		var clusterWidth int
		_, text, clusterWidth, state = uniseg.FirstGraphemeClusterInString(text, state)
		width -= clusterWidth
	}
	return text
}

// fill paints the rectangle with blanks in style.
func fill(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.Put(col, row, " ", style)
		}
	}
}
