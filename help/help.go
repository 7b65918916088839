// Package help renders the key bindings of a primitive, either as a single
// line or as aligned columns, next to an optional status text.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/gridview"
	"github.com/xqrs/gridview/keybind"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

type Help struct {
	*gridview.Box
	Styles Styles

	keyMap         KeyMap
	showAll        bool
	status         string
	shortSeparator string
	fullSeparator  string
}

func New() *Help {
	return &Help{
		Box:            gridview.NewBox(),
		Styles:         DefaultStyles(),
		shortSeparator: " • ",
		fullSeparator:  "    ",
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

// SetShowAll enables or disables full help mode.
func (h *Help) SetShowAll(showAll bool) *Help {
	if h.showAll != showAll {
		h.showAll = showAll
		h.MarkDirty()
	}
	return h
}

// ShowAll returns whether full help mode is enabled.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// SetStatus sets a text drawn right-aligned on the first line, e.g. the
// focused item of a grid.
func (h *Help) SetStatus(status string) *Help {
	if h.status != status {
		h.status = status
		h.MarkDirty()
	}
	return h
}

// Status returns the status text.
func (h *Help) Status() string {
	return h.status
}

// SetShortSeparator sets the separator used in short help mode.
func (h *Help) SetShortSeparator(separator string) *Help {
	h.shortSeparator = separator
	h.MarkDirty()
	return h
}

// SetFullSeparator sets the separator used between full help columns.
func (h *Help) SetFullSeparator(separator string) *Help {
	h.fullSeparator = separator
	h.MarkDirty()
	return h
}

// SetStyles sets help styles.
func (h *Help) SetStyles(styles Styles) *Help {
	h.Styles = styles
	h.MarkDirty()
	return h
}

// Height returns the number of lines the help needs: one in short mode, the
// tallest column in full mode.
func (h *Help) Height() int {
	if !h.showAll || h.keyMap == nil {
		return 1
	}
	rows := 1
	for _, group := range h.keyMap.FullHelp() {
		n := 0
		for _, kb := range group {
			if kb.Enabled() {
				n++
			}
		}
		rows = max(rows, n)
	}
	return rows
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)

	x, y, width, height := h.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	// The status keeps its place; the bindings get what is left.
	statusWidth := 0
	if h.status != "" {
		statusWidth = gridview.TextWidth(h.status)
		if statusWidth+1 > width {
			statusWidth = 0
		} else {
			gridview.PrintWithStyle(screen, h.status, x+width-statusWidth, y, statusWidth, gridview.AlignmentLeft, h.Styles.Status)
		}
	}
	available := width
	if statusWidth > 0 {
		available -= statusWidth + 1
	}

	if h.keyMap == nil {
		return
	}
	var lines [][]segment
	if h.showAll {
		lines = h.fullHelpSegments(h.keyMap.FullHelp(), available)
	} else {
		lines = [][]segment{h.shortHelpSegments(h.keyMap.ShortHelp(), available)}
	}
	for row := 0; row < len(lines) && row < height; row++ {
		drawSegments(screen, x, y+row, available, lines[row])
	}
}

// FullHelpLines renders grouped help into full mode lines as plain text.
func (h *Help) FullHelpLines(groups [][]keybind.Keybind, maxWidth int) []string {
	styled := h.fullHelpSegments(groups, maxWidth)
	lines := make([]string, 0, len(styled))
	for _, line := range styled {
		var b strings.Builder
		for _, s := range line {
			b.WriteString(s.text)
		}
		lines = append(lines, b.String())
	}
	return lines
}

// ShortHelpLine renders single-line help as plain text.
func (h *Help) ShortHelpLine(bindings []keybind.Keybind, maxWidth int) string {
	var b strings.Builder
	for _, s := range h.shortHelpSegments(bindings, maxWidth) {
		b.WriteString(s.text)
	}
	return b.String()
}

type segment struct {
	text  string
	style tcell.Style
}

func (h *Help) shortHelpSegments(bindings []keybind.Keybind, maxWidth int) []segment {
	var items [][]segment
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		if item := shortItemSegments(kb, h.Styles.Short.Key, h.Styles.Short.Desc); len(item) > 0 {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}

	sep := segment{text: orSpace(h.shortSeparator), style: h.Styles.Short.Separator}
	out := append([]segment(nil), items[0]...)
	if maxWidth > 0 && segmentsWidth(out) > maxWidth {
		return nil
	}
	for _, item := range items[1:] {
		next := segmentsWidth(out) + segmentsWidth([]segment{sep}) + segmentsWidth(item)
		if maxWidth > 0 && next > maxWidth {
			return append(out, h.truncationTail(out, maxWidth)...)
		}
		out = append(out, sep)
		out = append(out, item...)
	}
	return out
}

type helpEntry struct {
	key  string
	desc string
}

type helpColumn struct {
	entries []helpEntry
	keyW    int
	colW    int
}

func helpColumns(groups [][]keybind.Keybind) []helpColumn {
	columns := make([]helpColumn, 0, len(groups))
	for _, group := range groups {
		var col helpColumn
		for _, kb := range group {
			if !kb.Enabled() {
				continue
			}
			hp := kb.Help()
			if hp.Key == "" && hp.Desc == "" {
				continue
			}
			col.entries = append(col.entries, helpEntry{key: hp.Key, desc: hp.Desc})
			col.keyW = max(col.keyW, gridview.TextWidth(hp.Key))
		}
		if len(col.entries) == 0 {
			continue
		}
		// colW is the widest rendered row so separators stay aligned.
		for _, e := range col.entries {
			w := col.keyW + gridview.TextWidth(e.desc)
			if e.key != "" && e.desc != "" {
				w++
			}
			col.colW = max(col.colW, w)
		}
		columns = append(columns, col)
	}
	return columns
}

func (h *Help) fullHelpSegments(groups [][]keybind.Keybind, maxWidth int) [][]segment {
	columns := helpColumns(groups)
	if len(columns) == 0 {
		return nil
	}

	sepText := orSpace(h.fullSeparator)
	sepW := gridview.TextWidth(sepText)

	// Columns are included left to right until the next one would overflow.
	included, totalW := 0, 0
	for i, col := range columns {
		nextW := col.colW
		if i > 0 {
			nextW += sepW
		}
		if maxWidth > 0 && totalW+nextW > maxWidth {
			break
		}
		included++
		totalW += nextW
	}
	if included == 0 {
		return [][]segment{{{text: gridview.Ellipsis, style: h.Styles.Ellipsis}}}
	}

	maxRows := 0
	for _, col := range columns[:included] {
		maxRows = max(maxRows, len(col.entries))
	}

	lines := make([][]segment, 0, maxRows)
	for row := 0; row < maxRows; row++ {
		var line []segment
		for i, c := range columns[:included] {
			if i > 0 {
				line = append(line, segment{text: sepText, style: h.Styles.Full.Separator})
			}
			line = append(line, h.fullCell(c, row, i < included-1)...)
		}
		lines = append(lines, line)
	}

	if included < len(columns) {
		lines[0] = append(lines[0], h.truncationTail(lines[0], maxWidth)...)
	}
	return lines
}

// fullCell renders one row of a column. Non-last columns are padded to their
// full width so the separators do not drift.
func (h *Help) fullCell(c helpColumn, row int, pad bool) []segment {
	if row >= len(c.entries) {
		return []segment{{text: strings.Repeat(" ", c.colW), style: h.Styles.Full.Desc}}
	}
	e := c.entries[row]
	var cell []segment
	if e.key != "" {
		cell = append(cell, segment{text: e.key, style: h.Styles.Full.Key})
	}
	if keyPad := c.keyW - gridview.TextWidth(e.key); keyPad > 0 {
		cell = append(cell, segment{text: strings.Repeat(" ", keyPad), style: h.Styles.Full.Key})
	}
	if e.key != "" && e.desc != "" {
		cell = append(cell, segment{text: " ", style: h.Styles.Full.Desc})
	}
	if e.desc != "" {
		cell = append(cell, segment{text: e.desc, style: h.Styles.Full.Desc})
	}
	if pad {
		if n := c.colW - segmentsWidth(cell); n > 0 {
			cell = append(cell, segment{text: strings.Repeat(" ", n), style: h.Styles.Full.Desc})
		}
	}
	return cell
}

// truncationTail returns " …" when it fully fits after current.
func (h *Help) truncationTail(current []segment, maxWidth int) []segment {
	if maxWidth <= 0 {
		return nil
	}
	tail := []segment{
		{text: " ", style: h.Styles.Ellipsis},
		{text: gridview.Ellipsis, style: h.Styles.Ellipsis},
	}
	if segmentsWidth(current)+segmentsWidth(tail) <= maxWidth {
		return tail
	}
	return nil
}

func drawSegments(screen tcell.Screen, x, y, width int, segments []segment) {
	cursor, remaining := x, width
	for _, s := range segments {
		if s.text == "" || remaining <= 0 {
			continue
		}
		_, printed := gridview.PrintWithStyle(screen, s.text, cursor, y, remaining, gridview.AlignmentLeft, s.style)
		cursor += printed
		remaining -= printed
	}
}

func shortItemSegments(kb keybind.Keybind, keyStyle, descStyle tcell.Style) []segment {
	help := kb.Help()
	switch {
	case help.Key == "" && help.Desc == "":
		return nil
	case help.Key == "":
		return []segment{{text: help.Desc, style: descStyle}}
	case help.Desc == "":
		return []segment{{text: help.Key, style: keyStyle}}
	}
	return []segment{{text: help.Key, style: keyStyle}, {text: " ", style: descStyle}, {text: help.Desc, style: descStyle}}
}

func segmentsWidth(segments []segment) int {
	width := 0
	for _, s := range segments {
		width += gridview.TextWidth(s.text)
	}
	return width
}

func orSpace(s string) string {
	if s == "" {
		return " "
	}
	return s
}
