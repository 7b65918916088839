package gridview

import "github.com/gdamore/tcell/v3"

// ScrollBarArrows controls which endcaps are rendered.
type ScrollBarArrows uint8

const (
	ScrollBarArrowsNone ScrollBarArrows = iota
	ScrollBarArrowsStart
	ScrollBarArrowsEnd
	ScrollBarArrowsBoth
)

func (a ScrollBarArrows) hasStart() bool {
	return a == ScrollBarArrowsStart || a == ScrollBarArrowsBoth
}

func (a ScrollBarArrows) hasEnd() bool {
	return a == ScrollBarArrowsEnd || a == ScrollBarArrowsBoth
}

// TrackClickBehavior configures behavior when clicking scrollBar track cells
// outside the thumb.
type TrackClickBehavior uint8

const (
	TrackClickBehaviorPage TrackClickBehavior = iota
	TrackClickBehaviorJumpToClick
)

// ScrollLengths bundles content and viewport lengths in logical units.
type ScrollLengths struct {
	ContentLen  int
	ViewportLen int
}

const subcell = 8

// Orientation is the axis a scroll bar runs along.
type Orientation uint8

const (
	OrientationVertical Orientation = iota
	OrientationHorizontal
)

// GlyphSet defines track, arrow, and fractional thumb glyphs for both
// orientations.
type GlyphSet struct {
	TrackVertical   string
	TrackHorizontal string

	ArrowVerticalStart   string
	ArrowVerticalEnd     string
	ArrowHorizontalStart string
	ArrowHorizontalEnd   string

	ThumbVerticalLower [8]string
	ThumbVerticalUpper [8]string

	ThumbHorizontalLeft  [8]string
	ThumbHorizontalRight [8]string
}

// MinimalGlyphSet returns the minimal glyph set (space track, fractional thumbs).
func MinimalGlyphSet() GlyphSet {
	g := LegacyComputingGlyphSet()
	g.TrackVertical = " "
	g.TrackHorizontal = " "
	return g
}

// BoxDrawingGlyphSet returns box-drawing track glyphs with legacy fractional symbols.
func BoxDrawingGlyphSet() GlyphSet {
	return LegacyComputingGlyphSet()
}

// LegacyComputingGlyphSet returns legacy-computing symbols for full 1/8 fractional fidelity.
func LegacyComputingGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   "│",
		TrackHorizontal: "─",

		ArrowVerticalStart:   "▲",
		ArrowVerticalEnd:     "▼",
		ArrowHorizontalStart: "◀",
		ArrowHorizontalEnd:   "▶",

		ThumbVerticalLower: [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper: [8]string{"▔", "🮂", "🮃", "▀", "🮄", "🮅", "🮆", "█"},

		ThumbHorizontalLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbHorizontalRight: [8]string{"▕", "🮇", "🮈", "▐", "🮉", "🮊", "🮋", "█"},
	}
}

// UnicodeGlyphSet returns a standard-unicode-only approximation set.
func UnicodeGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   "│",
		TrackHorizontal: "─",

		ArrowVerticalStart:   "▲",
		ArrowVerticalEnd:     "▼",
		ArrowHorizontalStart: "◀",
		ArrowHorizontalEnd:   "▶",

		ThumbVerticalLower: [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper: [8]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"},

		ThumbHorizontalLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbHorizontalRight: [8]string{"▕", "▕", "▐", "▐", "▐", "▐", "█", "█"},
	}
}

// ScrollBarStyles styles the parts of a ScrollBar.
type ScrollBarStyles struct {
	Track tcell.Style
	Thumb tcell.Style
	Arrow tcell.Style
}

// ScrollBar shows the position of a viewport within its content along one
// axis, with 1/8 cell thumb precision. It does not scroll anything itself:
// wheel and click interactions are reported through the changed func, and the
// owner feeds the applied offset back through SetOffset.
type ScrollBar struct {
	*Box

	orientation Orientation
	lengths     ScrollLengths
	offset      int

	glyphs     GlyphSet
	styles     ScrollBarStyles
	arrows     ScrollBarArrows
	trackClick TrackClickBehavior
	step       int
	// Hide the bar when the whole content fits.
	autoHide bool

	changed func(offset int)
}

// NewScrollBar returns an auto-hiding scroll bar with the minimal glyph set.
func NewScrollBar(orientation Orientation) *ScrollBar {
	return &ScrollBar{
		Box:         NewBox(),
		orientation: orientation,
		glyphs:      MinimalGlyphSet(),
		styles: ScrollBarStyles{
			Track: tcell.StyleDefault.Dim(true),
			Thumb: tcell.StyleDefault.Foreground(Styles.GraphicsColor),
			Arrow: tcell.StyleDefault.Dim(true),
		},
		step:     1,
		autoHide: true,
	}
}

// SetOrientation sets the axis the bar runs along.
func (s *ScrollBar) SetOrientation(orientation Orientation) *ScrollBar {
	if s.orientation != orientation {
		s.orientation = orientation
		s.MarkDirty()
	}
	return s
}

// SetLengths sets the content and viewport lengths. A zero viewport length
// means the bar length.
func (s *ScrollBar) SetLengths(lengths ScrollLengths) *ScrollBar {
	lengths.ContentLen = max(lengths.ContentLen, 0)
	lengths.ViewportLen = max(lengths.ViewportLen, 0)
	if s.lengths != lengths {
		s.lengths = lengths
		s.MarkDirty()
	}
	return s
}

// SetOffset sets the viewport offset within the content.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	offset = max(offset, 0)
	if s.offset != offset {
		s.offset = offset
		s.MarkDirty()
	}
	return s
}

// Offset returns the viewport offset.
func (s *ScrollBar) Offset() int {
	return s.offset
}

// SetChangedFunc sets the handler receiving offsets requested by the mouse.
func (s *ScrollBar) SetChangedFunc(handler func(offset int)) *ScrollBar {
	s.changed = handler
	return s
}

// SetGlyphSet sets the track, arrow and thumb glyphs.
func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphs = g
	s.MarkDirty()
	return s
}

// SetStyles sets the track, thumb and arrow styles.
func (s *ScrollBar) SetStyles(styles ScrollBarStyles) *ScrollBar {
	if s.styles != styles {
		s.styles = styles
		s.MarkDirty()
	}
	return s
}

// SetArrows selects the arrow endcaps.
func (s *ScrollBar) SetArrows(arrows ScrollBarArrows) *ScrollBar {
	if s.arrows != arrows {
		s.arrows = arrows
		s.MarkDirty()
	}
	return s
}

// SetTrackClickBehavior selects what a click on the track does.
func (s *ScrollBar) SetTrackClickBehavior(behavior TrackClickBehavior) *ScrollBar {
	s.trackClick = behavior
	return s
}

// SetScrollStep sets the offset change of one wheel notch or arrow click.
func (s *ScrollBar) SetScrollStep(step int) *ScrollBar {
	s.step = max(step, 1)
	return s
}

// SetAutoHide sets whether the bar disappears when the content fits.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	if s.autoHide != autoHide {
		s.autoHide = autoHide
		s.MarkDirty()
	}
	return s
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

// computeScrollMetrics returns the thumb geometry in 1/8 cell units.
func computeScrollMetrics(trackCells int, contentLen int, viewportLen int, offset int) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollMetrics{}
	}
	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := contentLen - viewportLen
	m := scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}
	if maxOffset == 0 {
		return m
	}
	m.thumbLen = min(max(trackLen*viewportLen/contentLen, subcell), trackLen)
	m.thumbStart = (trackLen - m.thumbLen) * min(max(offset, 0), maxOffset) / maxOffset
	return m
}

// coverage returns where the thumb starts inside cell and how many eighths of
// the cell it covers.
func (m scrollMetrics) coverage(cell int) (start, fill int) {
	cellStart, cellEnd := cell*subcell, (cell+1)*subcell
	from := max(m.thumbStart, cellStart)
	to := min(m.thumbStart+m.thumbLen, cellEnd)
	if to <= from {
		return 0, 0
	}
	return from - cellStart, to - from
}

// geometry returns the origin of the bar, its length in cells and the
// number of cells taken by arrows before the track.
func (s *ScrollBar) geometry() (x, y, length, lead int) {
	x, y, width, height := s.GetInnerRect()
	length = height
	if s.orientation == OrientationHorizontal {
		length = width
	}
	if s.arrows.hasStart() {
		lead = 1
	}
	return x, y, length, lead
}

func (s *ScrollBar) trackCells(length int) int {
	cells := length
	if s.arrows.hasStart() {
		cells--
	}
	if s.arrows.hasEnd() {
		cells--
	}
	return max(cells, 0)
}

func (s *ScrollBar) viewport(length int) int {
	if s.lengths.ViewportLen > 0 {
		return s.lengths.ViewportLen
	}
	return length
}

func (s *ScrollBar) metrics(length int) scrollMetrics {
	return computeScrollMetrics(s.trackCells(length), s.lengths.ContentLen, s.viewport(length), s.offset)
}

// axisGlyphs is the part of a GlyphSet for one orientation.
type axisGlyphs struct {
	track      string
	start, end string
	// head is used when the thumb starts at the top or left of a cell, tail
	// when it ends at the bottom or right.
	head, tail [8]string
}

func (s *ScrollBar) axisGlyphs() axisGlyphs {
	g := s.glyphs
	if s.orientation == OrientationHorizontal {
		return axisGlyphs{g.TrackHorizontal, g.ArrowHorizontalStart, g.ArrowHorizontalEnd, g.ThumbHorizontalLeft, g.ThumbHorizontalRight}
	}
	return axisGlyphs{g.TrackVertical, g.ArrowVerticalStart, g.ArrowVerticalEnd, g.ThumbVerticalUpper, g.ThumbVerticalLower}
}

func (a axisGlyphs) thumb(start, fill int) string {
	switch {
	case fill >= subcell:
		return a.tail[subcell-1]
	case start == 0:
		return a.head[fill-1]
	}
	return a.tail[fill-1]
}

// Draw draws the track, the thumb and the arrows.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, length, _ := s.geometry()
	m := s.metrics(length)
	if length <= 0 || m.trackLen == 0 || s.lengths.ContentLen <= 0 {
		return
	}
	if s.autoHide && s.lengths.ContentLen <= s.viewport(length) {
		return
	}

	put := func(index int, glyph string, style tcell.Style) {
		if s.orientation == OrientationHorizontal {
			screen.Put(x+index, y, glyph, style)
		} else {
			screen.Put(x, y+index, glyph, style)
		}
	}
	glyphs := s.axisGlyphs()
	index := 0
	if s.arrows.hasStart() {
		put(index, glyphs.start, s.styles.Arrow)
		index++
	}
	for cell := range m.trackCells {
		if start, fill := m.coverage(cell); fill > 0 {
			put(index, glyphs.thumb(start, fill), s.styles.Thumb)
		} else {
			put(index, glyphs.track, s.styles.Track)
		}
		index++
	}
	if s.arrows.hasEnd() {
		put(index, glyphs.end, s.styles.Arrow)
	}
}

// MouseHandler turns wheel, arrow and track clicks into offset requests.
func (s *ScrollBar) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if !s.InRect(event.Position()) || s.changed == nil {
		return nil, nil
	}
	_, _, length, _ := s.geometry()
	maxOffset := max(s.lengths.ContentLen-s.viewport(length), 0)

	var offset int
	switch action {
	case MouseScrollUp, MouseScrollLeft:
		offset = s.offset - s.step
	case MouseScrollDown, MouseScrollRight:
		offset = s.offset + s.step
	case MouseLeftClick:
		offset = s.clickOffset(event, length, maxOffset)
	default:
		return nil, nil
	}
	if offset = min(max(offset, 0), maxOffset); offset != s.offset {
		s.changed(offset)
	}
	return nil, RedrawCommand{}
}

// clickOffset returns the offset requested by a click at the event position.
func (s *ScrollBar) clickOffset(event *tcell.EventMouse, length, maxOffset int) int {
	x, y, _, lead := s.geometry()
	ex, ey := event.Position()
	pos := ey - y
	if s.orientation == OrientationHorizontal {
		pos = ex - x
	}
	m := s.metrics(length)
	pos -= lead
	switch {
	case pos < 0:
		return s.offset - s.step
	case pos >= m.trackCells:
		return s.offset + s.step
	}

	viewport := s.viewport(length)
	sub := pos * subcell
	switch {
	case sub >= m.thumbStart && sub < m.thumbStart+m.thumbLen:
		return s.offset
	case s.trackClick == TrackClickBehaviorJumpToClick:
		if m.trackCells <= 1 {
			return s.offset
		}
		return maxOffset * pos / (m.trackCells - 1)
	case sub < m.thumbStart:
		return s.offset - viewport
	}
	return s.offset + viewport
}
