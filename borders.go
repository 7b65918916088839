package gridview

// BorderSet defines the glyphs used when box borders and lane separators are
// drawn.
type BorderSet struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	// TopT and BottomT join a lane separator with the top and bottom border,
	// LeftT and RightT join it with the left and right border.
	TopT    string
	BottomT string
	LeftT   string
	RightT  string
}

// Separator returns the glyph of a separator running along a border side:
// vertical separators reuse Left, horizontal ones Top.
func (s BorderSet) Separator(vertical bool) string {
	if vertical {
		return s.Left
	}
	return s.Top
}

func BorderSetHidden() BorderSet {
	return BorderSet{
		Top: " ", Bottom: " ", Left: " ", Right: " ",
		TopLeft: " ", TopRight: " ", BottomLeft: " ", BottomRight: " ",
		TopT: " ", BottomT: " ", LeftT: " ", RightT: " ",
	}
}

func BorderSetPlain() BorderSet {
	return BorderSet{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
		TopT:        "┬",
		BottomT:     "┴",
		LeftT:       "├",
		RightT:      "┤",
	}
}

func BorderSetRound() BorderSet {
	s := BorderSetPlain()
	s.TopLeft, s.TopRight = "╭", "╮"
	s.BottomLeft, s.BottomRight = "╰", "╯"
	return s
}

func BorderSetThick() BorderSet {
	return BorderSet{
		Top:         "━",
		Bottom:      "━",
		Left:        "┃",
		Right:       "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
		TopT:        "┳",
		BottomT:     "┻",
		LeftT:       "┣",
		RightT:      "┫",
	}
}

func BorderSetDouble() BorderSet {
	return BorderSet{
		Top:         "═",
		Bottom:      "═",
		Left:        "║",
		Right:       "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
		TopT:        "╦",
		BottomT:     "╩",
		LeftT:       "╠",
		RightT:      "╣",
	}
}

// Borders is a bit set of box sides.
type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}
