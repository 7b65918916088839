package gridview

import (
	"github.com/gdamore/tcell/v3"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	ContrastBackgroundColor  tcell.Color // Background color for contrasting elements, e.g. the focused item.
	BorderColor              tcell.Color // Box borders and lane separators.
	TitleColor               tcell.Color // Box titles and footers.
	GraphicsColor            tcell.Color // Scroll bars.
	PrimaryTextColor         tcell.Color // Primary text.
	SecondaryTextColor       tcell.Color // Secondary text (e.g. labels).
	TertiaryTextColor        tcell.Color // Tertiary text (e.g. subtitles, notes).
	InverseTextColor         tcell.Color // Text on ContrastBackgroundColor-colored backgrounds.
}

// Styles defines the theme for applications. The default is for a black
// background and some basic colors: black, white, yellow, green, and blue.
var Styles = Theme{
	PrimitiveBackgroundColor: tcell.ColorBlack,
	ContrastBackgroundColor:  tcell.ColorBlue,
	BorderColor:              tcell.ColorWhite,
	TitleColor:               tcell.ColorWhite,
	GraphicsColor:            tcell.ColorWhite,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorYellow,
	TertiaryTextColor:        tcell.ColorGreen,
	InverseTextColor:         tcell.ColorWhite,
}

// FocusedStyle returns the style of the item holding keyboard focus.
func (t Theme) FocusedStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.InverseTextColor).Background(t.ContrastBackgroundColor)
}

// ItemStyle returns the style of every other item.
func (t Theme) ItemStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.PrimaryTextColor).Background(t.PrimitiveBackgroundColor)
}
