package help

import (
	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/gridview"
)

// ModeStyles styles the parts of one help mode.
type ModeStyles struct {
	Key       tcell.Style
	Desc      tcell.Style
	Separator tcell.Style
}

// Styles styles the short line, the full columns, the truncation marker and
// the status segment.
type Styles struct {
	Short ModeStyles
	Full  ModeStyles

	Ellipsis tcell.Style
	Status   tcell.Style
}

// DefaultStyles dims keys and separators and draws the status in the
// secondary text color of the gridview theme.
func DefaultStyles() Styles {
	dim := tcell.StyleDefault.Dim(true)
	mode := ModeStyles{Key: dim, Desc: tcell.StyleDefault, Separator: dim}
	return Styles{
		Short:    mode,
		Full:     mode,
		Ellipsis: dim,
		Status:   tcell.StyleDefault.Foreground(gridview.Styles.SecondaryTextColor),
	}
}
