// Package demo assembles the griddemo screen: a virtual grid of numbered
// items, a help footer with the focus position and a details overlay.
package demo

import (
	"fmt"

	"github.com/gdamore/tcell/v3"
	"go.uber.org/zap"

	"github.com/xqrs/gridview"
	"github.com/xqrs/gridview/axis"
	"github.com/xqrs/gridview/help"
	"github.com/xqrs/gridview/internal/config"
	"github.com/xqrs/gridview/keybind"
	"github.com/xqrs/gridview/layers"
)

const (
	pageLayer    = "page"
	detailsLayer = "details"
)

var borderSets = map[string]func() gridview.BorderSet{
	"plain":  gridview.BorderSetPlain,
	"round":  gridview.BorderSetRound,
	"thick":  gridview.BorderSetThick,
	"double": gridview.BorderSetDouble,
	"hidden": gridview.BorderSetHidden,
}

var glyphSets = map[string]func() gridview.GlyphSet{
	"minimal": gridview.MinimalGlyphSet,
	"unicode": gridview.UnicodeGlyphSet,
	"legacy":  gridview.LegacyComputingGlyphSet,
	"box":     gridview.BoxDrawingGlyphSet,
}

// Item is one generated demo item.
type Item struct {
	Index int
	Label string
}

// Items returns n numbered items.
func Items(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Index: i, Label: fmt.Sprintf("Item %d", i+1)}
	}
	return items
}

// KeyMap holds the page keys next to the grid navigation keys.
type KeyMap struct {
	Navigation keybind.NavigationKeyMap

	Help  keybind.Keybind
	Close keybind.Keybind
	Quit  keybind.Keybind
}

// DefaultKeyMap returns the default page keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Navigation: keybind.DefaultNavigationKeyMap(),
		Help:       keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "more")),
		Close:      keybind.NewKeybind(keybind.WithKeys("esc", "enter"), keybind.WithHelp("esc", "close")),
		Quit:       keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in a single help line.
func (k KeyMap) ShortHelp() []keybind.Keybind {
	return append(k.Navigation.ShortHelp(), k.Help, k.Quit)
}

// FullHelp returns the bindings grouped into help columns.
func (k KeyMap) FullHelp() [][]keybind.Keybind {
	return append(k.Navigation.FullHelp(), []keybind.Keybind{k.Help, k.Close, k.Quit})
}

// Page is the root primitive of the demo.
type Page struct {
	*layers.Layers

	keys    KeyMap
	grid    *gridview.VirtualGrid[Item]
	help    *help.Help
	details *gridview.Cell
	logger  *zap.Logger

	// Focus position to restore when the details close. The grid resets its
	// position once focus leaves it.
	restore int
}

// NewPage builds the page for cfg.
func NewPage(cfg config.GridConfig, logger *zap.Logger) *Page {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Page{
		Layers:  layers.New(),
		keys:    DefaultKeyMap(),
		grid:    gridview.NewVirtualGrid[Item](),
		help:    help.New(),
		details: gridview.NewCell(""),
		logger:  logger,
	}

	items := Items(cfg.Items)
	p.grid.SetLogger(logger).
		SetDirection(cfg.ParsedDirection()).
		SetItemSize(cfg.ItemWidth, cfg.ItemHeight).
		SetOverscan(cfg.Overscan).
		SetScrollBarVisible(cfg.ScrollBar).
		SetLaneSeparators(cfg.Separators).
		SetKeyMap(p.keys.Navigation).
		SetRenderer(renderItem).
		SetItems(items).
		SetChangedFunc(func(index int, _ Item) {
			p.help.SetStatus(status(index, len(items)))
		}).
		SetSelectedFunc(p.ShowDetails)
	switch {
	case cfg.Columns > 0:
		p.grid.SetColumns(cfg.Columns)
	case cfg.MinItemWidth > 0:
		p.grid.SetCrossCount(axis.ColumnsFor(cfg.MinItemWidth))
	}
	if cfg.Border {
		p.grid.SetBorders(gridview.BordersAll)
		p.grid.SetTitle(cfg.Title)
	}
	if borderSet, ok := borderSets[cfg.BorderStyle]; ok {
		p.grid.SetBorderSet(borderSet())
		p.details.SetBorderSet(borderSet())
	}
	if glyphSet, ok := glyphSets[cfg.ScrollBarGlyphs]; ok {
		p.grid.ScrollBar().SetGlyphSet(glyphSet())
	}

	p.help.SetKeyMap(p.keys).SetStatus(status(0, len(items)))

	p.details.SetAlignment(gridview.AlignmentCenter)
	p.details.SetBorders(gridview.BordersAll)
	p.details.SetTitle("details")

	p.AddLayer(newBody(p.grid, p.help), layers.WithName(pageLayer))
	p.AddLayer(p.details,
		layers.WithName(detailsLayer),
		layers.WithOverlay(),
		layers.WithCentered(40, 7),
		layers.WithVisible(false),
	)
	return p
}

// Grid returns the item grid.
func (p *Page) Grid() *gridview.VirtualGrid[Item] {
	return p.grid
}

// Help returns the help footer.
func (p *Page) Help() *help.Help {
	return p.help
}

// Details returns the text of the details overlay.
func (p *Page) Details() string {
	return p.details.GetText()
}

// DetailsVisible reports whether the details overlay is shown.
func (p *Page) DetailsVisible() bool {
	return p.GetVisible(detailsLayer)
}

// ShowDetails opens the details overlay for item.
func (p *Page) ShowDetails(index int, item Item) {
	p.logger.Debug("show details", zap.Int("index", index))
	p.details.SetText(fmt.Sprintf("%s (%d of %d)", item.Label, index+1, len(p.grid.Items())))
	p.restore = index
	p.ShowLayer(detailsLayer)
}

// HideDetails closes the details overlay.
func (p *Page) HideDetails() {
	if !p.DetailsVisible() {
		return
	}
	p.HideLayer(detailsLayer)
	p.grid.SetFocusPosition(p.restore)
}

// Close disposes the grid.
func (p *Page) Close() {
	p.grid.Dispose()
}

// InputHandler handles the page keys and passes the rest to the front layer.
func (p *Page) InputHandler(event *tcell.EventKey) gridview.Command {
	if p.DetailsVisible() {
		if keybind.Matches(event, p.keys.Close, p.keys.Quit) {
			p.HideDetails()
			return gridview.RedrawCommand{}
		}
		return p.Layers.InputHandler(event)
	}

	switch {
	case keybind.Matches(event, p.keys.Help):
		p.help.SetShowAll(!p.help.ShowAll())
		return gridview.RedrawCommand{}
	case keybind.Matches(event, p.keys.Quit):
		return gridview.QuitCommand{}
	}
	return p.Layers.InputHandler(event)
}

func renderItem(slot gridview.GridSlot[Item]) gridview.Primitive {
	cell := gridview.NewCell(slot.Item.Label).SetAlignment(gridview.AlignmentCenter)
	cell.SetBorderPadding(0, 0, 1, 1)
	return cell
}

func status(index, total int) string {
	if total == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", index+1, total)
}
