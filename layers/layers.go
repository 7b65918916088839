// Package layers stacks primitives on top of each other, e.g. a grid page
// with a modal details view above it.
package layers

import (
	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/gridview"
)

// layer represents one layer of a Layers object.
type layer struct {
	name    string             // The layer's name.
	item    gridview.Primitive // The layer's primitive.
	resize  bool               // Whether to fill the container's inner rect.
	width   int                // Size of a centered layer, 0 when not centered.
	height  int                //
	visible bool               // Whether or not this layer is visible.
	enabled bool               // Whether or not this layer can receive focus/input.
	overlay bool               // Whether this layer restyles the layers behind it.
}

// Layers is a container for other primitives laid out on top of each other.
// The layers are drawn from back to front and can optionally apply a
// background style to the layers behind them (typically used for modal dialogs).
type Layers struct {
	*gridview.Box

	// The contained layers. (Visible) layers are drawn from back to front.
	layers []*layer
	// Restyles the cells of layers behind the active overlay layer.
	backgroundLayerStyle func(tcell.Style) tcell.Style

	// We keep a reference to the function which allows us to set the focus to
	// a newly visible layer.
	setFocus func(p gridview.Primitive)
	// An optional handler which is called whenever the visibility of layers
	// changes.
	changed func()
}

// Option configures a layer on Add.
type Option func(*layer)

// WithName sets the layer's name.
func WithName(name string) Option {
	return func(l *layer) {
		l.name = name
	}
}

// WithResize sets whether the layer is resized to the container's inner rect.
func WithResize(resize bool) Option {
	return func(l *layer) {
		l.resize = resize
	}
}

// WithCentered centers the layer with the given size, shrunk to the container
// when it does not fit.
func WithCentered(width, height int) Option {
	return func(l *layer) {
		l.resize = false
		l.width, l.height = width, height
	}
}

// WithVisible sets the initial visibility of the layer.
func WithVisible(visible bool) Option {
	return func(l *layer) {
		l.visible = visible
	}
}

// WithEnabled sets whether the layer can receive focus and input.
func WithEnabled(enabled bool) Option {
	return func(l *layer) {
		l.enabled = enabled
	}
}

// WithOverlay marks this layer as an overlay layer.
func WithOverlay() Option {
	return func(l *layer) {
		l.overlay = true
	}
}

// New returns a new Layers object.
func New() *Layers {
	return &Layers{
		Box:                  gridview.NewBox(),
		backgroundLayerStyle: DimStyle,
	}
}

// SetChangedFunc sets a handler which is called whenever the visibility of
// any layer changes.
func (l *Layers) SetChangedFunc(handler func()) *Layers {
	l.changed = handler
	return l
}

// AddLayer adds a new layer for the given primitive. A layer with the same
// name is replaced.
func (l *Layers) AddLayer(item gridview.Primitive, opts ...Option) *Layers {
	newLayer := &layer{
		item:    item,
		resize:  true,
		visible: true,
		enabled: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(newLayer)
		}
	}
	if newLayer.name != "" {
		l.remove(newLayer.name)
	}
	l.layers = append(l.layers, newLayer)
	l.update(newLayer.visible)
	return l
}

// RemoveLayer removes the layer with the given name.
func (l *Layers) RemoveLayer(name string) *Layers {
	if removed := l.remove(name); removed != nil {
		if removed.item.HasFocus() {
			removed.item.Blur()
		}
		l.update(removed.visible)
	}
	return l
}

// HasLayer returns true if a layer with the given name exists in this object.
func (l *Layers) HasLayer(name string) bool {
	return l.find(name) != nil
}

// GetLayer returns the primitive of the named layer, or nil.
func (l *Layers) GetLayer(name string) gridview.Primitive {
	if ly := l.find(name); ly != nil {
		return ly.item
	}
	return nil
}

// GetVisible returns whether the given layer is visible.
func (l *Layers) GetVisible(name string) bool {
	ly := l.find(name)
	return ly != nil && ly.visible
}

// ShowLayer makes a layer visible and moves focus to it when it is the top
// enabled layer.
func (l *Layers) ShowLayer(name string) *Layers {
	if ly := l.find(name); ly != nil && !ly.visible {
		ly.visible = true
		l.update(true)
	}
	return l
}

// HideLayer hides a layer. Focus moves to the next visible enabled layer.
func (l *Layers) HideLayer(name string) *Layers {
	if ly := l.find(name); ly != nil && ly.visible {
		ly.visible = false
		if ly.item.HasFocus() {
			ly.item.Blur()
		}
		l.update(true)
	}
	return l
}

// GetFrontLayer returns the front-most visible layer. If there are no visible
// layers, ("", nil) is returned.
func (l *Layers) GetFrontLayer() (name string, item gridview.Primitive) {
	for index := len(l.layers) - 1; index >= 0; index-- {
		if l.layers[index].visible {
			return l.layers[index].name, l.layers[index].item
		}
	}
	return "", nil
}

// DimStyle is the default restyling of layers behind an overlay.
func DimStyle(style tcell.Style) tcell.Style {
	return style.Dim(true)
}

// SetBackgroundLayerStyle sets the function restyling every cell drawn by
// layers behind the active overlay layer. Nil leaves them unchanged.
func (l *Layers) SetBackgroundLayerStyle(restyle func(tcell.Style) tcell.Style) *Layers {
	l.backgroundLayerStyle = restyle
	l.MarkDirty()
	return l
}

// IsDirty returns whether this primitive or one of its visible children needs redraw.
func (l *Layers) IsDirty() bool {
	if l.Box.IsDirty() {
		return true
	}
	for _, layer := range l.layers {
		if layer.visible && layer.item.IsDirty() {
			return true
		}
	}
	return false
}

// MarkClean marks this primitive and all children as clean.
func (l *Layers) MarkClean() {
	l.Box.MarkClean()
	for _, layer := range l.layers {
		layer.item.MarkClean()
	}
}

// HasFocus returns whether or not this primitive has focus.
func (l *Layers) HasFocus() bool {
	for _, layer := range l.layers {
		if layer.enabled && layer.item.HasFocus() {
			return true
		}
	}
	return l.Box.HasFocus()
}

// Focus passes focus on to the top visible enabled layer.
func (l *Layers) Focus(delegate func(p gridview.Primitive)) {
	if delegate == nil {
		return // We cannot delegate so we cannot focus.
	}
	l.setFocus = delegate
	if top := l.topVisibleEnabledLayer(); top != nil {
		delegate(top.item)
		return
	}
	l.Box.Focus(delegate)
}

// Draw draws this primitive onto the screen.
func (l *Layers) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	overlayIndex := l.topVisibleEnabledOverlayIndex()
	var ovScreen *overlayScreen
	if overlayIndex >= 0 {
		ovScreen = newOverlayScreen(screen, l.backgroundLayerStyle)
	}
	x, y, width, height := l.GetInnerRect()
	for index, layer := range l.layers {
		if !layer.visible {
			continue
		}
		layerScreen := screen
		if ovScreen != nil && index < overlayIndex {
			// Lower layers draw through the overlay screen so only the touched
			// cells get restyled.
			layerScreen = ovScreen
		}
		switch {
		case layer.width > 0 && layer.height > 0:
			w, h := min(layer.width, width), min(layer.height, height)
			layer.item.SetRect(x+(width-w)/2, y+(height-h)/2, w, h)
		case layer.resize:
			layer.item.SetRect(x, y, width, height)
		}
		layer.item.Draw(layerScreen)
	}
}

// MouseHandler passes mouse events to the front-most visible layer that takes
// them, never to layers behind an active overlay.
func (l *Layers) MouseHandler(action gridview.MouseAction, event *tcell.EventMouse) (gridview.Primitive, gridview.Command) {
	if !l.InRect(event.Position()) {
		return nil, nil
	}

	overlayIndex := l.topVisibleEnabledOverlayIndex()
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if !layer.visible || !layer.enabled {
			continue
		}
		if overlayIndex >= 0 && index < overlayIndex {
			break
		}
		if capture, cmd := layer.item.MouseHandler(action, event); capture != nil || cmd != nil {
			return capture, cmd
		}
	}

	// An active overlay blocks the layers behind it even when it did not
	// take the event.
	if overlayIndex >= 0 {
		return nil, gridview.ConsumeEventCommand{}
	}
	return nil, nil
}

// InputHandler passes key events to the layer holding focus.
func (l *Layers) InputHandler(event *tcell.EventKey) gridview.Command {
	if ly := l.focusedLayer(); ly != nil {
		return ly.item.InputHandler(event)
	}
	return nil
}

// PasteHandler passes pasted text to the layer holding focus.
func (l *Layers) PasteHandler(text string) gridview.Command {
	if ly := l.focusedLayer(); ly != nil {
		return ly.item.PasteHandler(text)
	}
	return nil
}

func (l *Layers) find(name string) *layer {
	for _, layer := range l.layers {
		if layer.name == name {
			return layer
		}
	}
	return nil
}

func (l *Layers) remove(name string) *layer {
	for index, layer := range l.layers {
		if layer.name == name {
			l.layers = append(l.layers[:index], l.layers[index+1:]...)
			return layer
		}
	}
	return nil
}

// update redraws and, when visibility changed while focused, hands focus to
// the new top layer.
func (l *Layers) update(visibilityChanged bool) {
	l.MarkDirty()
	if !visibilityChanged {
		return
	}
	if l.changed != nil {
		l.changed()
	}
	if l.setFocus != nil && (l.HasFocus() || l.focusedLayer() == nil) {
		l.Focus(l.setFocus)
	}
}

func (l *Layers) focusedLayer() *layer {
	for _, layer := range l.layers {
		if layer.enabled && layer.item.HasFocus() {
			return layer
		}
	}
	return nil
}

func (l *Layers) topVisibleEnabledLayer() *layer {
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if layer.visible && layer.enabled {
			return layer
		}
	}
	return nil
}

// topVisibleEnabledOverlayIndex returns the index of the top-most overlay
// layer that is both visible and enabled. Only one overlay applies at a time.
func (l *Layers) topVisibleEnabledOverlayIndex() int {
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if layer.visible && layer.enabled && layer.overlay {
			return index
		}
	}
	return -1
}

type overlayScreen struct {
	tcell.Screen
	restyle func(tcell.Style) tcell.Style
}

func newOverlayScreen(screen tcell.Screen, restyle func(tcell.Style) tcell.Style) *overlayScreen {
	if restyle == nil {
		restyle = func(style tcell.Style) tcell.Style { return style }
	}
	return &overlayScreen{
		Screen:  screen,
		restyle: restyle,
	}
}

func (s *overlayScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	s.Screen.SetContent(x, y, primary, combining, s.restyle(style))
}

func (s *overlayScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	return s.Screen.Put(x, y, str, s.restyle(style))
}

func (s *overlayScreen) PutStr(x int, y int, str string) {
	s.Screen.PutStrStyled(x, y, str, s.restyle(tcell.StyleDefault))
}

func (s *overlayScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	s.Screen.PutStrStyled(x, y, str, s.restyle(style))
}
