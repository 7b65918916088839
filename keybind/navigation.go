package keybind

// NavigationKeyMap holds the keys of a navigable list or grid.
//
// Up, Down, Left and Right are physical directions; a widget maps them onto
// its own main and cross axes.
type NavigationKeyMap struct {
	Up    Keybind
	Down  Keybind
	Left  Keybind
	Right Keybind

	PageUp   Keybind
	PageDown Keybind
	Home     Keybind
	End      Keybind

	Select Keybind
}

// DefaultNavigationKeyMap returns arrow, vim and paging keys.
func DefaultNavigationKeyMap() NavigationKeyMap {
	return NavigationKeyMap{
		Up:    NewKeybind(WithKeys("up", "k"), WithHelp("↑/k", "up")),
		Down:  NewKeybind(WithKeys("down", "j"), WithHelp("↓/j", "down")),
		Left:  NewKeybind(WithKeys("left", "h"), WithHelp("←/h", "left")),
		Right: NewKeybind(WithKeys("right", "l"), WithHelp("→/l", "right")),

		PageUp:   NewKeybind(WithKeys("pgup", "ctrl+b"), WithHelp("pgup", "page up")),
		PageDown: NewKeybind(WithKeys("pgdn", "ctrl+f"), WithHelp("pgdn", "page down")),
		Home:     NewKeybind(WithKeys("home", "g"), WithHelp("home/g", "first")),
		End:      NewKeybind(WithKeys("end", "G"), WithHelp("end/G", "last")),

		Select: NewKeybind(WithKeys("enter"), WithHelp("enter", "select")),
	}
}

// ShortHelp returns the bindings shown in a single help line.
func (m NavigationKeyMap) ShortHelp() []Keybind {
	return []Keybind{m.Up, m.Down, m.Left, m.Right, m.Select}
}

// FullHelp returns the bindings grouped into help columns.
func (m NavigationKeyMap) FullHelp() [][]Keybind {
	return [][]Keybind{
		{m.Up, m.Down, m.Left, m.Right},
		{m.PageUp, m.PageDown, m.Home, m.End},
		{m.Select},
	}
}
