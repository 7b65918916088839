// Package keybind matches tcell key events against configurable key strings
// such as "down", "j", "ctrl+f" or "shift+tab".
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v3"
)

// Keybind is a set of equivalent keys plus the help shown for them.
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

// Help is the text a help view shows for a Keybind.
type Help struct {
	Key  string
	Desc string
}

// Option configures a Keybind.
type Option func(*Keybind)

// NewKeybind returns a Keybind built from options.
func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

// WithKeys sets the keys. They are normalized, so "Ctrl+C", "ctrl-c" and
// "control+c" are the same key.
func WithKeys(keys ...string) Option {
	return func(k *Keybind) { k.SetKeys(keys...) }
}

// WithHelp sets the help text.
func WithHelp(key, desc string) Option {
	return func(k *Keybind) { k.SetHelp(key, desc) }
}

// WithDisabled creates the keybind disabled.
func WithDisabled() Option {
	return func(k *Keybind) { k.disabled = true }
}

// Keys returns the normalized keys.
func (k Keybind) Keys() []string {
	return k.keys
}

func (k *Keybind) SetKeys(keys ...string) {
	k.keys = nil
	for _, key := range keys {
		if key = normalizeKey(key); key != "" && !slices.Contains(k.keys, key) {
			k.keys = append(k.keys, key)
		}
	}
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Enabled reports whether the keybind matches events and shows up in help.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.keys) > 0
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Matches reports whether event is one of the keys of any enabled keybind.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	key := eventKey(event)
	return slices.ContainsFunc(keybinds, func(k Keybind) bool {
		return k.Enabled() && slices.Contains(k.keys, key)
	})
}

// Modifiers are written in this order, whatever order a key string uses.
var modifierOrder = []struct {
	mask tcell.ModMask
	name string
}{
	{tcell.ModCtrl, "ctrl"},
	{tcell.ModAlt, "alt"},
	{tcell.ModShift, "shift"},
	{tcell.ModMeta, "meta"},
}

var modifierNames = map[string]tcell.ModMask{
	"ctrl":    tcell.ModCtrl,
	"control": tcell.ModCtrl,
	"alt":     tcell.ModAlt,
	"shift":   tcell.ModShift,
	"meta":    tcell.ModMeta,
}

var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"del":      "delete",
	"ins":      "insert",
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyInsert:     "insert",
}

// formatKey joins the modifiers in mods and key into the canonical form.
func formatKey(mods tcell.ModMask, key string) string {
	if key == "" {
		return ""
	}
	var b strings.Builder
	for _, m := range modifierOrder {
		if mods&m.mask != 0 {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	if mods != 0 && len([]rune(key)) == 1 {
		key = strings.ToLower(key)
	}
	b.WriteString(key)
	return b.String()
}

// normalizeKey turns a configured key string into the canonical form that
// eventKey produces. It returns "" for strings without a key.
func normalizeKey(key string) string {
	var (
		mods    tcell.ModMask
		primary string
	)
	for _, part := range strings.Split(strings.TrimSpace(key), "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if mask, ok := modifierNames[strings.ToLower(part)]; ok {
			mods |= mask
			continue
		}
		var extra tcell.ModMask
		extra, primary = normalizePrimary(part)
		mods |= extra
	}
	return formatKey(mods, primary)
}

// normalizePrimary normalizes the non-modifier part of a key string. Legacy
// spellings such as "ctrl-x" and "backtab" carry their own modifier.
func normalizePrimary(key string) (tcell.ModMask, string) {
	if inner, ok := strings.CutPrefix(key, "Rune["); ok && strings.HasSuffix(inner, "]") && len(inner) > 1 {
		return 0, strings.TrimSuffix(inner, "]")
	}
	if len([]rune(key)) == 1 {
		return 0, key
	}
	lower := strings.ToLower(key)
	if rest, ok := strings.CutPrefix(lower, "ctrl-"); ok && rest != "" {
		return tcell.ModCtrl, rest
	}
	if lower == "backtab" {
		return tcell.ModShift, "tab"
	}
	if alias, ok := keyAliases[lower]; ok {
		return 0, alias
	}
	return 0, lower
}

// eventKey returns the canonical key string of event.
func eventKey(event *tcell.EventKey) string {
	key, mods := event.Key(), event.Modifiers()
	switch {
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		return formatKey(mods|tcell.ModCtrl, string(rune('a'+(key-tcell.KeyCtrlA))))
	case key == tcell.KeyBacktab:
		return formatKey(mods|tcell.ModShift, "tab")
	case key == tcell.KeyRune:
		// The rune already reflects shift.
		return formatKey(mods&^tcell.ModShift, event.Str())
	}
	if name, ok := keyNames[key]; ok {
		return formatKey(mods, name)
	}
	return normalizeKey(event.Name())
}
