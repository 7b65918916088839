package help

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/gridview"
	"github.com/xqrs/gridview/keybind"
)

func TestShortHelpLine(t *testing.T) {
	keys := keybind.DefaultNavigationKeyMap()

	tests := map[string]struct {
		width int
		want  string
	}{
		"unlimited": {
			width: 0,
			want:  "↑/k up • ↓/j down • ←/h left • →/l right • enter select",
		},
		"truncated with ellipsis": {
			width: 20,
			want:  "↑/k up • ↓/j down …",
		},
		"first item does not fit": {
			width: 4,
			want:  "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, New().ShortHelpLine(keys.ShortHelp(), tt.width))
		})
	}
}

func TestShortHelpSkipsDisabled(t *testing.T) {
	keys := keybind.DefaultNavigationKeyMap()
	keys.Left.SetEnabled(false)
	keys.Right.SetEnabled(false)

	assert.Equal(t, "↑/k up • ↓/j down • enter select", New().ShortHelpLine(keys.ShortHelp(), 0))
}

func TestFullHelpLines(t *testing.T) {
	keys := keybind.DefaultNavigationKeyMap()
	h := New()

	lines := h.FullHelpLines(keys.FullHelp(), 0)
	require.Len(t, lines, 4)
	assert.Equal(t, "↑/k up       pgup   page up      enter select", lines[0])
	assert.Equal(t, "→/l right    end/G  last         "+strings.Repeat(" ", 12), lines[3])

	// Only two columns fit; the first line marks the dropped one.
	narrow := h.FullHelpLines(keys.FullHelp(), 30)
	require.Len(t, narrow, 4)
	assert.Equal(t, "↑/k up       pgup   page up …", narrow[0])

	assert.Equal(t, []string{"…"}, h.FullHelpLines(keys.FullHelp(), 3))
}

func TestHeight(t *testing.T) {
	h := New().SetKeyMap(keybind.DefaultNavigationKeyMap())
	assert.Equal(t, 1, h.Height())
	h.SetShowAll(true)
	assert.Equal(t, 4, h.Height())
}

func TestDrawWithStatus(t *testing.T) {
	screen := gridview.NewFrameScreen(40, 1)
	h := New().SetKeyMap(keybind.DefaultNavigationKeyMap()).SetStatus("3/100")
	h.SetRect(0, 0, 40, 1)
	h.Draw(screen)

	line := screen.Lines()[0]
	assert.True(t, strings.HasPrefix(line, "↑/k up • ↓/j down • ←/h left …"), line)
	assert.True(t, strings.HasSuffix(line, "3/100"), line)
}

func TestSetStatusMarksDirty(t *testing.T) {
	h := New()
	h.MarkClean()
	h.SetStatus("1/1")
	assert.True(t, h.IsDirty())

	h.MarkClean()
	h.SetStatus("1/1")
	assert.False(t, h.IsDirty())
}
