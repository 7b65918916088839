package gridview

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestFrameScreenPut(t *testing.T) {
	tests := map[string]struct {
		width int
		x     int
		str   string
		want  string
	}{
		"ascii":         {width: 6, x: 0, str: "abc", want: "abc"},
		"offset":        {width: 6, x: 2, str: "ab", want: "  ab"},
		"wide":          {width: 6, x: 0, str: "日本", want: "日本"},
		"clipped":       {width: 6, x: 0, str: "abcdefgh", want: "abcdef"},
		"wide at edge":  {width: 5, x: 0, str: "ab日本", want: "ab日"},
		"wide overflow": {width: 3, x: 2, str: "日", want: ""},
		"combining":     {width: 4, x: 0, str: "éx", want: "éx"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewFrameScreen(tt.width, 1)
			s.PutStrStyled(tt.x, 0, tt.str, tcell.StyleDefault)
			assert.Equal(t, tt.want, s.String())
		})
	}
}

func TestFrameScreenResize(t *testing.T) {
	s := NewFrameScreen(4, 1)
	s.PutStr(0, 0, "abcd")
	s.SetSize(2, 2)

	width, height := s.Size()
	assert.Equal(t, []int{2, 2}, []int{width, height})
	assert.Equal(t, []string{"ab", "  "}, s.Lines())
}

func TestFrameScreenStyles(t *testing.T) {
	s := NewFrameScreen(3, 2)
	bold := tcell.StyleDefault.Bold(true)
	s.PutStrStyled(0, 1, "ab", bold)

	assert.Equal(t, bold, s.StyleAt(1, 1))
	assert.Equal(t, tcell.StyleDefault, s.StyleAt(2, 1))
	assert.Equal(t, tcell.StyleDefault, s.StyleAt(9, 9))
	str, _, width := s.Get(0, 1)
	assert.Equal(t, "a", str)
	assert.Equal(t, 1, width)

	assert.Equal(t, []string{"   ", "ab "}, s.Lines())
	s.Clear()
	assert.Equal(t, "", s.String())
}
