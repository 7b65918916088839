package gridview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordWrap(t *testing.T) {
	tests := map[string]struct {
		text  string
		width int
		want  []string
	}{
		"fits":           {text: "Item 1", width: 10, want: []string{"Item 1"}},
		"breaks":         {text: "Item 1024 of many", width: 9, want: []string{"Item ", "1024 of ", "many"}},
		"long word":      {text: "abcdefgh", width: 3, want: []string{"abc", "def", "gh"}},
		"hard break":     {text: "a\nb", width: 5, want: []string{"a", "b"}},
		"no width":       {text: "abc", width: 0, want: nil},
		"wide graphemes": {text: "日本語", width: 4, want: []string{"日本", "語"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordWrap(tt.text, tt.width))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := map[string]struct {
		text  string
		width int
		want  string
	}{
		"fits":      {text: "Item 1", width: 6, want: "Item 1"},
		"cut":       {text: "Item 1024", width: 6, want: "Item …"},
		"only tail": {text: "Item", width: 1, want: "…"},
		"no width":  {text: "Item", width: 0, want: ""},
		"wide":      {text: "日本語", width: 4, want: "日…"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.text, tt.width))
		})
	}
}

func TestTextWidth(t *testing.T) {
	assert.Equal(t, 0, TextWidth(""))
	assert.Equal(t, 6, TextWidth("Item 1"))
	assert.Equal(t, 6, TextWidth("日本語"))
}
