package overlay

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestComposite(t *testing.T) {
	tests := []struct {
		name string
		bg   string
		fg   string
		x, y int
		want string
	}{
		{
			name: "centre",
			bg:   "aaaa\nbbbb\ncccc",
			fg:   "XY",
			x:    1, y: 1,
			want: "aaaa\nbXYb\ncccc",
		},
		{
			name: "past the right edge",
			bg:   "ab",
			fg:   "XY",
			x:    4, y: 0,
			want: "ab  XY",
		},
		{
			name: "past the bottom",
			bg:   "ab",
			fg:   "X\nY",
			x:    0, y: 1,
			want: "ab\nX\nY",
		},
		{
			name: "negative origin is clamped",
			bg:   "abc",
			fg:   "X",
			x:    -2, y: -1,
			want: "Xbc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Composite(tt.bg, tt.fg, tt.x, tt.y)
			assert.Equal(t, tt.want, ansi.Strip(got))
		})
	}
}

func TestDim(t *testing.T) {
	page := "\x1b[1mbold\x1b[0m line\nsecond"

	assert.Equal(t, page, Dim(page, 0), "zero opacity leaves the page alone")
	assert.Equal(t, "bold line\nsecond", ansi.Strip(Dim(page, 1)))
}
