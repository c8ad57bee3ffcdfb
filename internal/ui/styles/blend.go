package styles

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Blend mixes from into to by t (0 = from, 1 = to) in Lab space.
// Colours that fail to parse fall back to the nearer endpoint.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	t = Clamp01(t)
	switch t {
	case 0:
		return from
	case 1:
		return to
	}
	a, errA := colorful.Hex(string(from))
	b, errB := colorful.Hex(string(to))
	if errA != nil || errB != nil {
		if t < 0.5 {
			return from
		}
		return to
	}
	return lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
}

// Fade returns c at the given opacity over the background bg
func Fade(c, bg lipgloss.Color, opacity float64) lipgloss.Color {
	return Blend(bg, c, opacity)
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
