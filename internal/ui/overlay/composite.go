package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetSGR = "\x1b[0m"

// Composite draws fg over bg with its top-left corner at (x, y). bg is
// padded with blank lines and spaces where fg reaches past it.
func Composite(bg, fg string, x, y int) string {
	x, y = max(x, 0), max(y, 0)
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}

	for i, fl := range fgLines {
		row := y + i
		line := bgLines[row]
		w := ansi.StringWidth(line)
		if w < x {
			line += strings.Repeat(" ", x-w)
			w = x
		}
		fw := ansi.StringWidth(fl)

		var b strings.Builder
		b.WriteString(ansi.Cut(line, 0, x))
		b.WriteString(resetSGR)
		b.WriteString(fl)
		b.WriteString(resetSGR)
		if x+fw < w {
			b.WriteString(ansi.Cut(line, x+fw, w))
		}
		bgLines[row] = b.String()
	}
	return strings.Join(bgLines, "\n")
}

// Dim strips the page's own styling and repaints it faded towards the
// backdrop. Opacity 0 leaves the page untouched.
func Dim(page string, opacity float64) string {
	if opacity <= 0 {
		return page
	}
	st := backdropStyle(opacity)
	lines := strings.Split(ansi.Strip(page), "\n")
	for i, l := range lines {
		if l == "" {
			continue
		}
		lines[i] = st.Render(l)
	}
	return strings.Join(lines, "\n")
}
