package hero

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamstyles "github.com/charmbracelet/glamour/styles"
)

// DefaultMarkdownStyle is used when no style is configured
const DefaultMarkdownStyle = "dark"

var (
	mdRendererMu sync.Mutex
	// Cache renderers by style and wrap width. Building one can query the
	// terminal, so it happens once per combination.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown renders md without the document margin. On any renderer
// error the source text is returned as is.
func renderMarkdown(md, style string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	width = max(width, 10)
	style = markdownStyle(style)

	key := style + ":" + strconv.Itoa(width)
	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		cfg := *glamstyles.DefaultStyles[style]
		zero := uint(0)
		cfg.Document.Margin = &zero
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(cfg),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// markdownStyle normalises a style name, falling back to the default for
// names glamour does not ship.
func markdownStyle(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := glamstyles.DefaultStyles[name]; ok {
		return name
	}
	return DefaultMarkdownStyle
}

// ValidMarkdownStyle reports whether glamour ships a style with this name
func ValidMarkdownStyle(name string) bool {
	_, ok := glamstyles.DefaultStyles[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
