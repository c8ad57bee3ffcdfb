package hero

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/friskycodeur/folio/internal/domain"
	"github.com/friskycodeur/folio/internal/ui/styles"
)

// Copyright returns the footer notice for the given year
func Copyright(name string, year int) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", year, name)
}

// FooterLinks are the profile links repeated in the footer. Documents are
// left out and the email link is labelled "Email".
func FooterLinks(p domain.Profile) []domain.Link {
	var out []domain.Link
	for _, l := range p.Links {
		switch l.Kind {
		case domain.LinkDocument:
			continue
		case domain.LinkEmail:
			l.Label = "Email"
		}
		out = append(out, l)
	}
	return out
}

// Footer renders the copyright notice and the footer links. On wide pages
// they share a line; otherwise the links go underneath.
func Footer(p domain.Profile, year, width int, s *styles.Styles) string {
	notice := Copyright(p.Name, year)

	links := FooterLinks(p)
	labels := make([]string, len(links))
	for i, l := range links {
		labels[i] = s.FooterLink.Render(l.Label)
	}
	linkRow := strings.Join(labels, "   ")

	// Footer has a top border and one row of padding, no side frame
	inner := width
	var body string
	if gap := inner - lipgloss.Width(notice) - lipgloss.Width(linkRow); gap >= 4 {
		body = notice + strings.Repeat(" ", gap) + linkRow
	} else {
		body = lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.PlaceHorizontal(inner, lipgloss.Center, notice),
			lipgloss.PlaceHorizontal(inner, lipgloss.Center, linkRow),
		)
	}
	return s.Footer.Width(width).Render(body)
}
