package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all the UI styles
type Styles struct {
	// Hero
	HeroName     lipgloss.Style
	HeroHeadline lipgloss.Style
	HeroSummary  lipgloss.Style

	// Link buttons
	LinkButton       lipgloss.Style
	LinkButtonActive lipgloss.Style

	// Sections
	SectionHeading       lipgloss.Style
	SectionHeadingActive lipgloss.Style

	// Cards
	Card         lipgloss.Style
	CardActive   lipgloss.Style
	CardTitle    lipgloss.Style
	CardSubtitle lipgloss.Style
	CardMetrics  lipgloss.Style
	CardHint     lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style

	// Footer
	Footer     lipgloss.Style
	FooterLink lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		HeroName: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		HeroHeadline: lipgloss.NewStyle().
			Foreground(Subtext1),

		HeroSummary: lipgloss.NewStyle().
			Foreground(Subtext0),

		LinkButton: lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface0).
			Padding(0, 2),

		LinkButtonActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Accent).
			Bold(true).
			Padding(0, 2),

		SectionHeading: lipgloss.NewStyle().
			Foreground(Subtext1).
			Bold(true).
			MarginBottom(1),

		SectionHeadingActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			MarginBottom(1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		CardActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		CardSubtitle: lipgloss.NewStyle().
			Foreground(Subtext0),

		CardMetrics: lipgloss.NewStyle().
			Foreground(Subtext1),

		CardHint: lipgloss.NewStyle().
			Foreground(Overlay0),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Mantle).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(Overlay0).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Surface0).
			PaddingTop(1),

		FooterLink: lipgloss.NewStyle().
			Foreground(Overlay1),
	}
}

// CardFor returns the card container style for the given focus state
func (s *Styles) CardFor(focused bool) lipgloss.Style {
	if focused {
		return s.CardActive
	}
	return s.Card
}

// Heading returns the section heading style for the given focus state
func (s *Styles) Heading(focused bool) lipgloss.Style {
	if focused {
		return s.SectionHeadingActive
	}
	return s.SectionHeading
}
