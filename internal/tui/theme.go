package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used by the quiz screens.
type Theme struct {
	TextMuted   lipgloss.Color
	TextPrimary lipgloss.Color
	Accent      lipgloss.Color
	Green       lipgloss.Color
	Red         lipgloss.Color
	Yellow      lipgloss.Color
}

// DefaultTheme is a warm dark palette.
var DefaultTheme = Theme{
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#3AA99F"),
	Green:       lipgloss.Color("#879A39"),
	Red:         lipgloss.Color("#D14D41"),
	Yellow:      lipgloss.Color("#D0A215"),
}

type styles struct {
	title     lipgloss.Style
	muted     lipgloss.Style
	text      lipgloss.Style
	cursor    lipgloss.Style
	correct   lipgloss.Style
	wrong     lipgloss.Style
	highlight lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:     lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(t.TextMuted),
		text:      lipgloss.NewStyle().Foreground(t.TextPrimary),
		cursor:    lipgloss.NewStyle().Foreground(t.Accent),
		correct:   lipgloss.NewStyle().Foreground(t.Green).Bold(true),
		wrong:     lipgloss.NewStyle().Foreground(t.Red),
		highlight: lipgloss.NewStyle().Foreground(t.Yellow),
	}
}
