package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title     lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Button    lipgloss.Style
	Disabled  lipgloss.Style
	NoteTitle lipgloss.Style
	NoteBody  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1f2937")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		Button:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563eb")),
		Disabled:  lipgloss.NewStyle().Faint(true),
		NoteTitle: lipgloss.NewStyle().Bold(true),
		NoteBody:  lipgloss.NewStyle().Foreground(lipgloss.Color("#4b5563")),
	}
}
