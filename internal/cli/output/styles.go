package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by text-mode output.
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Keyword lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() *Styles {
	return &Styles{
		Header:  lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Keyword: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
}
