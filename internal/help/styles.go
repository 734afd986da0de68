package help

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for direct terminal rendering.
type Styles struct {
	// Header is the style for section headers (bold).
	Header lipgloss.Style

	// Flag is the style for flag usage lines (cyan).
	Flag lipgloss.Style

	// Muted is the style for default-value sentences.
	Muted lipgloss.Style
}

// DefaultStyles returns the standard styles for help output.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true),
		Flag:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // Cyan
		Muted:  lipgloss.NewStyle().Faint(true),
	}
}
