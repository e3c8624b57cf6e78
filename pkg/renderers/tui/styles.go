package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor  = lipgloss.Color("#7D56F4")
	subtleColor   = lipgloss.Color("#626262")
	fallbackColor = lipgloss.Color("#FF00BB")
	errorColor    = lipgloss.Color("#FF0000")
)

// Styles groups the lipgloss styles used by the view.
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	FieldID      lipgloss.Style
	Fallback     lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(subtleColor),
		FocusedLabel: lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true),
		FieldID: lipgloss.NewStyle().
			Foreground(subtleColor).
			Faint(true),
		Fallback: lipgloss.NewStyle().
			Foreground(fallbackColor).
			Border(lipgloss.NormalBorder()).
			BorderForeground(fallbackColor).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(subtleColor).
			MarginTop(1),
	}
}
