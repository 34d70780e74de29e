package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the views.
type Styles struct {
	Title    lipgloss.Style
	Stats    lipgloss.Style
	Search   lipgloss.Style
	Category lipgloss.Style
	Filled   lipgloss.Style
	Empty    lipgloss.Style
	Selected lipgloss.Style
	Footer   lipgloss.Style
	Message  lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles mirrors the classic terminal palette: green for chests with
// content, yellow category headers, cyan key hints, red search header.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true),
		Stats: lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")),
		Search: lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true),
		Category: lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Bold(true),
		Filled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")),
		Empty: lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().
			Reverse(true),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")),
		Message: lipgloss.NewStyle().
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")),
	}
}
