package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleManager encapsulates all styles used for terminal output
type StyleManager struct {
	// Report styles
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Tag   lipgloss.Style
	Dim   lipgloss.Style

	// Progress styles
	Current lipgloss.Style
	Error   lipgloss.Style
	Done    lipgloss.Style

	// Chrome styles
	Border  lipgloss.Style
	Divider lipgloss.Style

	// Gradient for the progress bar
	BarStart string
	BarEnd   string
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Value:    lipgloss.NewStyle().Bold(true),
		Tag:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Current:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Divider:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		BarStart: "#5A56E0",
		BarEnd:   "#EE6FF8",
	}
}

// Global style manager instance
var styles = DefaultStyles()

// Plain drops all colors, used when output is not a terminal
func (s *StyleManager) Plain() *StyleManager {
	plain := lipgloss.NewStyle()
	return &StyleManager{
		Title:    plain,
		Label:    plain,
		Value:    plain,
		Tag:      plain,
		Dim:      plain,
		Current:  plain,
		Error:    plain,
		Done:     plain,
		Border:   plain,
		Divider:  plain,
		BarStart: s.BarStart,
		BarEnd:   s.BarEnd,
	}
}
