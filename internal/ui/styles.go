package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorPrimary = "#34CB79" // Green - submit button, focus, spinner
	ColorTitle   = "#322153" // Deep purple - banner title
	ColorText    = "#6C6C80" // Gray - description, normal text
	ColorMuted   = "241"     // Gray - hints, placeholders
	ColorOnGreen = "#FFFFFF"
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Logo        lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style

	Select        lipgloss.Style // Selector row, unfocused
	SelectFocused lipgloss.Style // Selector row with focus
	Placeholder   lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonIcon    lipgloss.Style

	BoxCompact lipgloss.Style // Modal box for lists
	Selected   lipgloss.Style
	Muted      lipgloss.Style
	Hint       lipgloss.Style
	Empty      lipgloss.Style
}{
	Logo: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimary)),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorTitle)).
		Width(40).
		MarginTop(1),
	Description: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Width(40).
		MarginTop(1),
	Select: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 2).
		Width(40),
	SelectFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(0, 2).
		Width(40),
	Placeholder: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Button: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorPrimary)).
		Foreground(lipgloss.Color(ColorOnGreen)).
		Padding(0, 2).
		Width(44).
		Align(lipgloss.Center).
		MarginTop(1),
	ButtonFocused: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorPrimary)).
		Foreground(lipgloss.Color(ColorOnGreen)).
		Bold(true).
		Underline(true).
		Padding(0, 2).
		Width(44).
		Align(lipgloss.Center).
		MarginTop(1),
	ButtonIcon: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorOnGreen)).
		Background(lipgloss.Color(ColorPrimary)),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(0, 1).
		Margin(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimary)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
