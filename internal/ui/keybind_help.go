package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap adapts a flat binding list to help.KeyMap.
type KeyMap []key.Binding

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding { return km }

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	if len(km) == 0 {
		return nil
	}
	return [][]key.Binding{km}
}

var _ help.KeyMap = KeyMap(nil)

// RenderKeybindHelp renders bindings as a one-line help bar.
func RenderKeybindHelp(bindings []key.Binding, width int) string {
	if len(bindings) == 0 {
		return ""
	}
	h := help.New()
	h.Width = width
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimary)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	return h.View(KeyMap(bindings))
}
