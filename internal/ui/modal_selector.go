package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectorModal is a dropdown-style picker for one Field. The first row is
// the placeholder, which selects Unset.
type SelectorModal struct {
	list        list.Model
	field       Field
	placeholder string
	options     []string
	current     string
}

type selectorItem struct {
	label string
	value string
}

func (s selectorItem) FilterValue() string { return s.label }
func (s selectorItem) Title() string       { return s.label }
func (s selectorItem) Description() string { return "" }

// Ensure SelectorModal implements View.
var _ View = (*SelectorModal)(nil)

// NewSelectorModal builds a picker from the loaded options, in order.
// The cursor starts on current when it is one of the options.
func NewSelectorModal(field Field, placeholder string, options []string, current string) *SelectorModal {
	items, cursor := selectorItems(placeholder, options, current)

	l := list.New(items, NewCompactListDelegate(), 44, 14)
	l.Title = placeholder
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Selected
	l.Select(cursor)

	return &SelectorModal{
		list:        l,
		field:       field,
		placeholder: placeholder,
		options:     options,
		current:     current,
	}
}

// selectorItems lists the placeholder row followed by options and returns
// the index of focus, or 0 when focus is not among the options.
func selectorItems(placeholder string, options []string, focus string) ([]list.Item, int) {
	items := make([]list.Item, 0, len(options)+1)
	items = append(items, selectorItem{label: placeholder, value: Unset})
	cursor := 0
	for i, o := range options {
		items = append(items, selectorItem{label: o, value: o})
		if o == focus && focus != Unset {
			cursor = i + 1
		}
	}
	return items, cursor
}

// Field returns the selector this modal edits.
func (m *SelectorModal) Field() Field { return m.field }

// Options returns the selectable values, excluding the placeholder row.
func (m *SelectorModal) Options() []string { return m.options }

// SetOptions rebinds the modal to a freshly loaded list. The highlighted
// value stays highlighted when it is still listed; otherwise the cursor
// falls back to the current selection.
func (m *SelectorModal) SetOptions(options []string) tea.Cmd {
	if slices.Equal(options, m.options) {
		return nil
	}
	focus := m.current
	if sel, ok := m.list.SelectedItem().(selectorItem); ok && sel.value != Unset {
		focus = sel.value
	}
	m.options = options
	items, cursor := selectorItems(m.placeholder, options, focus)
	cmd := m.list.SetItems(items)
	m.list.Select(cursor)
	return cmd
}

// Init implements View.
func (m *SelectorModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *SelectorModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			if sel, ok := m.list.SelectedItem().(selectorItem); ok {
				field := m.field
				return m, func() tea.Msg { return SelectionMsg{Field: field, Value: sel.value} }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *SelectorModal) View() string {
	help := "Enter: select  /: filter  Esc: cancel"
	if len(m.options) == 0 {
		help = "Nothing loaded yet  Esc: cancel"
	}
	return Styles.BoxCompact.Render(m.list.View() + "\n" + Styles.Hint.Render(help))
}
