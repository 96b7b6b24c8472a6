package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps global key strings ("q", "ctrl+c", "?") to commands.
// Screen-local keys (tab, enter) live on the screens themselves.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// BindWithDesc registers a key with a description for the help bar, for
// every mode. Overwrites any existing binding for the key. An empty desc
// keeps the key out of the help bar.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(k, cmd, desc, nil)
}

// BindWithDescForMode registers a key with a description and mode filter.
// If modes is nil or empty, the binding applies to all modes.
func (r *KeybindRegistry) BindWithDescForMode(k string, cmd tea.Cmd, desc string, modes []AppMode) {
	n := normalizeKey(k)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	} else {
		delete(r.modeFilter, n)
	}
}

// Lookup returns the command bound to k in mode, or nil.
func (r *KeybindRegistry) Lookup(k string, mode AppMode) tea.Cmd {
	n := normalizeKey(k)
	if !r.appliesToMode(n, mode) {
		return nil
	}
	return r.bindings[n]
}

// Bindings returns the described bindings active in mode, sorted by key,
// as bubbles key.Bindings for the help bar.
func (r *KeybindRegistry) Bindings(mode AppMode) []key.Binding {
	keys := make([]string, 0, len(r.descriptions))
	for k := range r.descriptions {
		if r.bindings[k] != nil && r.appliesToMode(k, mode) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		out = append(out, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, r.descriptions[k]),
		))
	}
	return out
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(k string, mode AppMode) bool {
	modes, ok := r.modeFilter[k]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeKey maps Bubble Tea's " " for space to "space".
func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	if k == "" {
		return "space"
	}
	return k
}
