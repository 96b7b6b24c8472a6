package ui

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// runCmd executes cmd and any batched children, returning the messages they
// produce. Spinner ticks are dropped so tests never wait on animation.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch m := cmd().(type) {
	case nil, spinner.TickMsg:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range m {
			out = append(out, runCmd(c)...)
		}
		return out
	default:
		return []tea.Msg{m}
	}
}

// feed runs cmd and delivers every resulting message to h.
func feed(h *HomeView, cmd tea.Cmd) {
	for _, msg := range runCmd(cmd) {
		_, next := h.Update(msg)
		feed(h, next)
	}
}

var errLookup = errors.New("lookup unavailable")

// fakeLookup is an in-memory Lookup that records every call.
type fakeLookup struct {
	mu            sync.Mutex
	regions       []string
	localities    map[string][]string
	fail          bool
	regionCalls   int
	localityCalls []string
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		regions: []string{"SP", "RJ"},
		localities: map[string][]string{
			"SP": {"Campinas", "Santos"},
			"RJ": {"Niterói", "Petrópolis", "Rio de Janeiro"},
		},
	}
}

func (f *fakeLookup) RegionCodes(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regionCalls++
	if f.fail {
		return nil, errLookup
	}
	return f.regions, nil
}

func (f *fakeLookup) LocalityNames(_ context.Context, uf string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.localityCalls = append(f.localityCalls, uf)
	if f.fail {
		return nil, errLookup
	}
	return f.localities[uf], nil
}
