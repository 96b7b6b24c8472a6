package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Lookup is the geographic data source behind the picker.
type Lookup interface {
	RegionCodes(ctx context.Context) ([]string, error)
	LocalityNames(ctx context.Context, uf string) ([]string, error)
}

// fetchTimeout caps a single lookup; the HTTP client usually gives up first.
const fetchTimeout = 30 * time.Second

// loadRegionsCmd returns a command that fetches the region codes once.
func loadRegionsCmd(l Lookup) tea.Cmd {
	return func() tea.Msg {
		if l == nil {
			return RegionsLoadedMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		codes, err := l.RegionCodes(ctx)
		return RegionsLoadedMsg{Codes: codes, Err: err}
	}
}

// loadLocalitiesCmd returns a command that fetches the localities of uf.
// It is never cancelled by a later region change.
func loadLocalitiesCmd(l Lookup, uf string) tea.Cmd {
	return func() tea.Msg {
		if l == nil {
			return LocalitiesLoadedMsg{Region: uf}
		}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		names, err := l.LocalityNames(ctx, uf)
		return LocalitiesLoadedMsg{Region: uf, Names: names, Err: err}
	}
}
