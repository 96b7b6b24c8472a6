package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// RouteFactory builds the screen for a route from its navigation params.
type RouteFactory func(params map[string]string) View

// AppModel is the root model. It owns navigation (a stack of screens), the
// modal overlays above the current screen and the global key bindings.
type AppModel struct {
	Views    ViewStack
	Overlays OverlayStack
	Keys     *KeybindRegistry
	Routes   map[AppMode]RouteFactory
	ShowHelp bool

	logger *zap.Logger
	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model with the picker as the first screen.
func NewAppModel(lookup Lookup, logger *zap.Logger) *AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDescForMode("q", tea.Quit, "quit", []AppMode{ModeHome, ModePoints})
	reg.BindWithDesc("?", func() tea.Msg { return ToggleHelpMsg{} }, "help")
	reg.BindWithDescForMode("esc", func() tea.Msg { return BackMsg{} }, "back", []AppMode{ModePoints})

	a := &AppModel{
		Keys: reg,
		Routes: map[AppMode]RouteFactory{
			ModePoints: func(params map[string]string) View { return NewPointsView(params) },
		},
		ShowHelp: true,
		logger:   logger,
	}
	a.Views.Push(ModeHome, NewHomeView(lookup, logger))
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Mode returns the route of the current screen.
func (m *AppModel) Mode() AppMode {
	if top, ok := m.Views.Peek(); ok {
		return top.Route
	}
	return ModeHome
}

// Current returns the current screen's view.
func (m *AppModel) Current() View {
	if top, ok := m.Views.Peek(); ok {
		return top.View
	}
	return nil
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if v := a.Current(); v != nil {
		return v.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height

	case ToggleHelpMsg:
		a.ShowHelp = !a.ShowHelp
		return a, nil

	case OpenSelectorMsg:
		modal := NewSelectorModal(msg.Field, msg.Placeholder, msg.Options, msg.Current)
		a.Overlays.Push(Overlay{View: modal})
		return a, modal.Init()

	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil

	case RegionsLoadedMsg, LocalitiesLoadedMsg, spinner.TickMsg:
		// Loads belong to the picker even when another screen is on top.
		cmd, _ := a.Views.UpdateRoute(ModeHome, msg)
		return a, tea.Batch(cmd, a.refreshSelector())

	case SelectionMsg:
		a.Overlays.Pop()
		a.logger.Debug("selection", zap.Stringer("field", msg.Field), zap.Any("value", msg.Value))
		// forwarded to the current screen below

	case NavigateMsg:
		return a, a.navigate(msg)

	case BackMsg:
		if a.Views.Len() > 1 {
			a.Overlays.Clear()
			a.Views.Pop()
			a.logger.Debug("back", zap.String("route", a.Mode().String()))
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if cmd := a.Keys.Lookup(msg.String(), a.Mode()); cmd != nil {
			return a, cmd
		}
	}

	v := a.Current()
	if v == nil {
		return a, nil
	}
	nv, cmd := v.Update(msg)
	a.Views.Replace(nv)
	return a, cmd
}

// refreshSelector rebinds an open SelectorModal to the list the picker holds
// now, so options that arrive while it is open show up without reopening it.
func (a *appModelAdapter) refreshSelector() tea.Cmd {
	top, ok := a.Overlays.Peek()
	if !ok {
		return nil
	}
	modal, ok := top.View.(*SelectorModal)
	if !ok {
		return nil
	}
	v, ok := a.Views.Find(ModeHome)
	if !ok {
		return nil
	}
	h, ok := v.(*HomeView)
	if !ok {
		return nil
	}
	options := h.Regions
	if modal.Field() == FieldLocality {
		options = h.Localities
	}
	if slices.Equal(options, modal.Options()) {
		return nil
	}
	a.logger.Debug("selector refreshed", zap.Stringer("field", modal.Field()), zap.Int("options", len(options)))
	return modal.SetOptions(options)
}

func (a *appModelAdapter) navigate(msg NavigateMsg) tea.Cmd {
	factory, ok := a.Routes[msg.Route]
	if !ok {
		a.logger.Warn("navigate to unknown route", zap.String("route", msg.Route.String()))
		return nil
	}
	v := factory(msg.Params)
	a.Overlays.Clear()
	a.Views.Push(msg.Route, v)
	cmds := []tea.Cmd{v.Init()}
	if a.width > 0 {
		size := tea.WindowSizeMsg{Width: a.width, Height: a.height}
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	v := a.Current()
	if v == nil {
		return ""
	}
	base := v.View()
	if top, ok := a.Overlays.Peek(); ok {
		base = lipgloss.JoinVertical(lipgloss.Left, base, top.View.View())
	}
	if a.ShowHelp {
		base += "\n" + RenderKeybindHelp(a.helpBindings(), a.width)
	}
	return base
}

func (a *appModelAdapter) helpBindings() []key.Binding {
	var out []key.Binding
	if h, ok := a.Current().(interface{ KeyBindings() []key.Binding }); ok && a.Overlays.Len() == 0 {
		out = append(out, h.KeyBindings()...)
	}
	return append(out, a.Keys.Bindings(a.Mode())...)
}
