package ui

import (
	"strings"

	"ecoleta/internal/jsonutil"
	"ecoleta/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	RegionPlaceholder   = "Selecione um Estado..."
	LocalityPlaceholder = "Selecione uma Cidade..."

	homeTitle       = "Seu marketplace de coleta de resíduos."
	homeDescription = "Ajudamos pessoas a encontrarem pontos de coleta de forma eficiente."
	submitLabel     = "Entrar"
)

// Focus IDs on the home screen, in tab order.
const (
	focusRegion   = "uf"
	focusLocality = "city"
	focusSubmit   = "submit"
)

type homeKeys struct {
	Next key.Binding
	Prev key.Binding
	Open key.Binding
}

var homeKeyMap = homeKeys{
	Next: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
	Prev: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
	Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
}

// HomeView is the location picker screen. It owns the four pieces of picker
// state: loaded region codes, loaded locality names and the two selections.
type HomeView struct {
	Regions          []string
	Localities       []string
	SelectedRegion   string
	SelectedLocality string

	lookup           Lookup
	logger           *zap.Logger
	focus            *FocusManager
	spinner          spinner.Model
	pending          int // fetches in flight
	regionsRequested bool
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// NewHomeView creates the picker. Regions are fetched by Init.
func NewHomeView(lookup Lookup, logger *zap.Logger) *HomeView {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary))

	focus := NewFocusManager(focusRegion, focusLocality, focusSubmit)
	focus.OnChange = func(from, to string) {
		logger.Debug("focus", zap.String("from", from), zap.String("to", to))
	}

	return &HomeView{
		SelectedRegion:   Unset,
		SelectedLocality: Unset,
		lookup:           lookup,
		logger:           logger,
		focus:            focus,
		spinner:          s,
	}
}

// Init implements View. The region list is requested once per HomeView.
func (h *HomeView) Init() tea.Cmd {
	if h.regionsRequested {
		return nil
	}
	h.regionsRequested = true
	return h.startFetch(loadRegionsCmd(h.lookup))
}

// Loading reports whether any fetch is in flight.
func (h *HomeView) Loading() bool {
	return h.pending > 0
}

// Focused returns the focus ID of the active control.
func (h *HomeView) Focused() string {
	return h.focus.Current
}

// KeyBindings lists the screen-local keys for the help bar.
func (h *HomeView) KeyBindings() []key.Binding {
	return []key.Binding{homeKeyMap.Next, homeKeyMap.Prev, homeKeyMap.Open}
}

// HandleSelectRegion stores v as the selected region. When the stored value
// changes to something other than Unset, the returned command fetches that
// region's localities.
func (h *HomeView) HandleSelectRegion(v any) tea.Cmd {
	uf := jsonutil.ToString(v)
	changed := uf != h.SelectedRegion
	h.SelectedRegion = uf
	h.logger.Debug("region selected", zap.String("uf", uf), zap.Bool("changed", changed))
	if !changed || uf == Unset {
		return nil
	}
	return h.startFetch(loadLocalitiesCmd(h.lookup, uf))
}

// HandleSelectLocality stores v as the selected locality.
func (h *HomeView) HandleSelectLocality(v any) tea.Cmd {
	city := jsonutil.ToString(v)
	h.SelectedLocality = city
	h.logger.Debug("locality selected", zap.String("city", city))
	return nil
}

// HandleNavigate hands both selections, unchanged, to the navigator.
// Unset values are passed through; the Points screen deals with them.
func (h *HomeView) HandleNavigate() tea.Cmd {
	params := map[string]string{
		"uf":   h.SelectedRegion,
		"city": h.SelectedLocality,
	}
	h.logger.Info("navigate", zap.String("route", ModePoints.String()),
		zap.String("uf", params["uf"]), zap.String("city", params["city"]))
	return func() tea.Msg {
		return NavigateMsg{Route: ModePoints, Params: params}
	}
}

func (h *HomeView) startFetch(load tea.Cmd) tea.Cmd {
	h.pending++
	if h.pending == 1 {
		return tea.Batch(load, h.spinner.Tick)
	}
	return load
}

func (h *HomeView) finishFetch() {
	if h.pending > 0 {
		h.pending--
	}
}

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case RegionsLoadedMsg:
		h.finishFetch()
		if msg.Err != nil {
			h.logger.Warn("load regions failed", zap.Error(msg.Err))
			return h, nil
		}
		h.Regions = msg.Codes
		h.logger.Debug("regions loaded", zap.Int("count", len(msg.Codes)))
		return h, nil

	case LocalitiesLoadedMsg:
		h.finishFetch()
		if msg.Err != nil {
			h.logger.Warn("load localities failed", zap.String("uf", msg.Region), zap.Error(msg.Err))
			return h, nil
		}
		if msg.Region != h.SelectedRegion {
			h.logger.Debug("localities arrived for a previous region",
				zap.String("uf", msg.Region), zap.String("selected", h.SelectedRegion))
		}
		h.Localities = msg.Names
		return h, nil

	case SelectionMsg:
		switch msg.Field {
		case FieldRegion:
			return h, h.HandleSelectRegion(msg.Value)
		case FieldLocality:
			return h, h.HandleSelectLocality(msg.Value)
		}
		return h, nil

	case spinner.TickMsg:
		if h.Loading() {
			var cmd tea.Cmd
			h.spinner, cmd = h.spinner.Update(msg)
			return h, cmd
		}
		return h, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, homeKeyMap.Next):
			h.focus.Next()
		case key.Matches(msg, homeKeyMap.Prev):
			h.focus.Prev()
		case key.Matches(msg, homeKeyMap.Open):
			return h, h.activate()
		}
	}
	return h, nil
}

// activate acts on the focused control: selectors open a picker, submit navigates.
func (h *HomeView) activate() tea.Cmd {
	var open OpenSelectorMsg
	switch h.focus.Current {
	case focusRegion:
		open = OpenSelectorMsg{
			Field:       FieldRegion,
			Placeholder: RegionPlaceholder,
			Options:     h.Regions,
			Current:     h.SelectedRegion,
		}
	case focusLocality:
		open = OpenSelectorMsg{
			Field:       FieldLocality,
			Placeholder: LocalityPlaceholder,
			Options:     h.Localities,
			Current:     h.SelectedLocality,
		}
	case focusSubmit:
		return h.HandleNavigate()
	default:
		return nil
	}
	return func() tea.Msg { return open }
}

// View implements View.
func (h *HomeView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Logo.Render("♻ Ecoleta") + "\n")
	b.WriteString(Styles.Title.Render(homeTitle) + "\n")
	b.WriteString(Styles.Description.Render(homeDescription) + "\n\n")

	b.WriteString(h.renderSelect(focusRegion, RegionPlaceholder, h.SelectedRegion, len(h.Regions)) + "\n")
	b.WriteString(h.renderSelect(focusLocality, LocalityPlaceholder, h.SelectedLocality, len(h.Localities)) + "\n")

	button := Styles.Button
	if h.focus.Is(focusSubmit) {
		button = Styles.ButtonFocused
	}
	b.WriteString(button.Render(Styles.ButtonIcon.Render("→")+"  "+submitLabel) + "\n")

	if h.Loading() {
		b.WriteString(h.spinner.View() + Styles.Hint.Render(" carregando…") + "\n")
	}
	return b.String()
}

func (h *HomeView) renderSelect(id, placeholder, value string, count int) string {
	style := Styles.Select
	if h.focus.Is(id) {
		style = Styles.SelectFocused
	}
	// room for the border and the " ▾" marker
	inner := style.GetWidth() - style.GetHorizontalPadding() - 4

	var label string
	switch {
	case value != Unset:
		label = textutil.Truncate(value, inner)
	case count == 0:
		label = Styles.Placeholder.Render(textutil.Truncate(placeholder, inner-8)) + Styles.Empty.Render(" (vazio)")
	default:
		label = Styles.Placeholder.Render(textutil.Truncate(placeholder, inner))
	}
	return style.Render(label + " ▾")
}
