package ui

import (
	"fmt"
	"strings"

	"ecoleta/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

const labelWidth = 8

// PointsView is the navigation target. It only shows the location it was
// opened with; listing collection points is outside this app.
type PointsView struct {
	UF   string
	City string
}

// Ensure PointsView implements View.
var _ View = (*PointsView)(nil)

// NewPointsView reads the "uf" and "city" navigation params.
func NewPointsView(params map[string]string) *PointsView {
	return &PointsView{UF: params["uf"], City: params["city"]}
}

// Init implements View.
func (p *PointsView) Init() tea.Cmd { return nil }

// Update implements View. Esc is handled by the app as "back".
func (p *PointsView) Update(tea.Msg) (View, tea.Cmd) { return p, nil }

// View implements View.
func (p *PointsView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Logo.Render("Pontos de coleta") + "\n\n")
	fmt.Fprintf(&b, "%s%s\n", textutil.PadRightVisual("Estado:", labelWidth), displayValue(p.UF))
	fmt.Fprintf(&b, "%s%s\n", textutil.PadRightVisual("Cidade:", labelWidth), displayValue(p.City))
	b.WriteString("\n" + Styles.Hint.Render("Esc: voltar"))
	return b.String()
}

func displayValue(v string) string {
	if v == Unset || v == "" {
		return Styles.Empty.Render("não selecionado")
	}
	return v
}
