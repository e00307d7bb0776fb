package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"buzzboard/internal/dashboard"
	"buzzboard/internal/questionnaire"
)

// Renderer turns markdown into terminal output. *glamour.TermRenderer satisfies it.
type Renderer interface {
	Render(in string) (string, error)
}

// DashboardPageModel shows the rendered report in a scrollable viewport.
type DashboardPageModel struct {
	width    int
	height   int
	viewport viewport.Model
	renderer Renderer

	data   *dashboard.Dashboard
	schema questionnaire.Schema

	styles Styles
}

// NewDashboardPageModel creates a new dashboard page.
func NewDashboardPageModel(r Renderer, styles Styles) DashboardPageModel {
	vp := viewport.New(80, 20)
	// "b" goes back to planning on this page.
	vp.KeyMap.PageUp = key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	)
	vp.SetContent("")
	return DashboardPageModel{
		viewport: vp,
		renderer: r,
		styles:   styles,
		width:    80,
		height:   20,
	}
}

// Update scrolls the viewport.
func (m DashboardPageModel) Update(msg tea.Msg) (DashboardPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m DashboardPageModel) View() string {
	if m.data == nil {
		return m.styles.Content.Render("Complete the questionnaire to see your dashboard.")
	}
	return m.viewport.View()
}

// SetSize updates the size of the viewport.
func (m *DashboardPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
}

// SetDashboard renders d into the viewport. A renderer error falls back to the
// raw markdown so the report is never lost.
func (m *DashboardPageModel) SetDashboard(d *dashboard.Dashboard, schema questionnaire.Schema) error {
	m.data = d
	m.schema = schema

	summary := NewPlanSummary(schema, d)

	md := dashboard.RenderMarkdown(d)
	body := md
	var renderErr error
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			body = out
		} else {
			renderErr = err
		}
	}

	m.viewport.SetContent(m.styles.Content.Render(summary.View(m.styles)) + "\n" + body)
	m.viewport.GotoTop()
	return renderErr
}
