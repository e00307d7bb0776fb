package ui

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/message"

	"buzzboard/internal/dashboard"
	"buzzboard/internal/logging"
	"buzzboard/internal/questionnaire"
	"buzzboard/internal/recommend"
)

// Page identifies which screen the planner shows.
type Page int

const (
	PageWizard Page = iota
	PageDashboard
)

// PlannerOptions configures a PlannerModel. Zero values pick the defaults.
type PlannerOptions struct {
	Schema     questionnaire.Schema
	Rules      *recommend.Rules
	Printer    *message.Printer
	Renderer   Renderer
	Styles     *Styles
	Logger     *zap.Logger
	OnComplete func(questionnaire.AnswerRecord, recommend.Output)
}

// PlannerModel is the bubbletea model for a planning session: the
// questionnaire followed by the dashboard.
type PlannerModel struct {
	opts PlannerOptions

	sessionID string
	logger    *zap.Logger
	wizard    *questionnaire.Wizard
	result    *planResult
	cursor    int
	status    string

	page      Page
	dashboard *dashboard.Dashboard
	dashPage  DashboardPageModel

	progress progress.Model
	help     help.Model
	keys     keyMap
	styles   Styles

	width  int
	height int
}

// planResult is filled by the wizard's completion handler. It is shared by
// pointer so copies of the model made by bubbletea see the same session.
type planResult struct {
	record questionnaire.AnswerRecord
	out    recommend.Output
}

// NewPlannerModel creates a planner positioned at the first question.
func NewPlannerModel(opts PlannerOptions) (PlannerModel, error) {
	if opts.Schema == nil {
		opts.Schema = questionnaire.DefaultSchema()
	}
	if opts.Rules == nil {
		opts.Rules = recommend.DefaultRules()
	}
	if opts.Printer == nil {
		opts.Printer = dashboard.Printer("")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	m := PlannerModel{
		opts:     opts,
		progress: progress.New(progress.WithGradient(string(styles.Theme.Primary), string(styles.Theme.Accent)), progress.WithoutPercentage()),
		help:     help.New(),
		keys:     newKeyMap(),
		styles:   styles,
		dashPage: NewDashboardPageModel(opts.Renderer, styles),
		width:    80,
		height:   24,
	}
	if err := m.startSession(); err != nil {
		return PlannerModel{}, err
	}
	return m, nil
}

// startSession discards any previous answers and begins a fresh questionnaire.
func (m *PlannerModel) startSession() error {
	m.sessionID = uuid.NewString()
	m.logger = logging.WithSession(logging.For(m.opts.Logger, logging.CategoryUI), m.sessionID)

	result := &planResult{}
	w, err := questionnaire.New(m.opts.Schema,
		questionnaire.WithLogger(logging.WithSession(logging.For(m.opts.Logger, logging.CategoryWizard), m.sessionID)),
		questionnaire.WithCompletionHandler(m.completionHandler(result)),
	)
	if err != nil {
		return fmt.Errorf("failed to start questionnaire: %w", err)
	}
	m.wizard = w
	m.result = result
	m.cursor = 0
	m.status = ""
	m.page = PageWizard
	m.dashboard = nil
	m.logger.Info("planning session started", zap.Int("steps", w.StepCount()))
	return nil
}

// Init initializes the model.
func (m PlannerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PlannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(10, msg.Width-8)
		m.dashPage.SetSize(msg.Width, max(1, msg.Height-3))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.logger.Info("planner closed", zap.Int("page", int(m.page)))
			return m, tea.Quit
		}
		if m.page == PageDashboard {
			return m.updateDashboard(msg)
		}
		return m.updateWizard(msg)
	}

	if m.page == PageDashboard {
		var cmd tea.Cmd
		m.dashPage, cmd = m.dashPage.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m PlannerModel) updateWizard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.wizard.CurrentStep()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(step.Options)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		idx := m.cursor
		if s := msg.String(); s != " " {
			idx = int(s[0] - '1')
		}
		if idx >= 0 && idx < len(step.Options) {
			m.cursor = idx
			m.choose(step.Options[idx])
		}
	case key.Matches(msg, m.keys.Submit):
		m.choose(step.Options[m.cursor])
		return m.advance()
	case key.Matches(msg, m.keys.Next):
		return m.advance()
	case key.Matches(msg, m.keys.Back):
		if err := m.wizard.Retreat(); err == nil {
			m.status = ""
			m.syncCursor()
		}
	}
	return m, nil
}

// completionHandler derives the recommendation for the finished record and
// hands both to OnComplete.
func (m *PlannerModel) completionHandler(result *planResult) func(questionnaire.AnswerRecord) {
	rules := m.opts.Rules
	onComplete := m.opts.OnComplete
	log := logging.WithSession(logging.For(m.opts.Logger, logging.CategoryRecommend), m.sessionID)
	return func(record questionnaire.AnswerRecord) {
		out := rules.Derive(record)
		log.Info("recommendation derived",
			zap.Int64("estimated_budget", out.EstimatedBudget),
			zap.Int64("estimated_return", out.EstimatedReturn),
			zap.String("channel", out.RecommendedChannel),
			zap.String("rule", out.MatchedRule))
		result.record, result.out = record, out
		if onComplete != nil {
			onComplete(record.Clone(), out)
		}
	}
}

func (m *PlannerModel) choose(value string) {
	if err := m.wizard.Select(value); err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}

func (m PlannerModel) advance() (tea.Model, tea.Cmd) {
	_, done, err := m.wizard.Advance()
	if err != nil {
		if errors.Is(err, questionnaire.ErrCannotAdvance) {
			m.status = "Choose an option to continue."
		} else {
			m.status = err.Error()
		}
		return m, nil
	}
	m.status = ""
	if !done {
		m.syncCursor()
		return m, nil
	}

	m.dashboard = dashboard.Build(m.result.record, m.result.out, m.opts.Printer)
	if err := m.dashPage.SetDashboard(m.dashboard, m.wizard.Schema()); err != nil {
		m.logger.Warn("markdown rendering failed, showing raw report", zap.Error(err))
	}
	m.page = PageDashboard
	return m, nil
}

func (m PlannerModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Replan) {
		if err := m.startSession(); err != nil {
			m.status = err.Error()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.dashPage, cmd = m.dashPage.Update(msg)
	return m, cmd
}

// syncCursor points the cursor at the current step's answer, if any.
func (m *PlannerModel) syncCursor() {
	m.cursor = 0
	if v, ok := m.wizard.Selected(); ok {
		if idx := m.wizard.CurrentStep().OptionIndex(v); idx >= 0 {
			m.cursor = idx
		}
	}
}

// View renders the current page.
func (m PlannerModel) View() string {
	if m.page == PageDashboard {
		header := m.styles.Header.Render(" Your Personalized Dashboard ") + "  " +
			m.styles.Subtitle.Render(m.dashboard.Headline())
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			m.dashPage.View(),
			m.help.View(dashboardKeys{m.keys}),
		)
	}
	return m.wizardView()
}

func (m PlannerModel) wizardView() string {
	w := m.wizard
	step := w.CurrentStep()
	fraction := w.ProgressFraction()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Plan with Us") + "\n")
	sb.WriteString(m.styles.Subtitle.Render("Answer a few questions to get your personalized influencer marketing strategy") + "\n\n")

	stepLabel := fmt.Sprintf("Step %d of %d", w.CurrentIndex()+1, w.StepCount())
	pct := fmt.Sprintf("%d%% Complete", int(math.Round(fraction*100)))
	gap := max(1, m.progress.Width-lipgloss.Width(stepLabel)-lipgloss.Width(pct))
	sb.WriteString(m.styles.Muted.Render(stepLabel+strings.Repeat(" ", gap)+pct) + "\n")
	sb.WriteString(m.progress.ViewAs(fraction) + "\n\n")

	sb.WriteString(m.styles.Bold.Render(step.Title) + "\n\n")
	selected, _ := w.Selected()
	for i, opt := range step.Options {
		mark := "( )"
		if opt == selected {
			mark = "(•)"
		}
		line := fmt.Sprintf("%d. %s %s", i+1, mark, opt)
		switch {
		case i == m.cursor:
			sb.WriteString(m.styles.OptionCursor.Render("> "+line) + "\n")
		case opt == selected:
			sb.WriteString(m.styles.OptionSelected.Render("  "+line) + "\n")
		default:
			sb.WriteString(m.styles.Option.Render("  "+line) + "\n")
		}
	}
	sb.WriteString("\n")

	if m.status != "" {
		sb.WriteString(m.styles.Warning.Render(m.status) + "\n")
	}

	keys := m.keys
	keys.Back.SetEnabled(w.CurrentIndex() > 0)
	keys.Next.SetEnabled(w.CanAdvance())
	if w.IsLastStep() {
		keys.Next.SetHelp("→", "generate dashboard")
		keys.Submit.SetHelp("enter", "choose & generate dashboard")
	}
	sb.WriteString(m.help.View(wizardKeys{keys}))

	return m.styles.Content.Render(sb.String())
}

// Page reports the page currently shown.
func (m PlannerModel) Page() Page { return m.page }

// Wizard exposes the session's questionnaire state.
func (m PlannerModel) Wizard() *questionnaire.Wizard { return m.wizard }

// Dashboard returns the report once the questionnaire completed.
func (m PlannerModel) Dashboard() *dashboard.Dashboard { return m.dashboard }

// SessionID identifies the current planning session in logs.
func (m PlannerModel) SessionID() string { return m.sessionID }

// Cursor is the highlighted option index on the current step.
func (m PlannerModel) Cursor() int { return m.cursor }

// Status is the last warning shown under the options.
func (m PlannerModel) Status() string { return m.status }
