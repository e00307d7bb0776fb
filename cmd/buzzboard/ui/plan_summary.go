package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"buzzboard/internal/dashboard"
	"buzzboard/internal/questionnaire"
)

type summaryRow struct {
	label     string
	value     string
	highlight bool
}

// PlanSummary is the two-part card above the report: the answers in step
// order and the headline recommendation.
type PlanSummary struct {
	Answers []summaryRow
	Outcome []summaryRow
}

// NewPlanSummary numbers the answers by step and pulls the recommendation
// figures out of d. The recommended platform row is highlighted.
func NewPlanSummary(schema questionnaire.Schema, d *dashboard.Dashboard) *PlanSummary {
	s := &PlanSummary{}
	for i, step := range schema {
		s.Answers = append(s.Answers, summaryRow{
			label: fmt.Sprintf("%d. %s", i+1, step.Title),
			value: d.Answers.Get(step.Key),
		})
	}

	out := d.Output
	months := "month"
	if out.CampaignMonths != 1 {
		months = "months"
	}
	s.Outcome = []summaryRow{
		{label: "Estimated Budget", value: d.Money(out.EstimatedBudget)},
		{label: "Projected Revenue", value: d.Money(out.EstimatedReturn)},
		{label: "Expected ROI", value: fmt.Sprintf("+%d%%", out.ROIPercent)},
		{label: "Recommended Platform", value: out.RecommendedChannel, highlight: true},
		{label: "Projection", value: fmt.Sprintf("%d %s", out.CampaignMonths, months)},
	}
	return s
}

// View renders both sections with a shared label column.
func (s *PlanSummary) View(styles Styles) string {
	labelWidth := 0
	for _, rows := range [][]summaryRow{s.Answers, s.Outcome} {
		for _, r := range rows {
			labelWidth = max(labelWidth, lipgloss.Width(r.label))
		}
	}
	labelStyle := styles.Muted.Width(labelWidth + 2)

	var sb strings.Builder
	section := func(title string, rows []summaryRow) {
		if len(rows) == 0 {
			return
		}
		sb.WriteString(styles.Title.Render(title) + "\n")
		for _, r := range rows {
			value := styles.Body.Render(r.value)
			if r.highlight {
				value = styles.Success.Render("▶ " + r.value)
			}
			sb.WriteString(labelStyle.Render(r.label) + value + "\n")
		}
	}
	section("Your Answers", s.Answers)
	section("Our Recommendation", s.Outcome)
	return sb.String()
}
