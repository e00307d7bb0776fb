package dashboard

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders the dashboard as a markdown report.
func RenderMarkdown(d *Dashboard) string {
	var sb strings.Builder

	sb.WriteString("# Your Personalized Dashboard\n\n")
	sb.WriteString(d.Headline() + "\n\n")

	sb.WriteString("## Key Metrics\n\n")
	sb.WriteString("| Metric | Value |\n|---|---|\n")
	for _, m := range d.Metrics {
		fmt.Fprintf(&sb, "| %s | %s |\n", m.Label, m.Value)
	}
	sb.WriteString("\n")

	sb.WriteString("## Predicted Trends\n\n")
	sb.WriteString("| Month | ROI | Engagement | Reach |\n|---|---|---|---|\n")
	for _, p := range d.Output.Trajectory {
		fmt.Fprintf(&sb, "| Month %d | %d%% | %s | %s |\n",
			p.Month, p.ROI, d.Number(int64(p.Engagement)), d.Number(p.Reach))
	}
	sb.WriteString("\n")

	sb.WriteString("### Platform Performance\n\n")
	sb.WriteString("| Platform | Match | Audience | Cost |\n|---|---|---|---|\n")
	for _, ps := range d.Platforms {
		name := ps.Platform
		if ps.Recommended {
			name = "**" + name + "** (recommended)"
		}
		fmt.Fprintf(&sb, "| %s | %d%% | %.1fM | %s |\n", name, ps.Performance, ps.AudienceM, d.Money(ps.Cost))
	}
	sb.WriteString("\n")

	sb.WriteString("### Audience Demographics\n\n")
	for _, a := range d.Audience {
		fmt.Fprintf(&sb, "- %s: %d%%\n", a.Band, a.Percent)
	}
	sb.WriteString("\n")

	sb.WriteString("## Pros & Cons\n\n### Opportunities\n\n")
	writeInsights(&sb, d.Opportunities)
	sb.WriteString("### Considerations\n\n")
	writeInsights(&sb, d.Considerations)

	sb.WriteString("## Campaign Roadmap\n\n")
	for i, ph := range d.Roadmap {
		fmt.Fprintf(&sb, "%d. **%s** (%s)\n", i+1, ph.Title, ph.Window)
		for _, task := range ph.Tasks {
			fmt.Fprintf(&sb, "   - %s\n", task)
		}
	}

	return sb.String()
}

func writeInsights(sb *strings.Builder, items []Insight) {
	for _, it := range items {
		fmt.Fprintf(sb, "- **%s**: %s\n", it.Title, it.Detail)
	}
	sb.WriteString("\n")
}
