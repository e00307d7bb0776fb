package dashboard

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	q "buzzboard/internal/questionnaire"
	"buzzboard/internal/recommend"
)

func sampleDashboard(t *testing.T) *Dashboard {
	t.Helper()
	answers := q.AnswerRecord{
		q.KeyBusinessType:    "Startup",
		q.KeyProductCategory: "SaaS",
		q.KeyBudget:          "$5K - $15K",
		q.KeyDuration:        "1-3 Months",
		q.KeyAudience:        "Millennials (25-40)",
		q.KeyGoal:            "Lead Generation",
	}
	return Build(answers, recommend.Derive(answers), Printer("en-US"))
}

func TestBuild_Metrics(t *testing.T) {
	d := sampleDashboard(t)

	want := map[string]string{
		"Expected ROI":         "+35%",
		"Projected Revenue":    "$3,500",
		"Estimated Budget":     "$10,000",
		"Recommended Platform": recommend.ChannelYouTube,
		"Campaign Duration":    "1-3 Months",
	}
	require.Len(t, d.Metrics, len(want))
	for _, m := range d.Metrics {
		assert.Equal(t, want[m.Label], m.Value, m.Label)
	}
	assert.Equal(t, "Insights for your Startup in SaaS", d.Headline())
}

func TestBuild_FlagsRecommendedPlatform(t *testing.T) {
	d := sampleDashboard(t)

	var recommended []string
	for _, p := range d.Platforms {
		if p.Recommended {
			recommended = append(recommended, p.Platform)
		}
	}
	assert.Equal(t, []string{recommend.ChannelYouTube}, recommended)
	assert.False(t, basePlatforms[2].Recommended, "base table must stay untouched")
}

func TestBuild_InsightsMentionAnswers(t *testing.T) {
	d := sampleDashboard(t)
	assert.Contains(t, d.Opportunities[0].Detail, "YouTube")
	assert.Contains(t, d.Opportunities[1].Detail, "SaaS content is performing 23% above average")
	assert.Contains(t, d.Considerations[0].Detail, "SaaS space")
	require.Len(t, d.Roadmap, 4)
	assert.Equal(t, "Research & Planning", d.Roadmap[0].Title)
}

func TestPrinter_FallsBackOnBadLocale(t *testing.T) {
	d := Build(q.AnswerRecord{}, recommend.Output{}, Printer("not a locale!"))
	assert.Equal(t, "$150,000", d.Money(150000))
	assert.Equal(t, "1,234,567", d.Number(1234567))
}

func TestRenderMarkdown(t *testing.T) {
	md := RenderMarkdown(sampleDashboard(t))

	for _, want := range []string{
		"# Your Personalized Dashboard",
		"| Projected Revenue | $3,500 |",
		"| Month 3 | 250% | 4,100 | 78,000 |",
		"**YouTube** (recommended)",
		"- 25-34: 40%",
		"4. **Analysis & Scale** (Week 9-10)",
	} {
		assert.Contains(t, md, want)
	}
	assert.NotContains(t, md, "Month 4", "1-3 month campaigns project three months")
}

func TestWrite(t *testing.T) {
	d := sampleDashboard(t)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, d, FormatJSON))

		var decoded struct {
			Recommendation recommend.Output `json:"recommendation"`
			Answers        map[string]string
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, int64(3500), decoded.Recommendation.EstimatedReturn)
		assert.Equal(t, "SaaS", decoded.Answers["productCategory"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, d, FormatYAML))

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		rec := decoded["recommendation"].(map[string]any)
		assert.Equal(t, "YouTube", rec["recommended_channel"])
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, d, FormatMarkdown))
		assert.True(t, strings.HasPrefix(buf.String(), "# Your Personalized Dashboard"))
	})
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatMarkdown, "MD": FormatMarkdown, "json": FormatJSON, "yml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
