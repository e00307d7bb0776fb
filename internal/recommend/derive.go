package recommend

import (
	"math"

	"buzzboard/internal/questionnaire"
)

// Output is the derived recommendation for one completed answer record.
type Output struct {
	EstimatedBudget    int64             `yaml:"estimated_budget" json:"estimated_budget"`
	EstimatedReturn    int64             `yaml:"estimated_return" json:"estimated_return"`
	RecommendedChannel string            `yaml:"recommended_channel" json:"recommended_channel"`
	ROIPercent         int64             `yaml:"roi_percent" json:"roi_percent"`
	MatchedRule        string            `yaml:"matched_rule,omitempty" json:"matched_rule,omitempty"`
	CampaignMonths     int               `yaml:"campaign_months" json:"campaign_months"`
	Trajectory         []TrajectoryPoint `yaml:"trajectory" json:"trajectory"`
}

// Derive applies the default rules.
func Derive(answers questionnaire.AnswerRecord) Output {
	return DefaultRules().Derive(answers)
}

// Derive maps a completed answer record to an Output. It never fails: unknown
// budget, duration or channel inputs fall back to the configured defaults.
// Rules are expected to have passed Validate, which bounds the multiplier so
// the return fits in an int64.
//
// The return estimate is rounded with math.Round (half away from zero).
func (r *Rules) Derive(answers questionnaire.AnswerRecord) Output {
	budget := r.Budget(answers.Get(questionnaire.KeyBudget))
	ret := int64(math.Round(float64(budget) * r.ReturnMultiplier))
	channel, rule := r.Channel(answers)
	months := r.Months(answers.Get(questionnaire.KeyDuration))

	out := Output{
		EstimatedBudget:    budget,
		EstimatedReturn:    ret,
		RecommendedChannel: channel,
		MatchedRule:        rule,
		CampaignMonths:     months,
		Trajectory:         r.Trajectory(months),
	}
	if budget != 0 {
		out.ROIPercent = int64(math.Round(float64(ret) / float64(budget) * 100))
	}
	return out
}

// Budget returns the midpoint for a budget option, or DefaultBudget.
func (r *Rules) Budget(option string) int64 {
	for _, b := range r.BudgetBands {
		if b.Option == option {
			return b.Midpoint
		}
	}
	return r.DefaultBudget
}

// Channel returns the first matching rule's channel and name. When no rule
// matches it returns DefaultChannel and an empty rule name.
func (r *Rules) Channel(answers questionnaire.AnswerRecord) (channel, rule string) {
	for _, c := range r.ChannelRules {
		if c.Matches(answers) {
			return c.Channel, c.Name
		}
	}
	return r.DefaultChannel, ""
}

// Months returns the campaign length for a duration option, or DefaultMonths.
func (r *Rules) Months(option string) int {
	for _, d := range r.DurationBands {
		if d.Option == option {
			return d.Months
		}
	}
	return r.DefaultMonths
}

// Trajectory returns the first months points of the baseline curve.
func (r *Rules) Trajectory(months int) []TrajectoryPoint {
	if months > len(r.Baseline) {
		months = len(r.Baseline)
	}
	if months < 0 {
		months = 0
	}
	out := make([]TrajectoryPoint, months)
	copy(out, r.Baseline[:months])
	return out
}
