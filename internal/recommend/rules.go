// Package recommend derives campaign recommendations from a completed
// questionnaire. Derivation is a deterministic lookup over ordered rule tables;
// every input maps to an output, with explicit defaults for unknown values.
package recommend

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"buzzboard/internal/questionnaire"
)

// Channel names used by the default rules.
const (
	ChannelTikTok    = "TikTok"
	ChannelYouTube   = "YouTube"
	ChannelInstagram = "Instagram"
	ChannelTwitter   = "Twitter"
)

const (
	DefaultReturnMultiplier = 0.35
	DefaultBudgetMidpoint   = 10000
	DefaultChannel          = ChannelInstagram
	DefaultCampaignMonths   = 6
)

// BudgetBand maps a budget option to its representative midpoint.
type BudgetBand struct {
	Option   string `yaml:"option" json:"option"`
	Midpoint int64  `yaml:"midpoint" json:"midpoint"`
}

// ChannelRule matches when the answer for Key is one of Values.
type ChannelRule struct {
	Name    string                  `yaml:"name" json:"name"`
	Key     questionnaire.AnswerKey `yaml:"key" json:"key"`
	Values  []string                `yaml:"values" json:"values"`
	Channel string                  `yaml:"channel" json:"channel"`
}

// Matches reports whether answers satisfy the rule.
func (r ChannelRule) Matches(answers questionnaire.AnswerRecord) bool {
	got := answers.Get(r.Key)
	for _, v := range r.Values {
		if got == v {
			return true
		}
	}
	return false
}

// DurationBand maps a duration option to a campaign length in months.
type DurationBand struct {
	Option string `yaml:"option" json:"option"`
	Months int    `yaml:"months" json:"months"`
}

// TrajectoryPoint is one month of the projected campaign curve.
type TrajectoryPoint struct {
	Month      int   `yaml:"month" json:"month"`
	ROI        int   `yaml:"roi" json:"roi"`
	Engagement int   `yaml:"engagement" json:"engagement"`
	Reach      int64 `yaml:"reach" json:"reach"`
}

// Rules is the full parameter set for Derive. Budget bands and channel rules
// are evaluated in order; the first match wins.
type Rules struct {
	BudgetBands      []BudgetBand      `yaml:"budget_bands" json:"budget_bands"`
	DefaultBudget    int64             `yaml:"default_budget" json:"default_budget"`
	ReturnMultiplier float64           `yaml:"return_multiplier" json:"return_multiplier"`
	ChannelRules     []ChannelRule     `yaml:"channel_rules" json:"channel_rules"`
	DefaultChannel   string            `yaml:"default_channel" json:"default_channel"`
	DurationBands    []DurationBand    `yaml:"duration_bands" json:"duration_bands"`
	DefaultMonths    int               `yaml:"default_months" json:"default_months"`
	Baseline         []TrajectoryPoint `yaml:"baseline" json:"baseline"`
}

// DefaultRules returns the reference parameters.
func DefaultRules() *Rules {
	return &Rules{
		BudgetBands: []BudgetBand{
			{Option: "$1K - $5K", Midpoint: 3000},
			{Option: "$5K - $15K", Midpoint: 10000},
			{Option: "$15K - $50K", Midpoint: 32000},
			{Option: "$50K - $100K", Midpoint: 75000},
			{Option: "$100K+", Midpoint: 150000},
		},
		DefaultBudget:    DefaultBudgetMidpoint,
		ReturnMultiplier: DefaultReturnMultiplier,
		ChannelRules: []ChannelRule{
			{
				Name:    "gen-z-audience",
				Key:     questionnaire.KeyAudience,
				Values:  []string{"Gen Z (16-24)"},
				Channel: ChannelTikTok,
			},
			{
				Name:    "tech-products",
				Key:     questionnaire.KeyProductCategory,
				Values:  []string{"Tech", "SaaS"},
				Channel: ChannelYouTube,
			},
			{
				Name:    "lifestyle-products",
				Key:     questionnaire.KeyProductCategory,
				Values:  []string{"Fashion", "Beauty"},
				Channel: ChannelInstagram,
			},
		},
		DefaultChannel: DefaultChannel,
		DurationBands: []DurationBand{
			{Option: "1 Week", Months: 1},
			{Option: "2-4 Weeks", Months: 1},
			{Option: "1-3 Months", Months: 3},
			{Option: "3-6 Months", Months: 6},
			{Option: "6+ Months", Months: 6},
		},
		DefaultMonths: DefaultCampaignMonths,
		Baseline: []TrajectoryPoint{
			{Month: 1, ROI: 120, Engagement: 2500, Reach: 45000},
			{Month: 2, ROI: 180, Engagement: 3200, Reach: 62000},
			{Month: 3, ROI: 250, Engagement: 4100, Reach: 78000},
			{Month: 4, ROI: 320, Engagement: 5500, Reach: 95000},
			{Month: 5, ROI: 410, Engagement: 6800, Reach: 115000},
			{Month: 6, ROI: 520, Engagement: 8200, Reach: 140000},
		},
	}
}

var ErrInvalidRules = errors.New("invalid recommendation rules")

// MaxReturnMultiplier caps the configured multiplier at a 10000% return.
const MaxReturnMultiplier = 100

func (r *Rules) largestMidpoint() int64 {
	largest := r.DefaultBudget
	for _, b := range r.BudgetBands {
		largest = max(largest, b.Midpoint)
	}
	return largest
}

// Validate checks the tables for values that would make derivation meaningless.
func (r *Rules) Validate() error {
	var errs []error
	switch m := r.ReturnMultiplier; {
	case math.IsNaN(m) || math.IsInf(m, 0):
		errs = append(errs, fmt.Errorf("return multiplier %v is not a finite number", m))
	case m < 0:
		errs = append(errs, fmt.Errorf("return multiplier %v is negative", m))
	case m > MaxReturnMultiplier:
		errs = append(errs, fmt.Errorf("return multiplier %v exceeds %v", m, float64(MaxReturnMultiplier)))
	default:
		if mid := r.largestMidpoint(); float64(mid)*m >= math.MaxInt64 {
			errs = append(errs, fmt.Errorf("return multiplier %v overflows the return for budget %d", m, mid))
		}
	}
	if r.DefaultBudget <= 0 {
		errs = append(errs, fmt.Errorf("default budget %d must be positive", r.DefaultBudget))
	}
	if strings.TrimSpace(r.DefaultChannel) == "" {
		errs = append(errs, errors.New("default channel is empty"))
	}
	if r.DefaultMonths <= 0 {
		errs = append(errs, fmt.Errorf("default months %d must be positive", r.DefaultMonths))
	}

	seen := make(map[string]bool, len(r.BudgetBands))
	for i, b := range r.BudgetBands {
		if b.Midpoint <= 0 {
			errs = append(errs, fmt.Errorf("budget band %d (%q): midpoint must be positive", i, b.Option))
		}
		if seen[b.Option] {
			errs = append(errs, fmt.Errorf("budget band %d: duplicate option %q", i, b.Option))
		}
		seen[b.Option] = true
	}

	for i, c := range r.ChannelRules {
		if !c.Key.Valid() {
			errs = append(errs, fmt.Errorf("channel rule %d (%s): unknown key %q", i, c.Name, c.Key))
		}
		if len(c.Values) == 0 {
			errs = append(errs, fmt.Errorf("channel rule %d (%s): no values", i, c.Name))
		}
		if strings.TrimSpace(c.Channel) == "" {
			errs = append(errs, fmt.Errorf("channel rule %d (%s): empty channel", i, c.Name))
		}
	}

	for i, d := range r.DurationBands {
		if d.Months <= 0 {
			errs = append(errs, fmt.Errorf("duration band %d (%q): months must be positive", i, d.Option))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRules, errors.Join(errs...))
	}
	return nil
}
