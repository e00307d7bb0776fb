package config

import "buzzboard/internal/recommend"

// DerivationConfig mirrors recommend.Rules so the tables can be tuned without
// a rebuild.
type DerivationConfig struct {
	BudgetBands      []recommend.BudgetBand      `yaml:"budget_bands"`
	DefaultBudget    int64                       `yaml:"default_budget"`
	ReturnMultiplier float64                     `yaml:"return_multiplier"`
	ChannelRules     []recommend.ChannelRule     `yaml:"channel_rules"`
	DefaultChannel   string                      `yaml:"default_channel"`
	DurationBands    []recommend.DurationBand    `yaml:"duration_bands"`
	DefaultMonths    int                         `yaml:"default_months"`
	Baseline         []recommend.TrajectoryPoint `yaml:"baseline"`
}

// Rules returns the recommendation rules described by the derivation section.
func (c *Config) Rules() *recommend.Rules {
	d := c.Derivation
	return &recommend.Rules{
		BudgetBands:      d.BudgetBands,
		DefaultBudget:    d.DefaultBudget,
		ReturnMultiplier: d.ReturnMultiplier,
		ChannelRules:     d.ChannelRules,
		DefaultChannel:   d.DefaultChannel,
		DurationBands:    d.DurationBands,
		DefaultMonths:    d.DefaultMonths,
		Baseline:         d.Baseline,
	}
}
