// Package questionnaire implements the guided planning questionnaire: the step
// schema, the accumulated answers and the wizard state machine that moves
// through the steps.
package questionnaire

import (
	"errors"
	"fmt"
	"strings"
)

// AnswerKey identifies one answer field. The set of keys is closed.
type AnswerKey string

const (
	KeyBusinessType    AnswerKey = "businessType"
	KeyProductCategory AnswerKey = "productCategory"
	KeyBudget          AnswerKey = "budget"
	KeyDuration        AnswerKey = "duration"
	KeyAudience        AnswerKey = "audience"
	KeyGoal            AnswerKey = "goal"
)

// AllKeys lists every answer key in the default step order.
var AllKeys = []AnswerKey{
	KeyBusinessType,
	KeyProductCategory,
	KeyBudget,
	KeyDuration,
	KeyAudience,
	KeyGoal,
}

// Valid reports whether k is one of the known answer keys.
func (k AnswerKey) Valid() bool {
	for _, known := range AllKeys {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKey resolves a key name case-insensitively ("budget", "BUDGET", "productcategory").
func ParseKey(s string) (AnswerKey, error) {
	trimmed := strings.TrimSpace(s)
	for _, known := range AllKeys {
		if strings.EqualFold(string(known), trimmed) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// StepDefinition is one question with its closed option set.
type StepDefinition struct {
	Key     AnswerKey `yaml:"key" json:"key"`
	Title   string    `yaml:"title" json:"title"`
	Options []string  `yaml:"options" json:"options"`
}

// HasOption reports whether value is one of the step's options.
func (s StepDefinition) HasOption(value string) bool {
	for _, opt := range s.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// OptionIndex returns the position of value in the option list, or -1.
func (s StepDefinition) OptionIndex(value string) int {
	for i, opt := range s.Options {
		if opt == value {
			return i
		}
	}
	return -1
}

// Schema is the ordered list of steps.
type Schema []StepDefinition

// Validate checks that every known key appears exactly once and that each step
// has a title and a non-empty list of unique options.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return ErrEmptySchema
	}

	var errs []error
	seen := make(map[AnswerKey]bool, len(s))
	for i, step := range s {
		if !step.Key.Valid() {
			errs = append(errs, fmt.Errorf("step %d: %w: %q", i, ErrUnknownKey, step.Key))
			continue
		}
		if seen[step.Key] {
			errs = append(errs, fmt.Errorf("step %d: duplicate key %q", i, step.Key))
		}
		seen[step.Key] = true

		if strings.TrimSpace(step.Title) == "" {
			errs = append(errs, fmt.Errorf("step %d (%s): empty title", i, step.Key))
		}
		if len(step.Options) == 0 {
			errs = append(errs, fmt.Errorf("step %d (%s): no options", i, step.Key))
		}
		opts := make(map[string]bool, len(step.Options))
		for _, opt := range step.Options {
			if strings.TrimSpace(opt) == "" {
				errs = append(errs, fmt.Errorf("step %d (%s): empty option", i, step.Key))
				continue
			}
			if opts[opt] {
				errs = append(errs, fmt.Errorf("step %d (%s): duplicate option %q", i, step.Key, opt))
			}
			opts[opt] = true
		}
	}
	for _, k := range AllKeys {
		if !seen[k] {
			errs = append(errs, fmt.Errorf("missing step for key %q", k))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, errors.Join(errs...))
	}
	return nil
}

// Step returns the definition for key.
func (s Schema) Step(key AnswerKey) (StepDefinition, bool) {
	for _, step := range s {
		if step.Key == key {
			return step, true
		}
	}
	return StepDefinition{}, false
}

// Clone returns a deep copy so callers cannot mutate a wizard's schema.
func (s Schema) Clone() Schema {
	out := make(Schema, len(s))
	for i, step := range s {
		opts := make([]string, len(step.Options))
		copy(opts, step.Options)
		out[i] = StepDefinition{Key: step.Key, Title: step.Title, Options: opts}
	}
	return out
}

// DefaultSchema returns the influencer campaign planning questionnaire.
func DefaultSchema() Schema {
	return Schema{
		{
			Key:     KeyBusinessType,
			Title:   "Business Type",
			Options: []string{"Startup", "Small Business", "Enterprise", "E-commerce", "SaaS", "Agency"},
		},
		{
			Key:     KeyProductCategory,
			Title:   "Product Category",
			Options: []string{"Fashion", "Tech", "Food & Beverage", "Beauty", "Fitness", "Travel", "Gaming", "Education"},
		},
		{
			Key:     KeyBudget,
			Title:   "Budget Range",
			Options: []string{"$1K - $5K", "$5K - $15K", "$15K - $50K", "$50K - $100K", "$100K+"},
		},
		{
			Key:     KeyDuration,
			Title:   "Campaign Duration",
			Options: []string{"1 Week", "2-4 Weeks", "1-3 Months", "3-6 Months", "6+ Months"},
		},
		{
			Key:     KeyAudience,
			Title:   "Target Audience",
			Options: []string{"Gen Z (16-24)", "Millennials (25-40)", "Gen X (41-56)", "Boomers (57+)", "Mixed Demographics"},
		},
		{
			Key:     KeyGoal,
			Title:   "Primary Goal",
			Options: []string{"Brand Awareness", "Sales Increase", "Engagement", "Lead Generation", "App Downloads", "Event Promotion"},
		},
	}
}
