package questionnaire

import (
	"fmt"
	"strings"
)

// Run feeds answers through a fresh wizard step by step and returns the
// completed record. It goes through Select and Advance, so a missing or
// invalid answer fails exactly where an interactive session would.
func Run(schema Schema, answers AnswerRecord, opts ...Option) (AnswerRecord, error) {
	w, err := New(schema, opts...)
	if err != nil {
		return nil, err
	}
	for {
		step := w.CurrentStep()
		value, ok := answers[step.Key]
		if !ok || value == "" {
			return nil, fmt.Errorf("step %d (%s): %w (unanswered: %s)",
				w.CurrentIndex()+1, step.Key, ErrCannotAdvance, joinKeys(answers.Missing(schema)))
		}
		if err := w.Select(value); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", w.CurrentIndex()+1, step.Key, err)
		}
		record, done, err := w.Advance()
		if err != nil {
			return nil, err
		}
		if done {
			return record, nil
		}
	}
}

func joinKeys(keys []AnswerKey) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
