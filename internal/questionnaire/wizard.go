package questionnaire

import (
	"fmt"

	"go.uber.org/zap"
)

// WizardState is a snapshot of the wizard position and answers.
type WizardState struct {
	CurrentStepIndex int          `json:"current_step_index" yaml:"current_step_index"`
	Answers          AnswerRecord `json:"answers" yaml:"answers"`
}

// Wizard walks a schema one step at a time. A transition away from step i only
// happens when step i has an answer, so every step up to the current index is
// answered and completion always emits a full record.
//
// A Wizard belongs to a single session and is not safe for concurrent use.
type Wizard struct {
	steps      Schema
	state      WizardState
	completed  bool
	onComplete func(AnswerRecord)
	logger     *zap.Logger
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithCompletionHandler registers fn to receive the finished record. It runs
// once, when Advance completes the last step.
func WithCompletionHandler(fn func(AnswerRecord)) Option {
	return func(w *Wizard) {
		w.onComplete = fn
	}
}

// WithLogger attaches a logger for transition events.
func WithLogger(l *zap.Logger) Option {
	return func(w *Wizard) {
		if l != nil {
			w.logger = l
		}
	}
}

// New validates schema and returns a wizard at the first step with no answers.
func New(schema Schema, opts ...Option) (*Wizard, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	w := &Wizard{
		steps: schema.Clone(),
		state: WizardState{
			CurrentStepIndex: 0,
			Answers:          make(AnswerRecord, len(schema)),
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Select records value as the answer to the current step.
func (w *Wizard) Select(value string) error {
	if w.completed {
		return ErrCompleted
	}
	step := w.CurrentStep()
	if !step.HasOption(value) {
		w.logger.Warn("rejected selection",
			zap.String("step", string(step.Key)),
			zap.String("value", value))
		return fmt.Errorf("%w: %q is not an option for %s", ErrInvalidSelection, value, step.Key)
	}
	if w.state.Answers[step.Key] == value {
		return nil
	}
	w.state.Answers[step.Key] = value
	w.logger.Debug("answer selected",
		zap.String("step", string(step.Key)),
		zap.String("value", value))
	return nil
}

// CanAdvance reports whether the current step has an answer.
func (w *Wizard) CanAdvance() bool {
	if w.completed {
		return false
	}
	return w.state.Answers.IsSet(w.CurrentStep().Key)
}

// Advance moves to the next step. On the last step it completes the
// questionnaire and returns the finished record with done set to true.
func (w *Wizard) Advance() (record AnswerRecord, done bool, err error) {
	if w.completed {
		return nil, false, ErrCompleted
	}
	step := w.CurrentStep()
	if !w.CanAdvance() {
		return nil, false, fmt.Errorf("%w: %s", ErrCannotAdvance, step.Key)
	}

	if w.state.CurrentStepIndex < len(w.steps)-1 {
		w.state.CurrentStepIndex++
		w.logger.Debug("advanced",
			zap.String("from", string(step.Key)),
			zap.Int("index", w.state.CurrentStepIndex))
		return nil, false, nil
	}

	w.completed = true
	record = w.state.Answers.Clone()
	w.logger.Info("questionnaire completed", zap.Int("answers", len(record)))
	if w.onComplete != nil {
		w.onComplete(record.Clone())
	}
	return record, true, nil
}

// Retreat moves back one step. Answers are kept.
func (w *Wizard) Retreat() error {
	if w.completed {
		return ErrCompleted
	}
	if w.state.CurrentStepIndex == 0 {
		return ErrAtFirstStep
	}
	w.state.CurrentStepIndex--
	w.logger.Debug("retreated", zap.Int("index", w.state.CurrentStepIndex))
	return nil
}

// ProgressFraction is (index+1)/stepCount, in (0, 1].
func (w *Wizard) ProgressFraction() float64 {
	return float64(w.state.CurrentStepIndex+1) / float64(len(w.steps))
}

// CurrentStep returns the step at the current index.
func (w *Wizard) CurrentStep() StepDefinition {
	return w.steps[w.state.CurrentStepIndex]
}

func (w *Wizard) CurrentIndex() int { return w.state.CurrentStepIndex }

func (w *Wizard) StepCount() int { return len(w.steps) }

// IsLastStep reports whether the current step is the final one.
func (w *Wizard) IsLastStep() bool {
	return w.state.CurrentStepIndex == len(w.steps)-1
}

// Selected returns the current step's answer.
func (w *Wizard) Selected() (string, bool) {
	v, ok := w.state.Answers[w.CurrentStep().Key]
	return v, ok && v != ""
}

// Answers returns a copy of the answers collected so far.
func (w *Wizard) Answers() AnswerRecord {
	return w.state.Answers.Clone()
}

func (w *Wizard) Completed() bool { return w.completed }

// State returns a copy of the current wizard state.
func (w *Wizard) State() WizardState {
	return WizardState{
		CurrentStepIndex: w.state.CurrentStepIndex,
		Answers:          w.state.Answers.Clone(),
	}
}

// Schema returns a copy of the steps the wizard walks.
func (w *Wizard) Schema() Schema {
	return w.steps.Clone()
}
