package questionnaire

import "errors"

var (
	// ErrInvalidSelection is returned when a value is not among the current step's options.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrCannotAdvance is returned when advancing without an answer for the current step.
	ErrCannotAdvance = errors.New("current step has no answer")
	// ErrAtFirstStep is returned when retreating from the first step.
	ErrAtFirstStep = errors.New("already at first step")
	// ErrCompleted is returned for any mutation after the questionnaire completed.
	ErrCompleted = errors.New("questionnaire already completed")

	ErrEmptySchema   = errors.New("schema has no steps")
	ErrInvalidSchema = errors.New("invalid schema")
	ErrUnknownKey    = errors.New("unknown answer key")
)
