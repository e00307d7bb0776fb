package questionnaire

// AnswerRecord holds the selected option per answer key. A key is unset until
// the user selects one of its step's options.
type AnswerRecord map[AnswerKey]string

// Get returns the answer for key, or "" when unset.
func (r AnswerRecord) Get(key AnswerKey) string {
	return r[key]
}

// IsSet reports whether key has a non-empty answer.
func (r AnswerRecord) IsSet(key AnswerKey) bool {
	return r[key] != ""
}

// Missing lists the keys of schema that have no answer, in step order.
func (r AnswerRecord) Missing(schema Schema) []AnswerKey {
	var missing []AnswerKey
	for _, step := range schema {
		if !r.IsSet(step.Key) {
			missing = append(missing, step.Key)
		}
	}
	return missing
}

// Clone returns an independent copy.
func (r AnswerRecord) Clone() AnswerRecord {
	out := make(AnswerRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
