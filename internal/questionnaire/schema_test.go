package questionnaire

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchema_Valid(t *testing.T) {
	s := DefaultSchema()
	require.NoError(t, s.Validate())

	var keys []AnswerKey
	for _, step := range s {
		keys = append(keys, step.Key)
	}
	if diff := cmp.Diff(AllKeys, keys); diff != "" {
		t.Errorf("default step order mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(Schema) Schema
		wantErr string
	}{
		{
			name:    "unknown key",
			mutate:  func(s Schema) Schema { s[0].Key = "color"; return s },
			wantErr: "unknown answer key",
		},
		{
			name:    "duplicate key",
			mutate:  func(s Schema) Schema { s[1].Key = KeyBusinessType; return s },
			wantErr: "duplicate key",
		},
		{
			name:    "missing key",
			mutate:  func(s Schema) Schema { return s[:5] },
			wantErr: `missing step for key "goal"`,
		},
		{
			name:    "empty title",
			mutate:  func(s Schema) Schema { s[2].Title = " "; return s },
			wantErr: "empty title",
		},
		{
			name:    "duplicate option",
			mutate:  func(s Schema) Schema { s[3].Options = append(s[3].Options, "1 Week"); return s },
			wantErr: `duplicate option "1 Week"`,
		},
		{
			name:    "empty option",
			mutate:  func(s Schema) Schema { s[4].Options = append(s[4].Options, ""); return s },
			wantErr: "empty option",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(DefaultSchema()).Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSchema)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchema_ReorderedIsValid(t *testing.T) {
	s := DefaultSchema()
	s[0], s[5] = s[5], s[0]
	require.NoError(t, s.Validate())

	w, err := New(s)
	require.NoError(t, err)
	assert.Equal(t, KeyGoal, w.CurrentStep().Key)
}

func TestSchema_CloneIsDeep(t *testing.T) {
	s := DefaultSchema()
	c := s.Clone()
	c[0].Options[0] = "changed"
	assert.Equal(t, "Startup", s[0].Options[0])
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey(" ProductCategory ")
	require.NoError(t, err)
	assert.Equal(t, KeyProductCategory, k)

	_, err = ParseKey("colour")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestStepDefinition_OptionIndex(t *testing.T) {
	step, ok := DefaultSchema().Step(KeyBudget)
	require.True(t, ok)
	assert.Equal(t, 4, step.OptionIndex("$100K+"))
	assert.Equal(t, -1, step.OptionIndex("$1M"))
	assert.True(t, step.HasOption("$1K - $5K"))
}

func TestAnswerRecord_Missing(t *testing.T) {
	r := AnswerRecord{KeyBudget: "$100K+", KeyGoal: ""}
	assert.Equal(t, []AnswerKey{KeyBusinessType, KeyProductCategory, KeyDuration, KeyAudience, KeyGoal}, r.Missing(DefaultSchema()))
}
