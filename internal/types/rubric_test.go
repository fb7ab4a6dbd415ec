package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRubric() *Rubric {
	return &Rubric{
		Criteria: []Criterion{
			{Name: "Argument and Analysis", MaxScore: 40, Description: "Clarity and depth of the argument"},
			{Name: "Use of Evidence", MaxScore: 30, Description: "Specific, relevant examples"},
			{Name: "Structure and Organization", MaxScore: 20, Description: "Logical flow"},
			{Name: "Clarity and Mechanics", MaxScore: 10, Description: "Grammar, spelling, readability"},
		},
	}
}

func TestRubricValidate(t *testing.T) {
	tests := []struct {
		name      string
		rubric    *Rubric
		wantError bool
	}{
		{
			name:      "valid rubric",
			rubric:    sampleRubric(),
			wantError: false,
		},
		{
			name:      "empty criteria list",
			rubric:    &Rubric{},
			wantError: true,
		},
		{
			name: "zero max score",
			rubric: &Rubric{Criteria: []Criterion{
				{Name: "Argument", MaxScore: 0},
			}},
			wantError: true,
		},
		{
			name: "negative max score",
			rubric: &Rubric{Criteria: []Criterion{
				{Name: "Argument", MaxScore: -5},
			}},
			wantError: true,
		},
		{
			name: "unnamed criterion",
			rubric: &Rubric{Criteria: []Criterion{
				{Name: "", MaxScore: 10},
			}},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rubric.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRubricMaxPossibleScore(t *testing.T) {
	rubric := sampleRubric()
	assert.Equal(t, 100.0, rubric.MaxPossibleScore())

	empty := &Rubric{}
	assert.Equal(t, 0.0, empty.MaxPossibleScore())
}

func TestRubricCriterionLookup(t *testing.T) {
	rubric := sampleRubric()

	c := rubric.Criterion("Use of Evidence")
	require.NotNil(t, c)
	assert.Equal(t, 30.0, c.MaxScore)

	assert.Nil(t, rubric.Criterion("Nonexistent"))
}

func TestRubricJSONShape(t *testing.T) {
	// The rubric serializes with the same field names the grading prompt
	// and the model response use, so criterion names round-trip exactly.
	data, err := json.Marshal(sampleRubric())
	require.NoError(t, err)

	var decoded Rubric
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Criteria, 4)
	assert.Equal(t, "Argument and Analysis", decoded.Criteria[0].Name)
	assert.Contains(t, string(data), `"criterion"`)
	assert.Contains(t, string(data), `"max_score"`)
}
