package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "4-5 years", "4-5 years"},
		{"whole number", float64(5), "5"},
		{"fractional number", 2.5, "2.5"},
		{"nil", nil, ""},
		{"slice", []any{"Go", "SQL"}, `["Go","SQL"]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := Answer{Key: "k", Value: tc.value}
			assert.Equal(t, tc.want, a.ValueString())
		})
	}
}

func TestValidateAnswers(t *testing.T) {
	require.NoError(t, ValidateAnswers([]Answer{
		{Key: "name", Value: "Ada"},
		{Key: "email", Value: "ada@example.com"},
	}))

	err := ValidateAnswers([]Answer{{Key: "name", Value: "a"}, {Key: "name", Value: "b"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate answer key")

	err = ValidateAnswers([]Answer{{Key: "", Value: "a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty key")
}

func TestAnswerMap_LastWriteWins(t *testing.T) {
	m := AnswerMap([]Answer{
		{Key: "name", Value: "first"},
		{Key: "name", Value: "second"},
	})
	assert.Equal(t, "second", m["name"].Value)
}

func TestAnsweredKeys(t *testing.T) {
	keys := AnsweredKeys([]Answer{{Key: "name"}, {Key: "email"}})
	assert.True(t, keys["name"])
	assert.True(t, keys["email"])
	assert.False(t, keys["experience"])
}

func TestQuestionTypeIsValid(t *testing.T) {
	for _, qt := range []QuestionType{QuestionText, QuestionTextarea, QuestionSelect, QuestionNumber} {
		assert.True(t, qt.IsValid(), qt)
	}
	assert.False(t, QuestionType("checkbox").IsValid())
}
