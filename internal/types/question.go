package types

import (
	"encoding/json"
	"fmt"
)

// QuestionType enumerates the input controls a question can render as.
type QuestionType string

// Valid question types.
const (
	QuestionText     QuestionType = "text"
	QuestionTextarea QuestionType = "textarea"
	QuestionSelect   QuestionType = "select"
	QuestionNumber   QuestionType = "number"
)

// IsValid reports whether t is a recognized question type.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionText, QuestionTextarea, QuestionSelect, QuestionNumber:
		return true
	}
	return false
}

// Question is a single form question. Once issued to a client it is never mutated.
type Question struct {
	Key      string       `json:"key"`
	Label    string       `json:"label"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required,omitempty"`
}

// Answer pairs a question key with the candidate's response.
// Values are either strings or numbers on the wire; both are preserved.
type Answer struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// ValueString returns the answer value rendered as a string.
func (a Answer) ValueString() string {
	switch v := a.Value.(type) {
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; print integers without a fraction.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case nil:
		return ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// AnsweredKeys returns the set of keys present in answers.
func AnsweredKeys(answers []Answer) map[string]bool {
	keys := make(map[string]bool, len(answers))
	for _, a := range answers {
		keys[a.Key] = true
	}
	return keys
}

// AnswerMap indexes answers by key for lookup. Later duplicates win, matching
// last-write semantics of the submission form.
func AnswerMap(answers []Answer) map[string]Answer {
	m := make(map[string]Answer, len(answers))
	for _, a := range answers {
		m[a.Key] = a
	}
	return m
}

// ValidateAnswers checks structural invariants on an answer sequence:
// non-empty keys and no repeated keys.
func ValidateAnswers(answers []Answer) error {
	seen := make(map[string]bool, len(answers))
	for i, a := range answers {
		if a.Key == "" {
			return fmt.Errorf("answer %d has an empty key", i)
		}
		if seen[a.Key] {
			return fmt.Errorf("duplicate answer key: %s", a.Key)
		}
		seen[a.Key] = true
	}
	return nil
}
