package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	QuestionMultipleChoice = "multiple-choice"
	QuestionFillBlank      = "fill-blank"
	QuestionTrueFalse      = "true-false"
)

// AnswerKey is the stored correct answer for a question. Tests authored
// before the text migration hold a zero-based index into Options; newer
// tests hold the literal answer text. Both encodings coexist in the
// database, so both must stay scoreable.
type AnswerKey struct {
	Index   int
	Text    string
	IsIndex bool
}

func IndexKey(i int) AnswerKey   { return AnswerKey{Index: i, IsIndex: true} }
func TextKey(s string) AnswerKey { return AnswerKey{Text: s} }

// UnmarshalJSON dispatches on the raw token type. A quoted value is
// always the text encoding, even when the text is all digits, so "2" and
// 2 stay distinct keys.
func (k *AnswerKey) UnmarshalJSON(data []byte) error {
	tok := bytes.TrimSpace(data)
	if len(tok) > 0 && tok[0] == '"' {
		var s string
		if err := json.Unmarshal(tok, &s); err != nil {
			return fmt.Errorf("invalid string correctAnswer: %w", err)
		}
		*k = AnswerKey{Text: s}
		return nil
	}
	var f float64
	if err := json.Unmarshal(tok, &f); err != nil {
		return fmt.Errorf("correctAnswer must be a number or a string: %w", err)
	}
	*k = AnswerKey{Index: int(f), IsIndex: true}
	return nil
}

func (k AnswerKey) MarshalJSON() ([]byte, error) {
	if k.IsIndex {
		return json.Marshal(k.Index)
	}
	return json.Marshal(k.Text)
}

// String returns the form used for plain-text comparison: the index digits
// for a legacy key, the answer text otherwise.
func (k AnswerKey) String() string {
	if k.IsIndex {
		return strconv.Itoa(k.Index)
	}
	return k.Text
}

// Question is one item of a test. Questions live inside the test row as a
// JSON document, matching how the authoring workflow stores them.
type Question struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Question      string    `json:"question"`
	Options       []string  `json:"options,omitempty"`
	CorrectAnswer AnswerKey `json:"correctAnswer"`
	Explanation   string    `json:"explanation"`
}

// Part groups questions sharing context, e.g. a reading passage.
type Part struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Context   string     `json:"context,omitempty"`
	Questions []Question `json:"questions"`
}
