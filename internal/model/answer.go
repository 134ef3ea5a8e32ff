package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

type AnswerKind int

const (
	AnswerNull AnswerKind = iota
	AnswerString
	AnswerNumber
)

// Answer is a learner's submitted value for one question: a string, a
// number (legacy option index), or null. The raw value is preserved so it
// can be echoed back to the caller exactly as given.
type Answer struct {
	Kind AnswerKind
	Str  string
	Num  float64
}

func StringAnswer(s string) Answer  { return Answer{Kind: AnswerString, Str: s} }
func NumberAnswer(n float64) Answer { return Answer{Kind: AnswerNumber, Num: n} }

// UnmarshalJSON keeps the submitted wire type: a quoted token is a
// string answer even when it looks numeric, so "2" survives as "2" and
// is never coerced to 2.
func (a *Answer) UnmarshalJSON(data []byte) error {
	tok := bytes.TrimSpace(data)
	if string(tok) == "null" {
		*a = Answer{Kind: AnswerNull}
		return nil
	}
	if len(tok) > 0 && tok[0] == '"' {
		var s string
		if err := json.Unmarshal(tok, &s); err != nil {
			return fmt.Errorf("invalid string answer: %w", err)
		}
		*a = Answer{Kind: AnswerString, Str: s}
		return nil
	}
	var f float64
	if err := json.Unmarshal(tok, &f); err != nil {
		return fmt.Errorf("answer must be a string, number, or null")
	}
	*a = Answer{Kind: AnswerNumber, Num: f}
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerString:
		return json.Marshal(a.Str)
	case AnswerNumber:
		return json.Marshal(a.Num)
	default:
		return []byte("null"), nil
	}
}

// StringForm is the textual shape of the answer used for comparison. Null
// collapses to the empty string, numbers to their shortest decimal form.
func (a Answer) StringForm() string {
	switch a.Kind {
	case AnswerString:
		return a.Str
	case AnswerNumber:
		return strconv.FormatFloat(a.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// AnswerMap is the set of submitted answers keyed by question id. It is
// persisted verbatim on the test result row as jsonb.
type AnswerMap map[string]Answer

func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *AnswerMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		if s, sok := value.(string); sok {
			b = []byte(s)
		} else {
			return fmt.Errorf("unsupported type %T for AnswerMap", value)
		}
	}
	return json.Unmarshal(b, m)
}
