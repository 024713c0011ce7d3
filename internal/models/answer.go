package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AnswerKind selects which value field of Answer is meaningful.
type AnswerKind int

const (
	// AnswerString holds text input or a single-choice option value.
	AnswerString AnswerKind = iota
	// AnswerList holds multi-choice option values.
	AnswerList
	// AnswerNumber holds a slider value.
	AnswerNumber
)

// Answer is the union of the three answer shapes. It serializes as the bare
// value (string, string array, or number) so snapshots stay readable and
// match the question variant they answer.
type Answer struct {
	Kind       AnswerKind
	Text       string
	Selections []string
	Value      float64
}

// StringAnswer wraps a text or single-choice response.
func StringAnswer(s string) Answer {
	return Answer{Kind: AnswerString, Text: s}
}

// ListAnswer wraps a multi-choice response. The selections slice is never
// nil, so the JSON form is always an array.
func ListAnswer(vals ...string) Answer {
	if vals == nil {
		vals = []string{}
	}
	return Answer{Kind: AnswerList, Selections: vals}
}

// NumberAnswer wraps a slider response.
func NumberAnswer(v float64) Answer {
	return Answer{Kind: AnswerNumber, Value: v}
}

// IsEmpty reports whether the answer carries no usable value; required
// questions reject empty answers.
func (a Answer) IsEmpty() bool {
	switch a.Kind {
	case AnswerString:
		return strings.TrimSpace(a.Text) == ""
	case AnswerList:
		return len(a.Selections) == 0
	default:
		return false
	}
}

// MarshalJSON emits the bare value.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerString:
		return json.Marshal(a.Text)
	case AnswerList:
		sel := a.Selections
		if sel == nil {
			sel = []string{}
		}
		return json.Marshal(sel)
	case AnswerNumber:
		return json.Marshal(a.Value)
	default:
		return nil, fmt.Errorf("unknown answer kind %d", a.Kind)
	}
}

// UnmarshalJSON recovers the kind from the JSON shape.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = StringAnswer(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = ListAnswer(list...)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = NumberAnswer(n)
		return nil
	}
	return fmt.Errorf("answer is not a string, string array, or number: %s", data)
}
