package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAnswerJSONRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		answer Answer
		json   string
	}{
		{"text", StringAnswer("5-15km"), `"5-15km"`},
		{"empty text", StringAnswer(""), `""`},
		{"selections", ListAnswer("touchscreen", "navigation"), `["touchscreen","navigation"]`},
		{"no selections", ListAnswer(), `[]`},
		{"slider", NumberAnswer(70), `70`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			raw, err := json.Marshal(c.answer)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(raw) != c.json {
				t.Fatalf("marshal = %s, want %s", raw, c.json)
			}
			var back Answer
			if err := json.Unmarshal(raw, &back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(back, c.answer) {
				t.Fatalf("round trip = %+v, want %+v", back, c.answer)
			}
		})
	}
}

func TestAnswerUnmarshalRejectsOtherShapes(t *testing.T) {
	for _, raw := range []string{`{"a":1}`, `true`} {
		var a Answer
		if err := json.Unmarshal([]byte(raw), &a); err == nil {
			t.Fatalf("unmarshal accepted %s", raw)
		}
	}
}

func TestAnswerIsEmpty(t *testing.T) {
	cases := []struct {
		answer Answer
		empty  bool
	}{
		{StringAnswer(""), true},
		{StringAnswer("   "), true},
		{StringAnswer("yes"), false},
		{ListAnswer(), true},
		{ListAnswer("a"), false},
		{NumberAnswer(0), false},
	}
	for _, c := range cases {
		if got := c.answer.IsEmpty(); got != c.empty {
			t.Fatalf("IsEmpty(%+v) = %v, want %v", c.answer, got, c.empty)
		}
	}
}
