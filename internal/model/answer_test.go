package model

import (
	"encoding/json"
	"testing"
)

func TestAnswerUnmarshal_KeepsWireType(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Answer
	}{
		{name: "plain string", raw: `"Paris"`, want: StringAnswer("Paris")},
		{name: "digit string stays a string", raw: `"2"`, want: StringAnswer("2")},
		{name: "decimal string stays a string", raw: `"1.5"`, want: StringAnswer("1.5")},
		{name: "number", raw: `2`, want: NumberAnswer(2)},
		{name: "decimal number", raw: `1.5`, want: NumberAnswer(1.5)},
		{name: "null", raw: `null`, want: Answer{Kind: AnswerNull}},
		{name: "leading whitespace", raw: ` "2"`, want: StringAnswer("2")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got Answer
			if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Fatalf("Unmarshal(%s) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestAnswerUnmarshal_RejectsOtherTypes(t *testing.T) {
	for _, raw := range []string{`true`, `[1]`, `{"a":1}`} {
		var a Answer
		if err := json.Unmarshal([]byte(raw), &a); err == nil {
			t.Fatalf("Unmarshal(%s) succeeded, want error", raw)
		}
	}
}

// A submitted answer must round-trip to the exact token it arrived as,
// digit strings included.
func TestAnswerMarshal_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "digit string", raw: `"2"`},
		{name: "number", raw: `2`},
		{name: "decimal number", raw: `1.5`},
		{name: "text", raw: `"true"`},
		{name: "null", raw: `null`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var a Answer
			if err := json.Unmarshal([]byte(tc.raw), &a); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tc.raw, err)
			}
			out, err := json.Marshal(a)
			if err != nil {
				t.Fatalf("Marshal returned error: %v", err)
			}
			if string(out) != tc.raw {
				t.Fatalf("round trip of %s produced %s", tc.raw, out)
			}
		})
	}
}

func TestAnswerKeyUnmarshal_KeepsWireType(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want AnswerKey
	}{
		{name: "index", raw: `1`, want: IndexKey(1)},
		{name: "text", raw: `"Paris"`, want: TextKey("Paris")},
		{name: "digit text stays a text key", raw: `"2"`, want: TextKey("2")},
		{name: "zero index", raw: `0`, want: IndexKey(0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got AnswerKey
			if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Fatalf("Unmarshal(%s) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestAnswerKeyMarshal_RoundTrip(t *testing.T) {
	for _, raw := range []string{`2`, `"2"`, `"Paris"`} {
		var k AnswerKey
		if err := json.Unmarshal([]byte(raw), &k); err != nil {
			t.Fatalf("Unmarshal(%s) returned error: %v", raw, err)
		}
		out, err := json.Marshal(k)
		if err != nil {
			t.Fatalf("Marshal returned error: %v", err)
		}
		if string(out) != raw {
			t.Fatalf("round trip of %s produced %s", raw, out)
		}
	}
}
