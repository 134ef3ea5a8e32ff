package service

import "testing"

func TestParseGrade(t *testing.T) {
	tests := []struct {
		name     string
		feedback string
		want     float64
	}{
		{name: "grade with denominator", feedback: "Good work.\nGrade: 85/100", want: 85},
		{name: "score keyword", feedback: "Score: 92", want: 92},
		{name: "case insensitive", feedback: "GRADE: 70 / 100", want: 70},
		{name: "decimal grade", feedback: "Grade: 87.5/100", want: 87.5},
		{name: "missing grade falls back", feedback: "Nice essay, keep practicing.", want: 75},
		{name: "out of range falls back", feedback: "Grade: 250/100", want: 75},
		{name: "empty feedback", feedback: "", want: 75},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseGrade(tc.feedback); got != tc.want {
				t.Fatalf("parseGrade(%q) = %v, want %v", tc.feedback, got, tc.want)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "plain json", content: `{"questions":[]}`, want: `{"questions":[]}`},
		{name: "json fence", content: "```json\n{\"questions\":[]}\n```", want: `{"questions":[]}`},
		{name: "bare fence", content: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "fence with prose around it", content: "Here you go:\n```json\n{\"a\":1}\n```\nEnjoy!", want: `{"a":1}`},
		{name: "surrounding whitespace", content: "  \n{\"a\":1}\n ", want: `{"a":1}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.content); got != tc.want {
				t.Fatalf("extractJSON(%q) = %q, want %q", tc.content, got, tc.want)
			}
		})
	}
}
