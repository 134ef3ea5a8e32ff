package service

import "testing"

func TestCountWords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty", content: "", want: 0},
		{name: "whitespace only", content: "   \n\t ", want: 0},
		{name: "simple sentence", content: "The quick brown fox", want: 4},
		{name: "irregular spacing", content: "  one\ttwo\n\nthree  ", want: 3},
		{name: "punctuation stays attached", content: "Hello, world!", want: 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := countWords(tc.content); got != tc.want {
				t.Fatalf("countWords(%q) = %d, want %d", tc.content, got, tc.want)
			}
		})
	}
}
