package scoring

import (
	"encoding/json"
	"testing"

	"github.com/dang-hang/CheckPointAI/internal/model"
)

func strAns(s string) *model.Answer {
	a := model.StringAnswer(s)
	return &a
}

func numAns(n float64) *model.Answer {
	a := model.NumberAnswer(n)
	return &a
}

func TestCorrect_LegacyMultipleChoice(t *testing.T) {
	q := model.Question{
		ID:            "q1",
		Type:          model.QuestionMultipleChoice,
		Question:      "Pick a color",
		Options:       []string{"Red", "Blue", "Green"},
		CorrectAnswer: model.IndexKey(1),
	}

	tests := []struct {
		name string
		ans  *model.Answer
		want bool
	}{
		{name: "matching index", ans: numAns(1), want: true},
		{name: "wrong index", ans: numAns(0), want: false},
		{name: "matching option text", ans: strAns("Blue"), want: true},
		{name: "matching option text lowercase", ans: strAns("blue"), want: true},
		{name: "matching option text padded", ans: strAns("  Blue "), want: true},
		{name: "wrong option text", ans: strAns("Red"), want: false},
		{name: "no answer", ans: nil, want: false},
		{name: "index out of range", ans: numAns(7), want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Correct(q, tc.ans); got != tc.want {
				t.Fatalf("Correct() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCorrect_TextEncodedMultipleChoice(t *testing.T) {
	q := model.Question{
		ID:            "q1",
		Type:          model.QuestionMultipleChoice,
		Question:      "Pick a color",
		Options:       []string{"Red", "Blue", "Green"},
		CorrectAnswer: model.TextKey("Blue"),
	}

	tests := []struct {
		name string
		ans  *model.Answer
		want bool
	}{
		{name: "matching text", ans: strAns("Blue"), want: true},
		{name: "matching text case insensitive", ans: strAns("bLuE"), want: true},
		{name: "wrong text", ans: strAns("Red"), want: false},
		{name: "numeric index resolved through options", ans: numAns(1), want: true},
		{name: "numeric index wrong option", ans: numAns(0), want: false},
		{name: "numeric index out of range", ans: numAns(9), want: false},
		{name: "negative numeric index", ans: numAns(-1), want: false},
		{name: "no answer", ans: nil, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Correct(q, tc.ans); got != tc.want {
				t.Fatalf("Correct() = %v, want %v", got, tc.want)
			}
		})
	}
}

// Options made of digit strings must stay distinguishable from legacy
// index keys: a stored "2" is the answer text, not option index 2.
func TestCorrect_DigitStringOptions(t *testing.T) {
	var q model.Question
	raw := `{
		"id": "q1",
		"type": "multiple-choice",
		"question": "Pick a number",
		"options": ["1", "2", "3"],
		"correctAnswer": "2"
	}`
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		t.Fatalf("unmarshal question: %v", err)
	}
	if q.CorrectAnswer.IsIndex {
		t.Fatalf("digit-string key decoded as index %d, want text key", q.CorrectAnswer.Index)
	}

	tests := []struct {
		name string
		ans  *model.Answer
		want bool
	}{
		{name: "matching digit string", ans: strAns("2"), want: true},
		{name: "wrong digit string", ans: strAns("3"), want: false},
		{name: "index of the matching option", ans: numAns(1), want: true},
		{name: "index equal to the key digits", ans: numAns(2), want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Correct(q, tc.ans); got != tc.want {
				t.Fatalf("Correct() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCorrect_FractionalNumericSubmission(t *testing.T) {
	tests := []struct {
		name string
		q    model.Question
		ans  *model.Answer
	}{
		{
			name: "legacy key never matches a fractional index",
			q: model.Question{
				Type:          model.QuestionMultipleChoice,
				Options:       []string{"Red", "Blue", "Green"},
				CorrectAnswer: model.IndexKey(1),
			},
			ans: numAns(1.5),
		},
		{
			name: "text key never resolves a fractional index",
			q: model.Question{
				Type:          model.QuestionMultipleChoice,
				Options:       []string{"Red", "Blue", "Green"},
				CorrectAnswer: model.TextKey("Blue"),
			},
			ans: numAns(1.5),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if Correct(tc.q, tc.ans) {
				t.Fatal("Correct() = true, want false for fractional submission")
			}
		})
	}
}

func TestCorrect_FillBlankAndTrueFalse(t *testing.T) {
	tests := []struct {
		name string
		q    model.Question
		ans  *model.Answer
		want bool
	}{
		{
			name: "fill blank exact",
			q:    model.Question{Type: model.QuestionFillBlank, CorrectAnswer: model.TextKey("Paris")},
			ans:  strAns("Paris"),
			want: true,
		},
		{
			name: "fill blank case and whitespace insensitive",
			q:    model.Question{Type: model.QuestionFillBlank, CorrectAnswer: model.TextKey("  Paris ")},
			ans:  strAns("paris"),
			want: true,
		},
		{
			name: "fill blank numeric answer string form",
			q:    model.Question{Type: model.QuestionFillBlank, CorrectAnswer: model.TextKey("1.5")},
			ans:  numAns(1.5),
			want: true,
		},
		{
			name: "true false match",
			q:    model.Question{Type: model.QuestionTrueFalse, CorrectAnswer: model.TextKey("True")},
			ans:  strAns("true"),
			want: true,
		},
		{
			name: "true false mismatch",
			q:    model.Question{Type: model.QuestionTrueFalse, CorrectAnswer: model.TextKey("True")},
			ans:  strAns("False"),
			want: false,
		},
		{
			name: "missing answer is wrong",
			q:    model.Question{Type: model.QuestionFillBlank, CorrectAnswer: model.TextKey("Paris")},
			ans:  nil,
			want: false,
		},
		{
			name: "missing answer matches empty key",
			q:    model.Question{Type: model.QuestionFillBlank, CorrectAnswer: model.TextKey("")},
			ans:  nil,
			want: true,
		},
		{
			name: "legacy key without options compares index digits",
			q:    model.Question{Type: model.QuestionFillBlank, CorrectAnswer: model.IndexKey(2)},
			ans:  strAns("2"),
			want: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Correct(tc.q, tc.ans); got != tc.want {
				t.Fatalf("Correct() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScore_FlatTest(t *testing.T) {
	test := &model.Test{
		ID: "t1",
		Questions: model.QuestionList{
			{ID: "q1", Type: model.QuestionFillBlank, Question: "Capital of France?", CorrectAnswer: model.TextKey("Paris"), Explanation: "Paris is the capital."},
		},
	}

	report := Score(test, map[string]model.Answer{"q1": model.StringAnswer("paris")})

	if report.Score != 1 || report.TotalQuestions != 1 || report.Percentage != 100 {
		t.Fatalf("unexpected report: score=%d total=%d pct=%v", report.Score, report.TotalQuestions, report.Percentage)
	}
	if len(report.Results) != 1 || !report.Results[0].IsCorrect {
		t.Fatalf("unexpected results: %+v", report.Results)
	}
	if report.Results[0].Explanation != "Paris is the capital." {
		t.Fatalf("explanation not carried through: %q", report.Results[0].Explanation)
	}
}

func TestScore_EmptySubmission(t *testing.T) {
	test := &model.Test{
		ID: "t1",
		Questions: model.QuestionList{
			{ID: "q1", Type: model.QuestionFillBlank, Question: "Capital of France?", CorrectAnswer: model.TextKey("Paris")},
		},
	}

	report := Score(test, map[string]model.Answer{})

	if report.Score != 0 || report.Percentage != 0 {
		t.Fatalf("unexpected report: score=%d pct=%v", report.Score, report.Percentage)
	}
	if report.Results[0].UserAnswer != nil {
		t.Fatalf("expected nil UserAnswer for unanswered question, got %+v", report.Results[0].UserAnswer)
	}

	b, err := json.Marshal(report.Results[0])
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if v, present := out["userAnswer"]; !present || v != nil {
		t.Fatalf("userAnswer must serialize as explicit null, got %v", out)
	}
}

func TestScore_PartsOrderPreserved(t *testing.T) {
	test := &model.Test{
		ID: "t1",
		Parts: model.PartList{
			{ID: "p1", Title: "Reading", Questions: []model.Question{
				{ID: "qA", Type: model.QuestionTrueFalse, CorrectAnswer: model.TextKey("True")},
				{ID: "qB", Type: model.QuestionFillBlank, CorrectAnswer: model.TextKey("tide")},
			}},
			{ID: "p2", Title: "Grammar", Questions: []model.Question{
				{ID: "qC", Type: model.QuestionMultipleChoice, Options: []string{"is", "are"}, CorrectAnswer: model.TextKey("are")},
			}},
		},
	}

	report := Score(test, map[string]model.Answer{
		"qC": model.StringAnswer("are"),
		"qA": model.StringAnswer("True"),
	})

	wantOrder := []string{"qA", "qB", "qC"}
	if len(report.Results) != len(wantOrder) {
		t.Fatalf("expected %d results, got %d", len(wantOrder), len(report.Results))
	}
	for i, id := range wantOrder {
		if report.Results[i].QuestionID != id {
			t.Fatalf("result %d: expected question %s, got %s", i, id, report.Results[i].QuestionID)
		}
	}
	if report.Score != 2 || report.TotalQuestions != 3 {
		t.Fatalf("unexpected aggregate: score=%d total=%d", report.Score, report.TotalQuestions)
	}
}

func TestScore_EmptyTest(t *testing.T) {
	report := Score(&model.Test{ID: "t1"}, map[string]model.Answer{"ghost": model.StringAnswer("x")})

	if report.TotalQuestions != 0 || report.Score != 0 {
		t.Fatalf("unexpected totals: %+v", report)
	}
	if report.Percentage != 0 {
		t.Fatalf("empty test must report percentage 0, got %v", report.Percentage)
	}
	if len(report.Results) != 0 {
		t.Fatalf("expected no results, got %d", len(report.Results))
	}
}

func TestScore_AggregateConsistency(t *testing.T) {
	test := &model.Test{
		ID: "t1",
		Questions: model.QuestionList{
			{ID: "q1", Type: model.QuestionMultipleChoice, Options: []string{"Red", "Blue", "Green"}, CorrectAnswer: model.IndexKey(1)},
			{ID: "q2", Type: model.QuestionMultipleChoice, Options: []string{"Red", "Blue", "Green"}, CorrectAnswer: model.TextKey("Green")},
			{ID: "q3", Type: model.QuestionFillBlank, CorrectAnswer: model.TextKey("1.5")},
			{ID: "q4", Type: model.QuestionTrueFalse, CorrectAnswer: model.TextKey("False")},
		},
	}

	report := Score(test, map[string]model.Answer{
		"q1": model.NumberAnswer(1),
		"q2": model.StringAnswer("green"),
		"q3": model.StringAnswer("2.5"),
	})

	correctCount := 0
	for _, r := range report.Results {
		if r.IsCorrect {
			correctCount++
		}
	}
	if report.Score != correctCount {
		t.Fatalf("score %d does not equal correct result count %d", report.Score, correctCount)
	}
	if report.TotalQuestions != len(report.Results) {
		t.Fatalf("totalQuestions %d does not equal result count %d", report.TotalQuestions, len(report.Results))
	}
	if report.Score != 2 {
		t.Fatalf("expected score 2, got %d", report.Score)
	}
	if report.Percentage != 50 {
		t.Fatalf("expected percentage 50, got %v", report.Percentage)
	}
}

func TestScore_CorrectAnswerComesFromTestRecord(t *testing.T) {
	test := &model.Test{
		ID: "t1",
		Questions: model.QuestionList{
			{ID: "q1", Type: model.QuestionFillBlank, Question: "2+2?", CorrectAnswer: model.TextKey("4"), Explanation: "Basic arithmetic."},
		},
	}

	report := Score(test, map[string]model.Answer{"q1": model.StringAnswer("5")})

	r := report.Results[0]
	if r.CorrectAnswer.String() != "4" {
		t.Fatalf("correctAnswer must come from the stored record, got %q", r.CorrectAnswer.String())
	}
	if r.Explanation != "Basic arithmetic." {
		t.Fatalf("explanation must come from the stored record, got %q", r.Explanation)
	}
	if r.UserAnswer == nil || r.UserAnswer.Str != "5" {
		t.Fatalf("userAnswer must be the raw submitted value, got %+v", r.UserAnswer)
	}
}
