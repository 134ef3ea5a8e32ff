// Package scoring grades a submitted answer set against a test's
// authoritative question list. It is pure computation: no I/O, no state.
package scoring

import (
	"strings"

	"github.com/dang-hang/CheckPointAI/internal/model"
)

// Result is the per-question verdict. UserAnswer carries the raw submitted
// value, or null when the question was not answered, so callers can render
// "(no answer)" distinctly from a wrong answer.
type Result struct {
	QuestionID    string          `json:"questionId"`
	Question      string          `json:"question"`
	UserAnswer    *model.Answer   `json:"userAnswer"`
	CorrectAnswer model.AnswerKey `json:"correctAnswer"`
	Explanation   string          `json:"explanation"`
	IsCorrect     bool            `json:"isCorrect"`
}

// Report is the aggregate grading outcome for one submission.
type Report struct {
	Score          int      `json:"score"`
	TotalQuestions int      `json:"totalQuestions"`
	Percentage     float64  `json:"percentage"`
	Results        []Result `json:"results"`
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func answerText(a *model.Answer) string {
	if a == nil {
		return ""
	}
	return a.StringForm()
}

// Correct decides whether a submitted answer matches the question's key.
//
// Multiple-choice questions carry one of two key encodings. A legacy key
// is the zero-based index of the correct option; the submission may be the
// same index or the option's text. A text key is the literal option text;
// the submission is normally text but a raw index is resolved through
// Options as well. Everything else (fill-blank, true-false) compares the
// string forms of both sides. All text comparison is case-insensitive
// after trimming whitespace.
func Correct(q model.Question, ans *model.Answer) bool {
	key := q.CorrectAnswer

	if q.Type == model.QuestionMultipleChoice && len(q.Options) > 0 {
		if key.IsIndex {
			if ans != nil && ans.Kind == model.AnswerNumber {
				// Compared as floats so a fractional submission like 1.5
				// never truncates into a matching index.
				return ans.Num == float64(key.Index)
			}
			if key.Index < 0 || key.Index >= len(q.Options) {
				return false
			}
			return normalize(answerText(ans)) == normalize(q.Options[key.Index])
		}
		if ans != nil && ans.Kind == model.AnswerNumber {
			i := int(ans.Num)
			if float64(i) != ans.Num || i < 0 || i >= len(q.Options) {
				return false
			}
			return normalize(q.Options[i]) == normalize(key.Text)
		}
		return normalize(answerText(ans)) == normalize(key.Text)
	}

	return normalize(answerText(ans)) == normalize(key.String())
}

// Score grades every question of the test, in authoritative order, against
// the submitted answer map. Questions missing from the map grade as
// unanswered. An empty test yields percentage 0 rather than a division
// error.
func Score(test *model.Test, userAnswers map[string]model.Answer) *Report {
	questions := test.AllQuestions()

	results := make([]Result, 0, len(questions))
	score := 0
	for _, q := range questions {
		var submitted *model.Answer
		if a, ok := userAnswers[q.ID]; ok && a.Kind != model.AnswerNull {
			copied := a
			submitted = &copied
		}

		correct := Correct(q, submitted)
		if correct {
			score++
		}

		results = append(results, Result{
			QuestionID:    q.ID,
			Question:      q.Question,
			UserAnswer:    submitted,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			IsCorrect:     correct,
		})
	}

	total := len(questions)
	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}

	return &Report{
		Score:          score,
		TotalQuestions: total,
		Percentage:     percentage,
		Results:        results,
	}
}
