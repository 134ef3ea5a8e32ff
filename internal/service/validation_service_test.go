package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dang-hang/CheckPointAI/internal/model"
	"gorm.io/gorm"
)

type fakeTestStore struct {
	tests map[string]*model.Test
	err   error
}

func (f *fakeTestStore) FindByIDWithAnswers(_ context.Context, id string) (*model.Test, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.tests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func capitalsTest() *model.Test {
	return &model.Test{
		ID: "geo-1",
		Questions: model.QuestionList{
			{ID: "q1", Type: model.QuestionFillBlank, Question: "Capital of France?", CorrectAnswer: model.TextKey("Paris"), Explanation: "Paris."},
			{ID: "q2", Type: model.QuestionMultipleChoice, Question: "Capital of Japan?", Options: []string{"Kyoto", "Tokyo"}, CorrectAnswer: model.IndexKey(1)},
		},
	}
}

func TestValidateAnswers_ScoresAgainstStoredRecord(t *testing.T) {
	svc := NewValidationService(&fakeTestStore{tests: map[string]*model.Test{"geo-1": capitalsTest()}})

	report, err := svc.ValidateAnswers(context.Background(), "geo-1", map[string]model.Answer{
		"q1": model.StringAnswer(" paris "),
		"q2": model.NumberAnswer(1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Score != 2 || report.TotalQuestions != 2 || report.Percentage != 100 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestValidateAnswers_InputValidation(t *testing.T) {
	svc := NewValidationService(&fakeTestStore{tests: map[string]*model.Test{}})

	tests := []struct {
		name    string
		testID  string
		answers map[string]model.Answer
	}{
		{name: "empty test id", testID: "", answers: map[string]model.Answer{}},
		{name: "oversized test id", testID: strings.Repeat("x", 101), answers: map[string]model.Answer{}},
		{name: "nil answers", testID: "geo-1", answers: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateAnswers(context.Background(), tc.testID, tc.answers)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestValidateAnswers_UnknownTest(t *testing.T) {
	svc := NewValidationService(&fakeTestStore{tests: map[string]*model.Test{}})

	_, err := svc.ValidateAnswers(context.Background(), "missing", map[string]model.Answer{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestValidateAnswers_UpstreamFailure(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewValidationService(&fakeTestStore{err: boom})

	_, err := svc.ValidateAnswers(context.Background(), "geo-1", map[string]model.Answer{})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
		t.Fatalf("upstream failure must not map to a client error, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
}

func TestValidateAnswers_EmptyTestYieldsZeroPercentage(t *testing.T) {
	svc := NewValidationService(&fakeTestStore{tests: map[string]*model.Test{"empty": {ID: "empty"}}})

	report, err := svc.ValidateAnswers(context.Background(), "empty", map[string]model.Answer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalQuestions != 0 || report.Percentage != 0 {
		t.Fatalf("empty test must grade to 0/0/0, got %+v", report)
	}
}
