package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dang-hang/CheckPointAI/internal/dto"
	"github.com/dang-hang/CheckPointAI/internal/model"
)

type fakeTestRepo struct {
	created []*model.Test
}

func (f *fakeTestRepo) Create(_ context.Context, test *model.Test) error {
	f.created = append(f.created, test)
	return nil
}

func (f *fakeTestRepo) FindByID(_ context.Context, _ string) (*model.Test, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTestRepo) FindAll(_ context.Context) ([]model.Test, error) { return nil, nil }

func (f *fakeTestRepo) FindAllByCategory(_ context.Context, _ string) ([]model.Test, error) {
	return nil, nil
}

func validQuestion(id string) dto.QuestionCreateDTO {
	return dto.QuestionCreateDTO{
		ID:            id,
		Type:          model.QuestionMultipleChoice,
		Question:      "Pick one",
		Options:       []string{"a", "b", "c"},
		CorrectAnswer: model.TextKey("b"),
	}
}

func TestCreateTest_RequiresQuestionsOrParts(t *testing.T) {
	svc := NewAdminTestService(&fakeTestRepo{}, nil)

	tests := []struct {
		name string
		req  dto.TestCreateDTO
	}{
		{
			name: "neither questions nor parts",
			req:  dto.TestCreateDTO{Category: "ESL", Title: "t", Difficulty: "Beginner", Duration: 10},
		},
		{
			name: "both questions and parts",
			req: dto.TestCreateDTO{
				Category: "ESL", Title: "t", Difficulty: "Beginner", Duration: 10,
				Questions: []dto.QuestionCreateDTO{validQuestion("q1")},
				Parts: []dto.PartCreateDTO{
					{ID: "p1", Title: "Part 1", Questions: []dto.QuestionCreateDTO{validQuestion("q2")}},
				},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTest(context.Background(), tc.req)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("CreateTest error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCreateTest_ValidatesQuestions(t *testing.T) {
	svc := NewAdminTestService(&fakeTestRepo{}, nil)

	tests := []struct {
		name     string
		question dto.QuestionCreateDTO
	}{
		{
			name: "multiple choice with too few options",
			question: dto.QuestionCreateDTO{
				ID: "q1", Type: model.QuestionMultipleChoice, Question: "x",
				Options: []string{"only one"}, CorrectAnswer: model.IndexKey(0),
			},
		},
		{
			name: "index key out of range",
			question: dto.QuestionCreateDTO{
				ID: "q1", Type: model.QuestionMultipleChoice, Question: "x",
				Options: []string{"a", "b"}, CorrectAnswer: model.IndexKey(5),
			},
		},
		{
			name: "options on a fill-blank question",
			question: dto.QuestionCreateDTO{
				ID: "q1", Type: model.QuestionFillBlank, Question: "x",
				Options: []string{"a", "b"}, CorrectAnswer: model.TextKey("a"),
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := dto.TestCreateDTO{
				Category: "ESL", Title: "t", Difficulty: "Beginner", Duration: 10,
				Questions: []dto.QuestionCreateDTO{tc.question},
			}
			_, err := svc.CreateTest(context.Background(), req)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("CreateTest error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCreateTest_PersistsAndAssignsID(t *testing.T) {
	repo := &fakeTestRepo{}
	svc := NewAdminTestService(repo, nil)

	req := dto.TestCreateDTO{
		Category: "Checkpoint", Title: "Grammar basics", Difficulty: "Intermediate", Duration: 30,
		Questions: []dto.QuestionCreateDTO{validQuestion("q1"), validQuestion("q2")},
	}
	created, err := svc.CreateTest(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateTest returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated test ID")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted test, got %d", len(repo.created))
	}
	if got := len(repo.created[0].AllQuestions()); got != 2 {
		t.Fatalf("persisted test has %d questions, want 2", got)
	}
}

func TestCreateTest_PartsAreKeptInOrder(t *testing.T) {
	repo := &fakeTestRepo{}
	svc := NewAdminTestService(repo, nil)

	req := dto.TestCreateDTO{
		Category: "IELTS", Title: "Reading", Difficulty: "Advanced", Duration: 60,
		Parts: []dto.PartCreateDTO{
			{ID: "p1", Title: "Passage 1", Questions: []dto.QuestionCreateDTO{validQuestion("q1")}},
			{ID: "p2", Title: "Passage 2", Questions: []dto.QuestionCreateDTO{validQuestion("q2")}},
		},
	}
	if _, err := svc.CreateTest(context.Background(), req); err != nil {
		t.Fatalf("CreateTest returned error: %v", err)
	}
	parts := repo.created[0].Parts
	if len(parts) != 2 || parts[0].ID != "p1" || parts[1].ID != "p2" {
		t.Fatalf("parts not preserved in order: %+v", parts)
	}
}
