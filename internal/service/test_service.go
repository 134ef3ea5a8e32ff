package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dang-hang/CheckPointAI/internal/dto"
	"github.com/dang-hang/CheckPointAI/internal/model"
	"github.com/dang-hang/CheckPointAI/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestService serves the learner-facing views of the test catalogue.
// Everything returned here is sanitized: answer keys and explanations
// never cross this boundary.
type TestService interface {
	GetAllTests(ctx context.Context, category string) ([]dto.TestSummaryDTO, error)
	GetTestDetails(ctx context.Context, testID string) (*dto.TestDetailDTO, error)
}

type testService struct {
	testRepo repository.TestRepository
}

func NewTestService(testRepo repository.TestRepository) TestService {
	return &testService{testRepo: testRepo}
}

func (s *testService) GetAllTests(ctx context.Context, category string) ([]dto.TestSummaryDTO, error) {
	var (
		tests []model.Test
		err   error
	)
	if category != "" {
		tests, err = s.testRepo.FindAllByCategory(ctx, category)
	} else {
		tests, err = s.testRepo.FindAll(ctx)
	}
	if err != nil {
		log.Error().Err(err).Msg("GetAllTests: repository error")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	summaries := make([]dto.TestSummaryDTO, 0, len(tests))
	for _, t := range tests {
		summaries = append(summaries, dto.TestSummaryDTO{
			ID:            t.ID,
			Category:      t.Category,
			Title:         t.Title,
			Description:   t.Description,
			Difficulty:    t.Difficulty,
			Duration:      t.Duration,
			QuestionCount: len(t.AllQuestions()),
			CreatedAt:     t.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *testService) GetTestDetails(ctx context.Context, testID string) (*dto.TestDetailDTO, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: test %q", ErrNotFound, testID)
		}
		log.Error().Err(err).Str("test_id", testID).Msg("GetTestDetails: repository error")
		return nil, fmt.Errorf("error fetching test %q: %w", testID, err)
	}
	return sanitizeTest(test), nil
}

func sanitizeQuestions(questions []model.Question) []dto.PublicQuestionDTO {
	out := make([]dto.PublicQuestionDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.PublicQuestionDTO{
			ID:       q.ID,
			Type:     q.Type,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return out
}

func sanitizeTest(test *model.Test) *dto.TestDetailDTO {
	detail := &dto.TestDetailDTO{
		ID:            test.ID,
		Category:      test.Category,
		Title:         test.Title,
		Description:   test.Description,
		Difficulty:    test.Difficulty,
		Duration:      test.Duration,
		AudioFilePath: test.AudioFilePath,
	}
	if len(test.Parts) > 0 {
		for _, p := range test.Parts {
			detail.Parts = append(detail.Parts, dto.PublicPartDTO{
				ID:        p.ID,
				Title:     p.Title,
				Context:   p.Context,
				Questions: sanitizeQuestions(p.Questions),
			})
		}
		return detail
	}
	detail.Questions = sanitizeQuestions(test.Questions)
	return detail
}
