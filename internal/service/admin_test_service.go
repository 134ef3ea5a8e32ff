package service

import (
	"context"
	"fmt"

	"github.com/dang-hang/CheckPointAI/internal/dto"
	"github.com/dang-hang/CheckPointAI/internal/model"
	"github.com/dang-hang/CheckPointAI/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AdminTestService covers the authoring side: creating tests and
// generating question drafts with the LLM.
type AdminTestService interface {
	CreateTest(ctx context.Context, req dto.TestCreateDTO) (*model.Test, error)
	GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsRequest) (*dto.GeneratedQuestionsResponse, error)
}

type adminTestService struct {
	testRepo repository.TestRepository
	llm      GeminiLLMService
}

func NewAdminTestService(testRepo repository.TestRepository, llm GeminiLLMService) AdminTestService {
	return &adminTestService{testRepo: testRepo, llm: llm}
}

func (s *adminTestService) CreateTest(ctx context.Context, req dto.TestCreateDTO) (*model.Test, error) {
	hasQuestions := len(req.Questions) > 0
	hasParts := len(req.Parts) > 0
	if hasQuestions == hasParts {
		return nil, fmt.Errorf("%w: a test must have either questions or parts, not both and not neither", ErrInvalidInput)
	}

	test := &model.Test{
		ID:          req.ID,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
		CreatedBy:   req.CreatedBy,
	}
	if test.ID == "" {
		test.ID = uuid.NewString()
	}

	if hasQuestions {
		questions, err := buildQuestions(req.Questions)
		if err != nil {
			return nil, err
		}
		test.Questions = questions
	} else {
		for _, p := range req.Parts {
			questions, err := buildQuestions(p.Questions)
			if err != nil {
				return nil, fmt.Errorf("part %q: %w", p.ID, err)
			}
			test.Parts = append(test.Parts, model.Part{
				ID:        p.ID,
				Title:     p.Title,
				Context:   p.Context,
				Questions: questions,
			})
		}
	}

	if err := s.testRepo.Create(ctx, test); err != nil {
		log.Error().Err(err).Str("test_id", test.ID).Msg("CreateTest: failed to persist test")
		return nil, fmt.Errorf("creating test: %w", err)
	}

	log.Info().Str("test_id", test.ID).Str("category", test.Category).Int("questions", len(test.AllQuestions())).Msg("Test created")
	return test, nil
}

func buildQuestions(dtos []dto.QuestionCreateDTO) (model.QuestionList, error) {
	questions := make(model.QuestionList, 0, len(dtos))
	for _, q := range dtos {
		if err := validateQuestion(q); err != nil {
			return nil, err
		}
		questions = append(questions, model.Question{
			ID:            q.ID,
			Type:          q.Type,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	return questions, nil
}

func validateQuestion(q dto.QuestionCreateDTO) error {
	if q.Type == model.QuestionMultipleChoice {
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: question %q: multiple-choice questions need at least two options", ErrInvalidInput, q.ID)
		}
		if q.CorrectAnswer.IsIndex && (q.CorrectAnswer.Index < 0 || q.CorrectAnswer.Index >= len(q.Options)) {
			return fmt.Errorf("%w: question %q: correct answer index %d is out of range", ErrInvalidInput, q.ID, q.CorrectAnswer.Index)
		}
	} else if len(q.Options) > 0 {
		return fmt.Errorf("%w: question %q: options are only valid on multiple-choice questions", ErrInvalidInput, q.ID)
	}
	return nil
}

func (s *adminTestService) GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsRequest) (*dto.GeneratedQuestionsResponse, error) {
	questions, err := s.llm.GenerateQuestions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generating questions: %w", err)
	}
	log.Info().Str("subject", req.Subject).Int("count", len(questions)).Msg("Questions generated")
	return &dto.GeneratedQuestionsResponse{Questions: questions}, nil
}
