package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dang-hang/CheckPointAI/internal/dto"
	"github.com/dang-hang/CheckPointAI/internal/model"
	"github.com/dang-hang/CheckPointAI/internal/repository"
	"github.com/dang-hang/CheckPointAI/internal/scoring"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ResultService persists graded outcomes and layers AI analysis on top.
// A saved score is always recomputed server-side from the stored test:
// the client-reported number is never trusted.
type ResultService interface {
	SaveResult(ctx context.Context, req dto.SaveResultRequest) (*dto.TestResultDTO, error)
	GetResult(ctx context.Context, resultID string) (*dto.TestResultDTO, error)
	ListUserResults(ctx context.Context, userID string) ([]dto.TestResultDTO, error)
	AnalyzeResult(ctx context.Context, resultID string) (string, error)
}

type resultService struct {
	resultRepo repository.TestResultRepository
	validation ValidationService
	tests      repository.PrivilegedTestRepository
	llm        GeminiLLMService
}

func NewResultService(
	resultRepo repository.TestResultRepository,
	validation ValidationService,
	tests repository.PrivilegedTestRepository,
	llm GeminiLLMService,
) ResultService {
	return &resultService{resultRepo: resultRepo, validation: validation, tests: tests, llm: llm}
}

func (s *resultService) SaveResult(ctx context.Context, req dto.SaveResultRequest) (*dto.TestResultDTO, error) {
	report, err := s.validation.ValidateAnswers(ctx, req.TestID, req.UserAnswers)
	if err != nil {
		return nil, err
	}

	// The validation pass proved the test exists; this read only picks up
	// the metadata denormalized onto the result row.
	test, err := s.tests.FindByIDWithAnswers(ctx, req.TestID)
	if err != nil {
		return nil, fmt.Errorf("fetching test %q: %w", req.TestID, err)
	}

	result := &model.TestResult{
		ID:             uuid.NewString(),
		TestID:         test.ID,
		TestTitle:      test.Title,
		TestCategory:   test.Category,
		UserID:         req.UserID,
		Score:          report.Score,
		TotalQuestions: report.TotalQuestions,
		Percentage:     report.Percentage,
		Answers:        model.AnswerMap(req.UserAnswers),
	}
	if err := s.resultRepo.Create(ctx, result); err != nil {
		log.Error().Err(err).Str("test_id", req.TestID).Str("user_id", req.UserID).Msg("SaveResult: failed to persist result")
		return nil, fmt.Errorf("saving result: %w", err)
	}

	log.Info().Str("result_id", result.ID).Str("user_id", req.UserID).Int("score", result.Score).Msg("Test result saved")
	return resultToDTO(result), nil
}

func (s *resultService) GetResult(ctx context.Context, resultID string) (*dto.TestResultDTO, error) {
	result, err := s.resultRepo.FindByID(ctx, resultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: result %q", ErrNotFound, resultID)
		}
		return nil, fmt.Errorf("fetching result %q: %w", resultID, err)
	}
	return resultToDTO(result), nil
}

func (s *resultService) ListUserResults(ctx context.Context, userID string) ([]dto.TestResultDTO, error) {
	results, err := s.resultRepo.FindAllByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("ListUserResults: repository error")
		return nil, fmt.Errorf("fetching results for user %q: %w", userID, err)
	}
	dtos := make([]dto.TestResultDTO, 0, len(results))
	for i := range results {
		dtos = append(dtos, *resultToDTO(&results[i]))
	}
	return dtos, nil
}

func (s *resultService) AnalyzeResult(ctx context.Context, resultID string) (string, error) {
	result, err := s.resultRepo.FindByID(ctx, resultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: result %q", ErrNotFound, resultID)
		}
		return "", fmt.Errorf("fetching result %q: %w", resultID, err)
	}

	test, err := s.tests.FindByIDWithAnswers(ctx, result.TestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: test %q behind result %q", ErrNotFound, result.TestID, resultID)
		}
		return "", fmt.Errorf("fetching test %q: %w", result.TestID, err)
	}

	// Re-grade from the stored answers so the digest sent to the LLM is
	// derived from the authoritative record, not the persisted numbers.
	report := scoring.Score(test, result.Answers)

	analysis, err := s.llm.AnalyzeTestResults(ctx, test, report)
	if err != nil {
		return "", fmt.Errorf("analyzing result %q: %w", resultID, err)
	}

	if err := s.resultRepo.UpdateAnalysis(ctx, resultID, analysis); err != nil {
		log.Error().Err(err).Str("result_id", resultID).Msg("AnalyzeResult: failed to store analysis")
		return "", fmt.Errorf("storing analysis for result %q: %w", resultID, err)
	}
	return analysis, nil
}

func resultToDTO(result *model.TestResult) *dto.TestResultDTO {
	var out dto.TestResultDTO
	if err := copier.Copy(&out, result); err != nil {
		log.Error().Err(err).Str("result_id", result.ID).Msg("Failed to map result to DTO")
	}
	return &out
}
