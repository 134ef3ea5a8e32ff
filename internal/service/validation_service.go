package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dang-hang/CheckPointAI/internal/model"
	"github.com/dang-hang/CheckPointAI/internal/repository"
	"github.com/dang-hang/CheckPointAI/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Bound on testId length; caps abuse, not a domain limit.
const maxTestIDLength = 100

// ValidationService grades a submission against the authoritative test
// record. The submission never carries correct answers or the question
// bank: everything needed for grading is re-read here through the
// privileged repository handle.
type ValidationService interface {
	ValidateAnswers(ctx context.Context, testID string, userAnswers map[string]model.Answer) (*scoring.Report, error)
}

type validationService struct {
	tests repository.PrivilegedTestRepository
}

func NewValidationService(tests repository.PrivilegedTestRepository) ValidationService {
	return &validationService{tests: tests}
}

func (s *validationService) ValidateAnswers(ctx context.Context, testID string, userAnswers map[string]model.Answer) (*scoring.Report, error) {
	if testID == "" || len(testID) > maxTestIDLength {
		return nil, fmt.Errorf("%w: testId must be a non-empty string of at most %d characters", ErrInvalidInput, maxTestIDLength)
	}
	if userAnswers == nil {
		return nil, fmt.Errorf("%w: userAnswers must be an object", ErrInvalidInput)
	}

	test, err := s.tests.FindByIDWithAnswers(ctx, testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: test %q", ErrNotFound, testID)
		}
		log.Error().Err(err).Str("test_id", testID).Msg("ValidateAnswers: failed to fetch test")
		return nil, fmt.Errorf("fetching test %q: %w", testID, err)
	}

	report := scoring.Score(test, userAnswers)
	log.Info().Str("test_id", testID).Int("score", report.Score).Int("total", report.TotalQuestions).Msg("Submission validated")
	return report, nil
}
