package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dang-hang/CheckPointAI/internal/dto"
	"github.com/dang-hang/CheckPointAI/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ReportService builds AI-written progress reports for a student over a
// date range. The requesting teacher must share a class with the student.
type ReportService interface {
	GenerateProgressReport(ctx context.Context, req dto.ProgressReportRequest) (*dto.ProgressReportResponse, error)
}

type reportService struct {
	resultRepo repository.TestResultRepository
	classRepo  repository.ClassRepository
	llm        GeminiLLMService
}

func NewReportService(
	resultRepo repository.TestResultRepository,
	classRepo repository.ClassRepository,
	llm GeminiLLMService,
) ReportService {
	return &reportService{resultRepo: resultRepo, classRepo: classRepo, llm: llm}
}

func (s *reportService) GenerateProgressReport(ctx context.Context, req dto.ProgressReportRequest) (*dto.ProgressReportResponse, error) {
	from, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be formatted as YYYY-MM-DD", ErrInvalidInput)
	}
	to, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be formatted as YYYY-MM-DD", ErrInvalidInput)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end_date is before start_date", ErrInvalidInput)
	}
	// The window is inclusive of the whole end day.
	to = to.Add(24*time.Hour - time.Nanosecond)

	student, err := s.classRepo.FindProfileByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: student %q", ErrNotFound, req.StudentID)
		}
		return nil, fmt.Errorf("fetching student %q: %w", req.StudentID, err)
	}

	if err := s.requireSharedClass(ctx, req.TeacherID, req.StudentID); err != nil {
		return nil, err
	}

	results, err := s.resultRepo.FindByUserInRange(ctx, req.StudentID, from, to)
	if err != nil {
		log.Error().Err(err).Str("student_id", req.StudentID).Msg("GenerateProgressReport: repository error")
		return nil, fmt.Errorf("fetching results for student %q: %w", req.StudentID, err)
	}

	report, err := s.llm.SynthesizeProgressReport(ctx, student, results, from, to)
	if err != nil {
		return nil, fmt.Errorf("synthesizing progress report: %w", err)
	}

	avg := 0.0
	if len(results) > 0 {
		var sum float64
		for _, r := range results {
			sum += r.Percentage
		}
		avg = sum / float64(len(results))
	}

	log.Info().Str("teacher_id", req.TeacherID).Str("student_id", req.StudentID).Int("test_count", len(results)).Msg("Progress report generated")
	return &dto.ProgressReportResponse{
		Report:            report,
		TestCount:         len(results),
		AveragePercentage: avg,
	}, nil
}

// requireSharedClass verifies the teacher teaches at least one class the
// student is enrolled in.
func (s *reportService) requireSharedClass(ctx context.Context, teacherID, studentID string) error {
	classIDs, err := s.classRepo.ClassIDsForStudent(ctx, studentID)
	if err != nil {
		return fmt.Errorf("fetching classes for student %q: %w", studentID, err)
	}
	if len(classIDs) == 0 {
		return fmt.Errorf("%w: student is not enrolled in any class", ErrNotFound)
	}
	for _, classID := range classIDs {
		ok, err := s.classRepo.TeacherHasClass(ctx, teacherID, classID)
		if err != nil {
			return fmt.Errorf("checking class access: %w", err)
		}
		if ok {
			return nil
		}
	}
	return fmt.Errorf("%w: you do not teach this student", ErrForbidden)
}
