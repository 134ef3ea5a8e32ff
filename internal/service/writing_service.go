package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dang-hang/CheckPointAI/internal/dto"
	"github.com/dang-hang/CheckPointAI/internal/model"
	"github.com/dang-hang/CheckPointAI/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// WritingService handles the essay-practice flow: prompts, submissions,
// AI grading, and the teacher's follow-up review.
type WritingService interface {
	ListPrompts(ctx context.Context) ([]dto.WritingPromptDTO, error)
	Submit(ctx context.Context, req dto.SubmitWritingRequest) (*dto.WritingSubmissionDTO, error)
	ListStudentSubmissions(ctx context.Context, studentID string) ([]dto.WritingSubmissionDTO, error)
	Grade(ctx context.Context, submissionID, studentID string) (*dto.GradeWritingResponse, error)
	Review(ctx context.Context, submissionID string, req dto.ReviewSubmissionRequest) (*dto.WritingSubmissionDTO, error)
}

type writingService struct {
	promptRepo     repository.WritingPromptRepository
	submissionRepo repository.WritingSubmissionRepository
	llm            GeminiLLMService
}

func NewWritingService(
	promptRepo repository.WritingPromptRepository,
	submissionRepo repository.WritingSubmissionRepository,
	llm GeminiLLMService,
) WritingService {
	return &writingService{promptRepo: promptRepo, submissionRepo: submissionRepo, llm: llm}
}

func (s *writingService) ListPrompts(ctx context.Context) ([]dto.WritingPromptDTO, error) {
	prompts, err := s.promptRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ListPrompts: repository error")
		return nil, fmt.Errorf("fetching writing prompts: %w", err)
	}
	dtos := make([]dto.WritingPromptDTO, 0, len(prompts))
	for i := range prompts {
		var d dto.WritingPromptDTO
		if err := copier.Copy(&d, &prompts[i]); err != nil {
			log.Error().Err(err).Str("prompt_id", prompts[i].ID).Msg("Failed to map prompt to DTO")
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

// countWords matches what the editor shows the student while typing.
func countWords(content string) int {
	return len(strings.Fields(content))
}

func (s *writingService) Submit(ctx context.Context, req dto.SubmitWritingRequest) (*dto.WritingSubmissionDTO, error) {
	if _, err := s.promptRepo.FindByID(ctx, req.PromptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: writing prompt %q", ErrNotFound, req.PromptID)
		}
		return nil, fmt.Errorf("fetching prompt %q: %w", req.PromptID, err)
	}

	sub := &model.WritingSubmission{
		ID:        uuid.NewString(),
		PromptID:  req.PromptID,
		StudentID: req.StudentID,
		Content:   req.Content,
		WordCount: countWords(req.Content),
		Status:    model.SubmissionStatusSubmitted,
	}
	if err := s.submissionRepo.Create(ctx, sub); err != nil {
		log.Error().Err(err).Str("prompt_id", req.PromptID).Msg("Submit: failed to persist submission")
		return nil, fmt.Errorf("saving submission: %w", err)
	}
	log.Info().Str("submission_id", sub.ID).Str("student_id", sub.StudentID).Int("words", sub.WordCount).Msg("Writing submission received")
	return submissionToDTO(sub), nil
}

func (s *writingService) ListStudentSubmissions(ctx context.Context, studentID string) ([]dto.WritingSubmissionDTO, error) {
	subs, err := s.submissionRepo.FindAllByStudent(ctx, studentID)
	if err != nil {
		log.Error().Err(err).Str("student_id", studentID).Msg("ListStudentSubmissions: repository error")
		return nil, fmt.Errorf("fetching submissions for student %q: %w", studentID, err)
	}
	dtos := make([]dto.WritingSubmissionDTO, 0, len(subs))
	for i := range subs {
		dtos = append(dtos, *submissionToDTO(&subs[i]))
	}
	return dtos, nil
}

func (s *writingService) Grade(ctx context.Context, submissionID, studentID string) (*dto.GradeWritingResponse, error) {
	sub, err := s.submissionRepo.FindByIDWithPrompt(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: submission %q", ErrNotFound, submissionID)
		}
		return nil, fmt.Errorf("fetching submission %q: %w", submissionID, err)
	}
	if studentID != "" && sub.StudentID != studentID {
		return nil, fmt.Errorf("%w: submission %q does not belong to this student", ErrForbidden, submissionID)
	}

	feedback, grade, err := s.llm.GradeWriting(ctx, &sub.Prompt, sub)
	if err != nil {
		return nil, fmt.Errorf("grading submission %q: %w", submissionID, err)
	}

	sub.AIFeedback = &feedback
	sub.AIGrade = &grade
	sub.Status = model.SubmissionStatusAIGraded
	if err := s.submissionRepo.Update(ctx, sub); err != nil {
		log.Error().Err(err).Str("submission_id", submissionID).Msg("Grade: failed to store AI feedback")
		return nil, fmt.Errorf("saving AI feedback for submission %q: %w", submissionID, err)
	}

	log.Info().Str("submission_id", submissionID).Float64("grade", grade).Msg("Writing submission AI-graded")
	return &dto.GradeWritingResponse{Feedback: feedback, Grade: grade, Status: sub.Status}, nil
}

func (s *writingService) Review(ctx context.Context, submissionID string, req dto.ReviewSubmissionRequest) (*dto.WritingSubmissionDTO, error) {
	sub, err := s.submissionRepo.FindByIDWithPrompt(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: submission %q", ErrNotFound, submissionID)
		}
		return nil, fmt.Errorf("fetching submission %q: %w", submissionID, err)
	}

	grade := req.TeacherGrade
	sub.TeacherGrade = &grade
	if req.TeacherNotes != "" {
		notes := req.TeacherNotes
		sub.TeacherNotes = &notes
	}
	sub.Status = model.SubmissionStatusTeacherReviewed
	if err := s.submissionRepo.Update(ctx, sub); err != nil {
		log.Error().Err(err).Str("submission_id", submissionID).Msg("Review: failed to store teacher review")
		return nil, fmt.Errorf("saving review for submission %q: %w", submissionID, err)
	}

	log.Info().Str("submission_id", submissionID).Str("teacher_id", req.TeacherID).Msg("Writing submission reviewed")
	return submissionToDTO(sub), nil
}

func submissionToDTO(sub *model.WritingSubmission) *dto.WritingSubmissionDTO {
	var out dto.WritingSubmissionDTO
	if err := copier.Copy(&out, sub); err != nil {
		log.Error().Err(err).Str("submission_id", sub.ID).Msg("Failed to map submission to DTO")
	}
	return &out
}
