package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dang-hang/CheckPointAI/internal/dto"
	"github.com/dang-hang/CheckPointAI/internal/model"
	"github.com/dang-hang/CheckPointAI/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ClassService manages teaching groups and their rosters. Every mutating
// operation checks that the acting teacher is assigned to the class.
type ClassService interface {
	CreateClass(ctx context.Context, req dto.CreateClassRequest) (*dto.ClassDTO, error)
	ListClasses(ctx context.Context, teacherID string) ([]dto.ClassDTO, error)
	Roster(ctx context.Context, teacherID, classID string) ([]dto.StudentDTO, error)
	AddStudent(ctx context.Context, classID string, req dto.AddStudentRequest) (*dto.AddStudentResponse, error)
}

type classService struct {
	classRepo repository.ClassRepository
}

func NewClassService(classRepo repository.ClassRepository) ClassService {
	return &classService{classRepo: classRepo}
}

func (s *classService) CreateClass(ctx context.Context, req dto.CreateClassRequest) (*dto.ClassDTO, error) {
	class := &model.Class{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.classRepo.Create(ctx, class); err != nil {
		log.Error().Err(err).Str("teacher_id", req.TeacherID).Msg("CreateClass: failed to create class")
		return nil, fmt.Errorf("creating class: %w", err)
	}
	if err := s.classRepo.AssignTeacher(ctx, req.TeacherID, class.ID); err != nil {
		log.Error().Err(err).Str("class_id", class.ID).Msg("CreateClass: failed to assign teacher")
		return nil, fmt.Errorf("assigning teacher to class: %w", err)
	}

	log.Info().Str("class_id", class.ID).Str("teacher_id", req.TeacherID).Msg("Class created")
	return &dto.ClassDTO{ID: class.ID, Name: class.Name, Description: class.Description, CreatedAt: class.CreatedAt}, nil
}

func (s *classService) ListClasses(ctx context.Context, teacherID string) ([]dto.ClassDTO, error) {
	classes, err := s.classRepo.FindByTeacher(ctx, teacherID)
	if err != nil {
		log.Error().Err(err).Str("teacher_id", teacherID).Msg("ListClasses: repository error")
		return nil, fmt.Errorf("fetching classes: %w", err)
	}
	dtos := make([]dto.ClassDTO, 0, len(classes))
	for _, c := range classes {
		dtos = append(dtos, dto.ClassDTO{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt})
	}
	return dtos, nil
}

func (s *classService) Roster(ctx context.Context, teacherID, classID string) ([]dto.StudentDTO, error) {
	if err := s.requireTeacherAccess(ctx, teacherID, classID); err != nil {
		return nil, err
	}
	students, err := s.classRepo.StudentsInClass(ctx, classID)
	if err != nil {
		log.Error().Err(err).Str("class_id", classID).Msg("Roster: repository error")
		return nil, fmt.Errorf("fetching roster: %w", err)
	}
	dtos := make([]dto.StudentDTO, 0, len(students))
	for _, p := range students {
		dtos = append(dtos, dto.StudentDTO{ID: p.ID, Email: p.Email, FullName: p.FullName})
	}
	return dtos, nil
}

func (s *classService) AddStudent(ctx context.Context, classID string, req dto.AddStudentRequest) (*dto.AddStudentResponse, error) {
	if err := s.requireTeacherAccess(ctx, req.TeacherID, classID); err != nil {
		return nil, err
	}

	student, err := s.classRepo.FindProfileByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no user found with that email, make sure they have signed up first", ErrNotFound)
		}
		return nil, fmt.Errorf("looking up student by email: %w", err)
	}

	enrolled, err := s.classRepo.IsStudentEnrolled(ctx, student.ID, classID)
	if err != nil {
		return nil, fmt.Errorf("checking enrollment: %w", err)
	}
	if enrolled {
		return nil, fmt.Errorf("%w: this student is already enrolled in the class", ErrConflict)
	}

	if err := s.classRepo.EnrollStudent(ctx, student.ID, classID); err != nil {
		log.Error().Err(err).Str("class_id", classID).Str("student_id", student.ID).Msg("AddStudent: failed to enroll")
		return nil, fmt.Errorf("enrolling student: %w", err)
	}

	log.Info().Str("class_id", classID).Str("student_id", student.ID).Msg("Student added to class")
	return &dto.AddStudentResponse{
		Success: true,
		Student: dto.StudentDTO{ID: student.ID, Email: student.Email, FullName: student.FullName},
	}, nil
}

func (s *classService) requireTeacherAccess(ctx context.Context, teacherID, classID string) error {
	ok, err := s.classRepo.TeacherHasClass(ctx, teacherID, classID)
	if err != nil {
		return fmt.Errorf("checking class access: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: you do not have access to this class", ErrForbidden)
	}
	return nil
}
