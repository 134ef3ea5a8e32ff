package repository

import (
	"context"

	"github.com/dang-hang/CheckPointAI/internal/model"
	"gorm.io/gorm"
)

type WritingPromptRepository interface {
	Create(ctx context.Context, prompt *model.WritingPrompt) error
	FindByID(ctx context.Context, id string) (*model.WritingPrompt, error)
	FindAll(ctx context.Context) ([]model.WritingPrompt, error)
}

type writingPromptRepository struct {
	db *gorm.DB
}

func NewWritingPromptRepository(db *gorm.DB) WritingPromptRepository {
	return &writingPromptRepository{db: db}
}

func (r *writingPromptRepository) Create(ctx context.Context, prompt *model.WritingPrompt) error {
	return r.db.WithContext(ctx).Create(prompt).Error
}

func (r *writingPromptRepository) FindByID(ctx context.Context, id string) (*model.WritingPrompt, error) {
	var prompt model.WritingPrompt
	if err := r.db.WithContext(ctx).First(&prompt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (r *writingPromptRepository) FindAll(ctx context.Context) ([]model.WritingPrompt, error) {
	var prompts []model.WritingPrompt
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&prompts).Error
	return prompts, err
}

type WritingSubmissionRepository interface {
	Create(ctx context.Context, sub *model.WritingSubmission) error
	FindByIDWithPrompt(ctx context.Context, id string) (*model.WritingSubmission, error)
	FindAllByStudent(ctx context.Context, studentID string) ([]model.WritingSubmission, error)
	Update(ctx context.Context, sub *model.WritingSubmission) error
}

type writingSubmissionRepository struct {
	db *gorm.DB
}

func NewWritingSubmissionRepository(db *gorm.DB) WritingSubmissionRepository {
	return &writingSubmissionRepository{db: db}
}

func (r *writingSubmissionRepository) Create(ctx context.Context, sub *model.WritingSubmission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *writingSubmissionRepository) FindByIDWithPrompt(ctx context.Context, id string) (*model.WritingSubmission, error) {
	var sub model.WritingSubmission
	if err := r.db.WithContext(ctx).Preload("Prompt").First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *writingSubmissionRepository) FindAllByStudent(ctx context.Context, studentID string) ([]model.WritingSubmission, error) {
	var subs []model.WritingSubmission
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("submitted_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *writingSubmissionRepository) Update(ctx context.Context, sub *model.WritingSubmission) error {
	return r.db.WithContext(ctx).Save(sub).Error
}
