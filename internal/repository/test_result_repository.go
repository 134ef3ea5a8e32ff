package repository

import (
	"context"
	"time"

	"github.com/dang-hang/CheckPointAI/internal/model"
	"gorm.io/gorm"
)

type TestResultRepository interface {
	Create(ctx context.Context, result *model.TestResult) error
	FindByID(ctx context.Context, id string) (*model.TestResult, error)
	FindAllByUser(ctx context.Context, userID string) ([]model.TestResult, error)
	FindByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]model.TestResult, error)
	UpdateAnalysis(ctx context.Context, id string, analysis string) error
}

type testResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) TestResultRepository {
	return &testResultRepository{db: db}
}

func (r *testResultRepository) Create(ctx context.Context, result *model.TestResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *testResultRepository) FindByID(ctx context.Context, id string) (*model.TestResult, error) {
	var result model.TestResult
	if err := r.db.WithContext(ctx).First(&result, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *testResultRepository) FindAllByUser(ctx context.Context, userID string) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&results).Error
	return results, err
}

func (r *testResultRepository) FindByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND completed_at >= ? AND completed_at <= ?", userID, from, to).
		Order("completed_at ASC").
		Find(&results).Error
	return results, err
}

func (r *testResultRepository) UpdateAnalysis(ctx context.Context, id string, analysis string) error {
	return r.db.WithContext(ctx).
		Model(&model.TestResult{}).
		Where("id = ?", id).
		Update("ai_analysis", analysis).Error
}
