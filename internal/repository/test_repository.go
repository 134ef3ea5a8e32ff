package repository

import (
	"context"

	"github.com/dang-hang/CheckPointAI/internal/model"
	"gorm.io/gorm"
)

// TestRepository is the learner-scoped handle: callers of these methods
// must never see answer keys, so the service layer sanitizes what it
// returns from here before it leaves the API.
type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id string) (*model.Test, error)
	FindAll(ctx context.Context) ([]model.Test, error)
	FindAllByCategory(ctx context.Context, category string) ([]model.Test, error)
}

// PrivilegedTestRepository reads the full test record including correct
// answers. Only grading-side services receive this handle; it is the
// server-side equivalent of the elevated service credential that bypasses
// the learner's row-level restrictions.
type PrivilegedTestRepository interface {
	FindByIDWithAnswers(ctx context.Context, id string) (*model.Test, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id string) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAll(ctx context.Context) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tests).Error
	return tests, err
}

func (r *testRepository) FindAllByCategory(ctx context.Context, category string) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.WithContext(ctx).Where("category = ?", category).Order("created_at DESC").Find(&tests).Error
	return tests, err
}

type privilegedTestRepository struct {
	db *gorm.DB
}

func NewPrivilegedTestRepository(db *gorm.DB) PrivilegedTestRepository {
	return &privilegedTestRepository{db: db}
}

func (r *privilegedTestRepository) FindByIDWithAnswers(ctx context.Context, id string) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}
