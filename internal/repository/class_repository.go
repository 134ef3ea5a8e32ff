package repository

import (
	"context"
	"strings"

	"github.com/dang-hang/CheckPointAI/internal/model"
	"gorm.io/gorm"
)

type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	FindByTeacher(ctx context.Context, teacherID string) ([]model.Class, error)
	TeacherHasClass(ctx context.Context, teacherID, classID string) (bool, error)
	AssignTeacher(ctx context.Context, teacherID, classID string) error
	StudentsInClass(ctx context.Context, classID string) ([]model.Profile, error)
	IsStudentEnrolled(ctx context.Context, studentID, classID string) (bool, error)
	EnrollStudent(ctx context.Context, studentID, classID string) error
	ClassIDsForStudent(ctx context.Context, studentID string) ([]string, error)
	FindProfileByEmail(ctx context.Context, email string) (*model.Profile, error)
	FindProfileByID(ctx context.Context, id string) (*model.Profile, error)
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) FindByTeacher(ctx context.Context, teacherID string) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.WithContext(ctx).
		Joins("JOIN teacher_classes ON teacher_classes.class_id = classes.id").
		Where("teacher_classes.teacher_id = ?", teacherID).
		Order("classes.created_at DESC").
		Find(&classes).Error
	return classes, err
}

func (r *classRepository) TeacherHasClass(ctx context.Context, teacherID, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TeacherClass{}).
		Where("teacher_id = ? AND class_id = ?", teacherID, classID).
		Count(&count).Error
	return count > 0, err
}

func (r *classRepository) AssignTeacher(ctx context.Context, teacherID, classID string) error {
	return r.db.WithContext(ctx).Create(&model.TeacherClass{TeacherID: teacherID, ClassID: classID}).Error
}

func (r *classRepository) StudentsInClass(ctx context.Context, classID string) ([]model.Profile, error) {
	var students []model.Profile
	err := r.db.WithContext(ctx).
		Joins("JOIN student_classes ON student_classes.student_id = profiles.id").
		Where("student_classes.class_id = ?", classID).
		Order("profiles.full_name ASC").
		Find(&students).Error
	return students, err
}

func (r *classRepository) IsStudentEnrolled(ctx context.Context, studentID, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.StudentClass{}).
		Where("student_id = ? AND class_id = ?", studentID, classID).
		Count(&count).Error
	return count > 0, err
}

func (r *classRepository) EnrollStudent(ctx context.Context, studentID, classID string) error {
	return r.db.WithContext(ctx).Create(&model.StudentClass{StudentID: studentID, ClassID: classID}).Error
}

func (r *classRepository) ClassIDsForStudent(ctx context.Context, studentID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.StudentClass{}).
		Where("student_id = ?", studentID).
		Pluck("class_id", &ids).Error
	return ids, err
}

func (r *classRepository) FindProfileByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *classRepository) FindProfileByID(ctx context.Context, id string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
