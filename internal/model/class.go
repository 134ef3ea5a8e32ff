package model

import (
	"time"

	"gorm.io/gorm"
)

// Class is a teaching group; membership is kept in the join tables below.
type Class struct {
	ID          string         `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Profile mirrors the account record managed by the external auth
// provider; only the fields this service reads are modeled.
type Profile struct {
	ID        string    `gorm:"primarykey" json:"id"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role" gorm:"default:'student'"` // "student", "teacher", "admin"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StudentClass enrolls a student in a class.
type StudentClass struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StudentID string    `json:"student_id" gorm:"not null;index:idx_student_class,unique"`
	ClassID   string    `json:"class_id" gorm:"not null;index:idx_student_class,unique"`
	CreatedAt time.Time `json:"created_at"`
}

// TeacherClass assigns a teacher to a class.
type TeacherClass struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	TeacherID string    `json:"teacher_id" gorm:"not null;index:idx_teacher_class,unique"`
	ClassID   string    `json:"class_id" gorm:"not null;index:idx_teacher_class,unique"`
	CreatedAt time.Time `json:"created_at"`
}
