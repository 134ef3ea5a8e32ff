package dto

import "time"

type CreateClassRequest struct {
	TeacherID   string `json:"teacher_id" binding:"required"`
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
}

type ClassDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type StudentDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type AddStudentRequest struct {
	TeacherID string `json:"teacher_id" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type AddStudentResponse struct {
	Success bool       `json:"success"`
	Student StudentDTO `json:"student"`
}

// ProgressReportRequest bounds a reporting window; EndDate is inclusive to
// the end of that day.
type ProgressReportRequest struct {
	TeacherID string `json:"teacher_id" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" binding:"required"`   // YYYY-MM-DD
}

type ProgressReportResponse struct {
	Report            string  `json:"report"`
	TestCount         int     `json:"test_count"`
	AveragePercentage float64 `json:"average_percentage"`
}
