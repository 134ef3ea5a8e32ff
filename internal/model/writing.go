package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	SubmissionStatusSubmitted       = "submitted"
	SubmissionStatusAIGraded        = "ai_graded"
	SubmissionStatusTeacherReviewed = "teacher_reviewed"
)

// WritingPrompt is an authored writing task with its grading rubric.
type WritingPrompt struct {
	ID         string         `gorm:"primarykey" json:"id"`
	Title      string         `json:"title" gorm:"not null"`
	Prompt     string         `json:"prompt" gorm:"type:text;not null"`
	Rubric     string         `json:"rubric" gorm:"type:text;not null"`
	Difficulty string         `json:"difficulty" gorm:"not null"`
	TimeLimit  int            `json:"time_limit" gorm:"default:30"` // minutes
	CreatedBy  *string        `json:"created_by,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// WritingSubmission is a student's essay for a prompt, with AI and teacher
// grading layered on after submission.
type WritingSubmission struct {
	ID           string        `gorm:"primarykey" json:"id"`
	PromptID     string        `json:"prompt_id" gorm:"not null;index"`
	Prompt       WritingPrompt `json:"prompt,omitempty" gorm:"foreignKey:PromptID"`
	StudentID    string        `json:"student_id" gorm:"not null;index"`
	Content      string        `json:"content" gorm:"type:text;not null"`
	WordCount    int           `json:"word_count"`
	Status       string        `json:"status" gorm:"default:'submitted'"`
	AIFeedback   *string       `json:"ai_feedback,omitempty" gorm:"type:text"`
	AIGrade      *float64      `json:"ai_grade,omitempty"`
	TeacherGrade *float64      `json:"teacher_grade,omitempty"`
	TeacherNotes *string       `json:"teacher_notes,omitempty" gorm:"type:text"`
	SubmittedAt  time.Time     `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
