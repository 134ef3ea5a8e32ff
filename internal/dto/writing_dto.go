package dto

import "time"

type WritingPromptDTO struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Prompt     string    `json:"prompt"`
	Rubric     string    `json:"rubric"`
	Difficulty string    `json:"difficulty"`
	TimeLimit  int       `json:"time_limit"`
	CreatedAt  time.Time `json:"created_at"`
}

type SubmitWritingRequest struct {
	PromptID  string `json:"prompt_id" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

type WritingSubmissionDTO struct {
	ID           string    `json:"id"`
	PromptID     string    `json:"prompt_id"`
	StudentID    string    `json:"student_id"`
	Content      string    `json:"content"`
	WordCount    int       `json:"word_count"`
	Status       string    `json:"status"`
	AIFeedback   *string   `json:"ai_feedback,omitempty"`
	AIGrade      *float64  `json:"ai_grade,omitempty"`
	TeacherGrade *float64  `json:"teacher_grade,omitempty"`
	TeacherNotes *string   `json:"teacher_notes,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type GradeWritingResponse struct {
	Feedback string  `json:"feedback"`
	Grade    float64 `json:"grade"`
	Status   string  `json:"status"`
}

type ReviewSubmissionRequest struct {
	TeacherID    string  `json:"teacher_id" binding:"required"`
	TeacherGrade float64 `json:"teacher_grade" binding:"required,gte=0,lte=100"`
	TeacherNotes string  `json:"teacher_notes"`
}

type TutorChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type TutorChatResponse struct {
	Response string `json:"response"`
}
