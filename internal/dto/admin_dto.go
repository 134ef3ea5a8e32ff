package dto

import "github.com/dang-hang/CheckPointAI/internal/model"

// QuestionCreateDTO mirrors the stored question shape; CorrectAnswer
// accepts either a legacy option index or answer text.
type QuestionCreateDTO struct {
	ID            string          `json:"id" binding:"required"`
	Type          string          `json:"type" binding:"required,oneof=multiple-choice fill-blank true-false"`
	Question      string          `json:"question" binding:"required"`
	Options       []string        `json:"options"`
	CorrectAnswer model.AnswerKey `json:"correctAnswer"`
	Explanation   string          `json:"explanation"`
}

type PartCreateDTO struct {
	ID        string              `json:"id" binding:"required"`
	Title     string              `json:"title" binding:"required"`
	Context   string              `json:"context"`
	Questions []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// TestCreateDTO creates a test holding either a flat question list or a
// parts list, never both.
type TestCreateDTO struct {
	ID          string              `json:"id"`
	Category    string              `json:"category" binding:"required,oneof=IELTS Checkpoint ESL"`
	Title       string              `json:"title" binding:"required,max=200"`
	Description string              `json:"description"`
	Difficulty  string              `json:"difficulty" binding:"required,oneof=Beginner Intermediate Advanced"`
	Duration    int                 `json:"duration" binding:"required,gt=0"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
	Parts       []PartCreateDTO     `json:"parts" binding:"omitempty,dive"`
	CreatedBy   *string             `json:"created_by"`
}

type GenerateQuestionsRequest struct {
	Subject       string `json:"subject" binding:"required,max=100"`
	Level         string `json:"level" binding:"required,oneof=Beginner Intermediate Advanced"`
	QuestionCount int    `json:"question_count" binding:"required,min=1,max=20"`
	QuestionType  string `json:"question_type" binding:"required,oneof=multiple-choice fill-blank mixed"`
	Category      string `json:"category" binding:"required,oneof=Reading Listening Writing Speaking Grammar Vocabulary Logic 'Problem Solving' 'Critical Thinking'"`
	Description   string `json:"description" binding:"max=1000"`
}

type GeneratedQuestionsResponse struct {
	Questions []model.Question `json:"questions"`
}
