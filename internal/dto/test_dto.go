package dto

import (
	"time"

	"github.com/dang-hang/CheckPointAI/internal/model"
)

// ValidateAnswersRequest carries a learner's submission. The correct
// answers are never part of this payload; they are re-read server-side.
type ValidateAnswersRequest struct {
	UserAnswers map[string]model.Answer `json:"userAnswers" binding:"required"`
}

// TestSummaryDTO lists a test without exposing its content.
type TestSummaryDTO struct {
	ID            string    `json:"id"`
	Category      string    `json:"category"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Difficulty    string    `json:"difficulty"`
	Duration      int       `json:"duration"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// PublicQuestionDTO is a question as shown to a learner taking the test:
// no correct answer, no explanation.
type PublicQuestionDTO struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
}

type PublicPartDTO struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Context   string              `json:"context,omitempty"`
	Questions []PublicQuestionDTO `json:"questions"`
}

// TestDetailDTO is the sanitized full view of a test for test-taking.
type TestDetailDTO struct {
	ID            string              `json:"id"`
	Category      string              `json:"category"`
	Title         string              `json:"title"`
	Description   string              `json:"description,omitempty"`
	Difficulty    string              `json:"difficulty"`
	Duration      int                 `json:"duration"`
	AudioFilePath *string             `json:"audio_file_path,omitempty"`
	Questions     []PublicQuestionDTO `json:"questions,omitempty"`
	Parts         []PublicPartDTO     `json:"parts,omitempty"`
}
