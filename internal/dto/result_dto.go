package dto

import (
	"time"

	"github.com/dang-hang/CheckPointAI/internal/model"
)

// SaveResultRequest records a completed test session. The score is not
// accepted from the client; it is recomputed server-side from the stored
// test before the row is written.
type SaveResultRequest struct {
	TestID      string                  `json:"test_id" binding:"required,max=100"`
	UserID      string                  `json:"user_id" binding:"required"`
	UserAnswers map[string]model.Answer `json:"userAnswers" binding:"required"`
}

type TestResultDTO struct {
	ID             string          `json:"id"`
	TestID         string          `json:"test_id"`
	TestTitle      string          `json:"test_title"`
	TestCategory   string          `json:"test_category"`
	UserID         string          `json:"user_id"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"total_questions"`
	Percentage     float64         `json:"percentage"`
	Answers        model.AnswerMap `json:"answers,omitempty"`
	AIAnalysis     *string         `json:"ai_analysis,omitempty"`
	CompletedAt    time.Time       `json:"completed_at"`
}

type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}
