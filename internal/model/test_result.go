package model

import (
	"time"
)

// TestResult is a persisted graded outcome. The caller of the validation
// endpoint is responsible for saving it once the ScoreReport is in hand.
type TestResult struct {
	ID             string    `gorm:"primarykey" json:"id"`
	TestID         string    `json:"test_id" gorm:"not null;index"`
	TestTitle      string    `json:"test_title" gorm:"not null"`
	TestCategory   string    `json:"test_category" gorm:"not null"`
	UserID         string    `json:"user_id" gorm:"not null;index"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	Answers        AnswerMap `json:"answers" gorm:"type:jsonb"`
	AIAnalysis     *string   `json:"ai_analysis,omitempty" gorm:"type:text"`
	CompletedAt    time.Time `json:"completed_at" gorm:"autoCreateTime;index"`
}
