package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// QuestionList stores a flat question set as a jsonb column.
type QuestionList []Question

func (l QuestionList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *QuestionList) Scan(value interface{}) error {
	return scanJSON(value, l, "QuestionList")
}

// PartList stores a grouped question set as a jsonb column.
type PartList []Part

func (l PartList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *PartList) Scan(value interface{}) error {
	return scanJSON(value, l, "PartList")
}

func scanJSON(value interface{}, dest interface{}, kind string) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, sok := value.(string)
		if !sok {
			return fmt.Errorf("unsupported type %T for %s", value, kind)
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, dest)
}

// Test is a practice test. A record holds either a flat Questions list or
// a Parts list, never both; the authoring workflow decides which.
type Test struct {
	ID            string         `gorm:"primarykey" json:"id"`
	Category      string         `json:"category" gorm:"not null;index"` // "IELTS", "Checkpoint", "ESL"
	Title         string         `json:"title" gorm:"not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Difficulty    string         `json:"difficulty" gorm:"not null"` // "Beginner", "Intermediate", "Advanced"
	Duration      int            `json:"duration"`                   // minutes
	AudioFilePath *string        `json:"audio_file_path,omitempty"`
	Questions     QuestionList   `json:"questions,omitempty" gorm:"type:jsonb"`
	Parts         PartList       `json:"parts,omitempty" gorm:"type:jsonb"`
	CreatedBy     *string        `json:"created_by,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// AllQuestions returns the authoritative ordered question set: parts
// flattened in part order then question order, or the flat list. A test
// with neither representation has zero questions.
func (t *Test) AllQuestions() []Question {
	if len(t.Parts) > 0 {
		var all []Question
		for _, p := range t.Parts {
			all = append(all, p.Questions...)
		}
		return all
	}
	return t.Questions
}
