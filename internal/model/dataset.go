package model

import (
	"time"

	"gorm.io/gorm"
)

// Dataset is a labeled training example for the local regression backend:
// an answer text with a human-assigned score. Curated by administrators,
// independent of Answer/InterviewResult rows.
type Dataset struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	AnswerText string         `json:"answer_text" gorm:"type:text;not null"`
	Score      int            `json:"score" gorm:"not null"` // 0..100
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
