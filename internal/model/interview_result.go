package model

import (
	"time"

	"gorm.io/gorm"
)

// InterviewResult is the judged outcome of one answer. Created exactly once,
// in the same transaction as its Answer. Score is always within [0,100] and
// Feedback is never empty (degraded scoring paths write a diagnostic string).
type InterviewResult struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	AnswerID  uint           `json:"answer_id" gorm:"not null;index"`
	Answer    Answer         `json:"answer,omitempty" gorm:"foreignKey:AnswerID"`
	Score     int            `json:"score" gorm:"not null"`
	Feedback  string         `json:"feedback" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
