package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer is one user's free-text response to a question. Created once per
// submission and immutable; removed only together with its InterviewResult.
type Answer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	UserID     uint           `json:"user_id" gorm:"not null;index"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Question   Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	AnswerText string         `json:"answer_text" gorm:"type:text;not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
