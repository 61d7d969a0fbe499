package model

import (
	"time"

	"gorm.io/gorm"
)

// Question is an interview prompt created by an administrator.
// Questions are immutable after creation; they are only ever deleted.
type Question struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	QuestionText string         `json:"question_text" gorm:"type:text;not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
