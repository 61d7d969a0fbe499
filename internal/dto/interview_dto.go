package dto

import "time"

type QuestionResponse struct {
	ID           uint      `json:"id"`
	QuestionText string    `json:"question_text"`
	CreatedAt    time.Time `json:"created_at"`
}

type SubmitAnswerRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	AnswerText string `json:"answer_text" binding:"required"`
}

// InterviewResultResponse is the judged outcome shown to the answer's owner.
type InterviewResultResponse struct {
	ID           uint      `json:"id"`
	AnswerID     uint      `json:"answer_id"`
	QuestionID   uint      `json:"question_id"`
	QuestionText string    `json:"question_text,omitempty"`
	AnswerText   string    `json:"answer_text"`
	Score        int       `json:"score"`
	Feedback     string    `json:"feedback"`
	CreatedAt    time.Time `json:"created_at"`
}
