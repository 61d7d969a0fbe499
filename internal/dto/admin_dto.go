package dto

import "time"

// CreateQuestionRequest adds a new interview question. Questions are
// immutable once created, so there is no update counterpart.
type CreateQuestionRequest struct {
	QuestionText string `json:"question_text" binding:"required"`
}

// CreateDatasetRequest adds a labeled example for local-model training.
type CreateDatasetRequest struct {
	AnswerText string `json:"answer_text" binding:"required"`
	Score      int    `json:"score" binding:"min=0,max=100"`
}

type DatasetResponse struct {
	ID         uint      `json:"id"`
	AnswerText string    `json:"answer_text"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
}

// TrainResponse reports the outcome of a retraining run.
type TrainResponse struct {
	Examples int    `json:"examples"`
	Message  string `json:"message"`
}
