package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/saripudin14/siwate/internal/dto"
	"github.com/saripudin14/siwate/internal/model"
	"github.com/saripudin14/siwate/internal/repository"
	"gorm.io/gorm"
)

// InterviewService runs the answer-scoring workflow: validate, score,
// persist answer and judged result together, expose owner-scoped reads.
type InterviewService interface {
	Submit(ctx context.Context, userID uint, req dto.SubmitAnswerRequest) (*dto.InterviewResultResponse, error)
	GetResult(id uint, userID uint) (*dto.InterviewResultResponse, error)
	GetHistory(userID uint) ([]dto.InterviewResultResponse, error)
	DeleteResult(id uint, userID uint) error
}

type interviewService struct {
	questionRepo repository.QuestionRepository
	resultRepo   repository.ResultRepository
	scorer       ScoringService
	db           *gorm.DB // transactions spanning answer + result
}

func NewInterviewService(
	questionRepo repository.QuestionRepository,
	resultRepo repository.ResultRepository,
	scorer ScoringService,
	db *gorm.DB,
) InterviewService {
	return &interviewService{
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		scorer:       scorer,
		db:           db,
	}
}

// Submit validates the submission, scores it with the active backend and
// persists the Answer together with its InterviewResult in one transaction,
// so a crash can never leave an answer without a judged result.
func (s *interviewService) Submit(ctx context.Context, userID uint, req dto.SubmitAnswerRequest) (*dto.InterviewResultResponse, error) {
	if !hasText(req.AnswerText) {
		return nil, ErrEmptyAnswer
	}

	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("loading question %d: %w", req.QuestionID, err)
	}

	// The backend never fails a submission: every internal problem comes
	// back as a degraded (0, diagnostic) pair. A missing credential is the
	// one exception and surfaces as a configuration error.
	score, feedback, err := s.scorer.Score(ctx, question.QuestionText, req.AnswerText)
	if err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Msg("Scoring backend is misconfigured")
		return nil, err
	}

	answer := model.Answer{
		UserID:     userID,
		QuestionID: question.ID,
		AnswerText: req.AnswerText,
	}
	result := model.InterviewResult{
		UserID:   userID,
		Score:    roundScore(score),
		Feedback: feedback,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&answer).Error; err != nil {
			return fmt.Errorf("persisting answer: %w", err)
		}
		result.AnswerID = answer.ID
		if err := tx.Create(&result).Error; err != nil {
			return fmt.Errorf("persisting result: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("questionID", question.ID).Msg("Failed to persist submission")
		return nil, err
	}

	log.Info().Uint("resultID", result.ID).Uint("userID", userID).Int("score", result.Score).Msg("Answer scored")

	result.Answer = answer
	result.Answer.Question = *question
	return resultToDTO(&result), nil
}

func (s *interviewService) GetResult(id uint, userID uint) (*dto.InterviewResultResponse, error) {
	result, err := s.resultRepo.FindByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}
	return resultToDTO(result), nil
}

func (s *interviewService) GetHistory(userID uint) ([]dto.InterviewResultResponse, error) {
	results, err := s.resultRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	history := make([]dto.InterviewResultResponse, 0, len(results))
	for i := range results {
		history = append(history, *resultToDTO(&results[i]))
	}
	return history, nil
}

// DeleteResult removes a result and its owning answer in one transaction.
// Results belonging to another user look like missing ones.
func (s *interviewService) DeleteResult(id uint, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var result model.InterviewResult
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&result).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResultNotFound
			}
			return err
		}
		if err := tx.Delete(&model.Answer{}, result.AnswerID).Error; err != nil {
			return fmt.Errorf("deleting answer: %w", err)
		}
		if err := tx.Delete(&result).Error; err != nil {
			return fmt.Errorf("deleting result: %w", err)
		}
		return nil
	})
}

func resultToDTO(result *model.InterviewResult) *dto.InterviewResultResponse {
	var resp dto.InterviewResultResponse
	copier.Copy(&resp, result)
	resp.QuestionID = result.Answer.QuestionID
	resp.QuestionText = result.Answer.Question.QuestionText
	resp.AnswerText = result.Answer.AnswerText
	return &resp
}
