package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/saripudin14/siwate/internal/dto"
	"github.com/saripudin14/siwate/internal/model"
	"github.com/saripudin14/siwate/internal/repository"
	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetAllQuestions() ([]dto.QuestionResponse, error)
	GetRandomQuestion() (*dto.QuestionResponse, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question := model.Question{QuestionText: req.QuestionText}
	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, err
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) GetAllQuestions() ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	var resp []dto.QuestionResponse
	copier.Copy(&resp, &questions)
	return resp, nil
}

// GetRandomQuestion picks the next interview prompt. With an empty question
// bank it returns ErrNoQuestions rather than a bare record-not-found.
func (s *questionService) GetRandomQuestion() (*dto.QuestionResponse, error) {
	question, err := s.repo.FindRandom()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoQuestions
		}
		return nil, err
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) DeleteQuestion(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
