package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/saripudin14/siwate/internal/dto"
	"github.com/saripudin14/siwate/internal/ml"
	"github.com/saripudin14/siwate/internal/model"
	"github.com/saripudin14/siwate/internal/repository"
	"gorm.io/gorm"
)

// MinTrainingExamples is the smallest dataset the trainer will accept.
const MinTrainingExamples = 5

type DatasetService interface {
	AddExample(req dto.CreateDatasetRequest) (*dto.DatasetResponse, error)
	GetAllExamples() ([]dto.DatasetResponse, error)
	DeleteExample(id uint) error
	Train() (*dto.TrainResponse, error)
}

type datasetService struct {
	repo      repository.DatasetRepository
	regressor LocalRegressorService
}

func NewDatasetService(repo repository.DatasetRepository, regressor LocalRegressorService) DatasetService {
	return &datasetService{repo: repo, regressor: regressor}
}

func (s *datasetService) AddExample(req dto.CreateDatasetRequest) (*dto.DatasetResponse, error) {
	example := model.Dataset{
		AnswerText: req.AnswerText,
		Score:      req.Score,
	}
	if err := s.repo.Create(&example); err != nil {
		log.Error().Err(err).Msg("Failed to create dataset example")
		return nil, err
	}
	var resp dto.DatasetResponse
	copier.Copy(&resp, &example)
	return &resp, nil
}

func (s *datasetService) GetAllExamples() ([]dto.DatasetResponse, error) {
	examples, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	var resp []dto.DatasetResponse
	copier.Copy(&resp, &examples)
	return resp, nil
}

func (s *datasetService) DeleteExample(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDatasetNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}

// Train fits a fresh regression model on every stored example and swaps it
// into the local scorer. The dataset size is checked before any fitting so an
// undersized corpus never disturbs the currently active model.
func (s *datasetService) Train() (*dto.TrainResponse, error) {
	rows, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < MinTrainingExamples {
		return nil, ErrDatasetTooSmall
	}

	examples := make([]ml.Example, len(rows))
	for i, row := range rows {
		examples[i] = ml.Example{Text: row.AnswerText, Score: float64(row.Score)}
	}

	if err := s.regressor.Train(examples); err != nil {
		log.Error().Err(err).Msg("Model training failed")
		return nil, err
	}

	log.Info().Int("examples", len(examples)).Msg("Model trained and activated")
	return &dto.TrainResponse{
		Examples: len(examples),
		Message:  "model trained successfully",
	}, nil
}
