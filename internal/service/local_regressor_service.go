package service

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/saripudin14/siwate/config"
	"github.com/saripudin14/siwate/internal/ml"
)

// LocalRegressorService is the legacy scoring backend: a locally fitted
// text regression instead of a remote model call. It only produces a
// number; feedback comes from fixed score buckets.
type LocalRegressorService interface {
	ScoringService
	// Train fits a new model and atomically replaces the active one.
	// On failure the previous model, if any, stays in place.
	Train(examples []ml.Example) error
}

type localRegressorService struct {
	modelPath string
	// model is read on every prediction and replaced only by Train.
	// Each predict works against one consistent handle; a predict racing
	// a swap may use either the old or the new model.
	model atomic.Pointer[ml.Model]
}

func NewLocalRegressorService(cfg *config.Config) LocalRegressorService {
	s := &localRegressorService{modelPath: cfg.Scoring.ModelPath}

	if _, err := os.Stat(s.modelPath); err == nil {
		m, err := ml.Load(s.modelPath)
		if err != nil {
			log.Warn().Err(err).Str("path", s.modelPath).Msg("Could not load model artifact, scoring will return 0 until retrained")
		} else {
			s.model.Store(m)
			log.Info().Str("path", s.modelPath).Int("vocabulary", len(m.Vocabulary)).Msg("Loaded regression model artifact")
		}
	} else {
		log.Warn().Str("path", s.modelPath).Msg("No model artifact found, scoring will return 0 until trained")
	}
	return s
}

// Score predicts from the answer text alone; the local model has no notion
// of the question. With no trained model it degrades to score 0.
func (s *localRegressorService) Score(_ context.Context, _ string, answerText string) (float64, string, error) {
	m := s.model.Load()
	if m == nil {
		return 0, bucketFeedback(0), nil
	}
	score := clampScore(m.Predict(answerText))
	return score, bucketFeedback(score), nil
}

func (s *localRegressorService) Train(examples []ml.Example) error {
	m, err := ml.Fit(examples)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	if err := ml.Save(m, s.modelPath); err != nil {
		return fmt.Errorf("saving model artifact: %w", err)
	}
	s.model.Store(m)
	log.Info().Int("examples", len(examples)).Int("vocabulary", len(m.Vocabulary)).Msg("Regression model retrained")
	return nil
}
