package service

import (
	"context"
	"errors"
	"math"
	"strings"
)

// ScoringService converts a (question, answer) pair into a score in [0,100]
// and a non-empty feedback string. Implementations degrade instead of
// failing: any upstream or model problem yields (0, diagnostic feedback)
// with a nil error. The single exception is a missing credential, which is
// a deployment problem and is returned as ErrCredentialMissing.
type ScoringService interface {
	Score(ctx context.Context, questionText, answerText string) (score float64, feedback string, err error)
}

var (
	ErrCredentialMissing  = errors.New("AI credential is not configured")
	ErrEmptyAnswer        = errors.New("answer text must not be empty")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrResultNotFound     = errors.New("interview result not found")
	ErrNoQuestions        = errors.New("no questions available")
	ErrDatasetTooSmall    = errors.New("dataset too small: at least 5 labeled examples are required")
	ErrDatasetNotFound    = errors.New("dataset example not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// MaxScore is the upper bound of the grading scale.
const MaxScore = 100.0

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// roundScore converts a backend score to the integer persisted on a result,
// clamping defensively even though backends already clamp.
func roundScore(score float64) int {
	return int(math.Round(clampScore(score)))
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// bucketFeedback derives feedback text from fixed score thresholds. The
// local regression backend only produces a number, so its feedback comes
// from these buckets.
func bucketFeedback(score float64) string {
	switch {
	case score >= 80:
		return "Excellent answer: clear, well structured and professional."
	case score >= 60:
		return "Adequate answer: the substance is there, but structure and detail could be stronger."
	default:
		return "Needs improvement: describe the situation, your task, the action you took and the result."
	}
}
