package service

import (
	"testing"

	"github.com/saripudin14/siwate/internal/dto"
	"github.com/saripudin14/siwate/internal/repository"
	"github.com/stretchr/testify/require"
)

func newQuestionServiceForTest(t *testing.T) QuestionService {
	t.Helper()
	return NewQuestionService(repository.NewQuestionRepository(newTestDB(t)))
}

func TestRandomQuestionFromEmptyBank(t *testing.T) {
	svc := newQuestionServiceForTest(t)

	_, err := svc.GetRandomQuestion()
	require.ErrorIs(t, err, ErrNoQuestions)
}

func TestRandomQuestionComesFromBank(t *testing.T) {
	svc := newQuestionServiceForTest(t)

	texts := map[string]bool{
		"Ceritakan tentang diri Anda.":     true,
		"Apa kelemahan terbesar Anda?":     true,
		"Mengapa Anda melamar posisi ini?": true,
	}
	for text := range texts {
		_, err := svc.CreateQuestion(dto.CreateQuestionRequest{QuestionText: text})
		require.NoError(t, err)
	}

	question, err := svc.GetRandomQuestion()
	require.NoError(t, err)
	require.True(t, texts[question.QuestionText])
}

func TestQuestionCreateListDelete(t *testing.T) {
	svc := newQuestionServiceForTest(t)

	created, err := svc.CreateQuestion(dto.CreateQuestionRequest{QuestionText: "Pertanyaan pertama"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	questions, err := svc.GetAllQuestions()
	require.NoError(t, err)
	require.Len(t, questions, 1)

	require.NoError(t, svc.DeleteQuestion(created.ID))
	require.ErrorIs(t, svc.DeleteQuestion(created.ID), ErrQuestionNotFound)

	questions, err = svc.GetAllQuestions()
	require.NoError(t, err)
	require.Empty(t, questions)
}
