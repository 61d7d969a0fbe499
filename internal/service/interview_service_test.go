package service

import (
	"context"
	"errors"
	"testing"

	"github.com/saripudin14/siwate/internal/dto"
	"github.com/saripudin14/siwate/internal/model"
	"github.com/saripudin14/siwate/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// fakeScorer returns a fixed verdict, or an error, and remembers whether it
// was called.
type fakeScorer struct {
	score    float64
	feedback string
	err      error
	called   bool
}

func (f *fakeScorer) Score(_ context.Context, _, _ string) (float64, string, error) {
	f.called = true
	if f.err != nil {
		return 0, "", f.err
	}
	return f.score, f.feedback, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Answer{},
		&model.InterviewResult{},
		&model.Dataset{},
	))
	return db
}

func newInterviewServiceForTest(t *testing.T, scorer ScoringService) (InterviewService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewInterviewService(
		repository.NewQuestionRepository(db),
		repository.NewResultRepository(db),
		scorer,
		db,
	)
	return svc, db
}

func seedQuestion(t *testing.T, db *gorm.DB, text string) model.Question {
	t.Helper()
	question := model.Question{QuestionText: text}
	require.NoError(t, db.Create(&question).Error)
	return question
}

func TestSubmitEmptyAnswer(t *testing.T) {
	scorer := &fakeScorer{}
	svc, db := newInterviewServiceForTest(t, scorer)

	_, err := svc.Submit(context.Background(), 1, dto.SubmitAnswerRequest{QuestionID: 1, AnswerText: "   \n\t"})
	require.ErrorIs(t, err, ErrEmptyAnswer)
	require.False(t, scorer.called)

	var count int64
	require.NoError(t, db.Model(&model.Answer{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSubmitUnknownQuestion(t *testing.T) {
	scorer := &fakeScorer{}
	svc, _ := newInterviewServiceForTest(t, scorer)

	_, err := svc.Submit(context.Background(), 1, dto.SubmitAnswerRequest{QuestionID: 42, AnswerText: "Jawaban saya."})
	require.ErrorIs(t, err, ErrQuestionNotFound)
	require.False(t, scorer.called)
}

func TestSubmitPersistsAnswerAndResultTogether(t *testing.T) {
	scorer := &fakeScorer{score: 86.6, feedback: "Jawaban baik."}
	svc, db := newInterviewServiceForTest(t, scorer)
	question := seedQuestion(t, db, "Ceritakan pencapaian terbesar Anda.")

	resp, err := svc.Submit(context.Background(), 7, dto.SubmitAnswerRequest{
		QuestionID: question.ID,
		AnswerText: "Saya memimpin proyek migrasi dan selesai tepat waktu.",
	})
	require.NoError(t, err)
	require.Equal(t, 87, resp.Score) // rounded from 86.6
	require.Equal(t, "Jawaban baik.", resp.Feedback)
	require.Equal(t, question.ID, resp.QuestionID)
	require.Equal(t, question.QuestionText, resp.QuestionText)

	var answers, results int64
	require.NoError(t, db.Model(&model.Answer{}).Count(&answers).Error)
	require.NoError(t, db.Model(&model.InterviewResult{}).Count(&results).Error)
	require.EqualValues(t, 1, answers)
	require.EqualValues(t, 1, results)

	var stored model.InterviewResult
	require.NoError(t, db.First(&stored, resp.ID).Error)
	require.Equal(t, resp.AnswerID, stored.AnswerID)
	require.EqualValues(t, 7, stored.UserID)
}

func TestSubmitScoringConfigErrorPersistsNothing(t *testing.T) {
	scorer := &fakeScorer{err: ErrCredentialMissing}
	svc, db := newInterviewServiceForTest(t, scorer)
	question := seedQuestion(t, db, "Pertanyaan")

	_, err := svc.Submit(context.Background(), 1, dto.SubmitAnswerRequest{
		QuestionID: question.ID,
		AnswerText: "Jawaban.",
	})
	require.ErrorIs(t, err, ErrCredentialMissing)

	var count int64
	require.NoError(t, db.Model(&model.Answer{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestGetResultScopedToOwner(t *testing.T) {
	scorer := &fakeScorer{score: 70, feedback: "Cukup."}
	svc, db := newInterviewServiceForTest(t, scorer)
	question := seedQuestion(t, db, "Pertanyaan")

	resp, err := svc.Submit(context.Background(), 1, dto.SubmitAnswerRequest{
		QuestionID: question.ID,
		AnswerText: "Jawaban saya.",
	})
	require.NoError(t, err)

	got, err := svc.GetResult(resp.ID, 1)
	require.NoError(t, err)
	require.Equal(t, resp.ID, got.ID)
	require.Equal(t, "Jawaban saya.", got.AnswerText)

	_, err = svc.GetResult(resp.ID, 2)
	require.ErrorIs(t, err, ErrResultNotFound)
}

func TestGetHistoryOnlyOwnResults(t *testing.T) {
	scorer := &fakeScorer{score: 60, feedback: "Cukup."}
	svc, db := newInterviewServiceForTest(t, scorer)
	question := seedQuestion(t, db, "Pertanyaan")

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(context.Background(), 1, dto.SubmitAnswerRequest{
			QuestionID: question.ID,
			AnswerText: "Jawaban pengguna satu.",
		})
		require.NoError(t, err)
	}
	_, err := svc.Submit(context.Background(), 2, dto.SubmitAnswerRequest{
		QuestionID: question.ID,
		AnswerText: "Jawaban pengguna dua.",
	})
	require.NoError(t, err)

	history, err := svc.GetHistory(1)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for _, item := range history {
		require.Equal(t, "Jawaban pengguna satu.", item.AnswerText)
	}
}

func TestDeleteResultByNonOwner(t *testing.T) {
	scorer := &fakeScorer{score: 50, feedback: "Perlu perbaikan."}
	svc, db := newInterviewServiceForTest(t, scorer)
	question := seedQuestion(t, db, "Pertanyaan")

	resp, err := svc.Submit(context.Background(), 1, dto.SubmitAnswerRequest{
		QuestionID: question.ID,
		AnswerText: "Jawaban.",
	})
	require.NoError(t, err)

	err = svc.DeleteResult(resp.ID, 2)
	require.ErrorIs(t, err, ErrResultNotFound)

	var count int64
	require.NoError(t, db.Model(&model.InterviewResult{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestDeleteResultRemovesAnswerToo(t *testing.T) {
	scorer := &fakeScorer{score: 50, feedback: "Perlu perbaikan."}
	svc, db := newInterviewServiceForTest(t, scorer)
	question := seedQuestion(t, db, "Pertanyaan")

	resp, err := svc.Submit(context.Background(), 1, dto.SubmitAnswerRequest{
		QuestionID: question.ID,
		AnswerText: "Jawaban.",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteResult(resp.ID, 1))
	require.True(t, errors.Is(svc.DeleteResult(resp.ID, 1), ErrResultNotFound))

	var answers int64
	require.NoError(t, db.Model(&model.Answer{}).Count(&answers).Error)
	require.Zero(t, answers)
}
