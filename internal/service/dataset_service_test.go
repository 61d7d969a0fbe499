package service

import (
	"context"
	"testing"

	"github.com/saripudin14/siwate/internal/dto"
	"github.com/saripudin14/siwate/internal/ml"
	"github.com/saripudin14/siwate/internal/repository"
	"github.com/stretchr/testify/require"
)

type fakeRegressor struct {
	trained []ml.Example
	err     error
}

func (f *fakeRegressor) Score(context.Context, string, string) (float64, string, error) {
	return 0, bucketFeedback(0), nil
}

func (f *fakeRegressor) Train(examples []ml.Example) error {
	if f.err != nil {
		return f.err
	}
	f.trained = examples
	return nil
}

func newDatasetServiceForTest(t *testing.T) (DatasetService, *fakeRegressor) {
	t.Helper()
	db := newTestDB(t)
	regressor := &fakeRegressor{}
	return NewDatasetService(repository.NewDatasetRepository(db), regressor), regressor
}

func addExamples(t *testing.T, svc DatasetService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.AddExample(dto.CreateDatasetRequest{
			AnswerText: "contoh jawaban latihan",
			Score:      50 + i,
		})
		require.NoError(t, err)
	}
}

func TestTrainRejectsSmallDataset(t *testing.T) {
	svc, regressor := newDatasetServiceForTest(t)
	addExamples(t, svc, MinTrainingExamples-1)

	_, err := svc.Train()
	require.ErrorIs(t, err, ErrDatasetTooSmall)
	require.Nil(t, regressor.trained)
}

func TestTrainPassesEveryExample(t *testing.T) {
	svc, regressor := newDatasetServiceForTest(t)
	addExamples(t, svc, MinTrainingExamples)

	resp, err := svc.Train()
	require.NoError(t, err)
	require.Equal(t, MinTrainingExamples, resp.Examples)
	require.Len(t, regressor.trained, MinTrainingExamples)
	for _, ex := range regressor.trained {
		require.Equal(t, "contoh jawaban latihan", ex.Text)
		require.GreaterOrEqual(t, ex.Score, 50.0)
	}
}

func TestDeleteExampleNotFound(t *testing.T) {
	svc, _ := newDatasetServiceForTest(t)
	require.ErrorIs(t, svc.DeleteExample(99), ErrDatasetNotFound)
}

func TestDatasetListAndDelete(t *testing.T) {
	svc, _ := newDatasetServiceForTest(t)
	created, err := svc.AddExample(dto.CreateDatasetRequest{AnswerText: "jawaban", Score: 75})
	require.NoError(t, err)

	examples, err := svc.GetAllExamples()
	require.NoError(t, err)
	require.Len(t, examples, 1)
	require.Equal(t, 75, examples[0].Score)

	require.NoError(t, svc.DeleteExample(created.ID))
	examples, err = svc.GetAllExamples()
	require.NoError(t, err)
	require.Empty(t, examples)
}
