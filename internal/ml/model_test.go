package ml

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func trainingExamples() []Example {
	return []Example{
		{Text: "saya menyelesaikan proyek tepat waktu dengan tim", Score: 85},
		{Text: "saya bekerja sama dengan tim untuk mencapai target", Score: 80},
		{Text: "tidak tahu", Score: 10},
		{Text: "mungkin bisa", Score: 15},
		{Text: "saya memimpin proyek dan mencapai hasil yang baik", Score: 90},
	}
}

func TestFitRequiresExamples(t *testing.T) {
	_, err := Fit(nil)
	require.ErrorIs(t, err, ErrNoExamples)
}

func TestFitIsDeterministic(t *testing.T) {
	first, err := Fit(trainingExamples())
	require.NoError(t, err)
	second, err := Fit(trainingExamples())
	require.NoError(t, err)

	require.Equal(t, first.Vocabulary, second.Vocabulary)
	require.Equal(t, first.Weights, second.Weights)
}

func TestFitSeparatesGoodFromBadAnswers(t *testing.T) {
	m, err := Fit(trainingExamples())
	require.NoError(t, err)

	good := m.Predict("saya menyelesaikan proyek bersama tim dan mencapai target")
	bad := m.Predict("tidak tahu")
	require.Greater(t, good, bad)
}

func TestPredictIgnoresUnknownTerms(t *testing.T) {
	m, err := Fit(trainingExamples())
	require.NoError(t, err)

	// Unknown vocabulary only contributes through the length feature.
	a := m.Predict("zzzz qqqq")
	b := m.Predict("xxxx yyyy")
	require.InDelta(t, a, b, 1e-9)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m, err := Fit(trainingExamples())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.gob")
	require.NoError(t, Save(m, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, m.Vocabulary, loaded.Vocabulary)
	require.Equal(t, m.Weights, loaded.Weights)

	text := "saya bekerja dengan tim"
	require.InDelta(t, m.Predict(text), loaded.Predict(text), 1e-12)
}

func TestLoadMissingArtifact(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.gob"))
	require.Error(t, err)
}
