package ml

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/mat"
)

// Example is one labeled training row: an answer text and its human score.
type Example struct {
	Text  string
	Score float64
}

// Model is a fitted linear regressor over bag-of-terms features plus the
// answer's character length. The vocabulary is fixed at fit time so that
// featurization is identical at train and predict time.
type Model struct {
	Vocabulary map[string]int
	Weights    []float64 // term weights, then length weight, then intercept
}

var (
	ErrNoExamples = errors.New("no training examples")
	ErrFitFailed  = errors.New("regression fit failed")
)

// ridge keeps the normal equations positive definite even when the
// vocabulary is larger than the dataset.
const ridge = 1.0

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// features returns the term-frequency vector for text, followed by the
// character-length scalar and a constant intercept term.
func (m *Model) features(text string) []float64 {
	x := make([]float64, len(m.Vocabulary)+2)
	for _, tok := range tokenize(text) {
		if idx, ok := m.Vocabulary[tok]; ok {
			x[idx]++
		}
	}
	x[len(m.Vocabulary)] = float64(len(text))
	x[len(m.Vocabulary)+1] = 1
	return x
}

// Predict returns the raw regression output for text. Callers are expected
// to clamp it to their score range.
func (m *Model) Predict(text string) float64 {
	x := m.features(text)
	var sum float64
	for i, w := range m.Weights {
		sum += w * x[i]
	}
	return sum
}

// Fit trains a ridge-regularized linear regression of score on the
// text+length features, minimizing squared error. Deterministic for a
// fixed dataset: the vocabulary is index-ordered by sorted term.
func Fit(examples []Example) (*Model, error) {
	if len(examples) == 0 {
		return nil, ErrNoExamples
	}

	terms := make(map[string]struct{})
	for _, ex := range examples {
		for _, tok := range tokenize(ex.Text) {
			terms[tok] = struct{}{}
		}
	}
	ordered := make([]string, 0, len(terms))
	for t := range terms {
		ordered = append(ordered, t)
	}
	sort.Strings(ordered)

	vocab := make(map[string]int, len(ordered))
	for i, t := range ordered {
		vocab[t] = i
	}

	m := &Model{Vocabulary: vocab}
	d := len(vocab) + 2

	x := mat.NewDense(len(examples), d, nil)
	y := mat.NewVecDense(len(examples), nil)
	for i, ex := range examples {
		x.SetRow(i, m.features(ex.Text))
		y.SetVec(i, ex.Score)
	}

	// Normal equations with a ridge term: (XᵀX + λI) w = Xᵀy.
	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	gram := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			v := xtx.At(i, j)
			if i == j {
				v += ridge
			}
			gram.SetSym(i, j, v)
		}
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), y)

	var chol mat.Cholesky
	if ok := chol.Factorize(gram); !ok {
		return nil, ErrFitFailed
	}
	var w mat.VecDense
	if err := chol.SolveVecTo(&w, &xty); err != nil {
		return nil, ErrFitFailed
	}

	m.Weights = make([]float64, d)
	copy(m.Weights, w.RawVector().Data)
	return m, nil
}
