package classifier

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delta/pon-sentimen-dashboard/models"
)

func loadTestModel(t *testing.T) *Model {
	m, err := LoadFile("testdata/model.json")
	require.NoError(t, err)
	return m
}

func TestTransform(t *testing.T) {
	v := loadTestModel(t).Vectorizer()
	assert.Equal(t, 6, v.Size())

	x := v.Transform("Atlet hebat")
	require.Len(t, x, 2)
	assert.InDelta(t, 1/math.Sqrt(5), x[1], 1e-9)
	assert.InDelta(t, 2/math.Sqrt(5), x[5], 1e-9)

	x = v.Transform("bangga bangga")
	assert.Equal(t, map[int]float64{0: 1}, x, "l2 norm of a single term is 1")

	assert.Empty(t, v.Transform("tidak dikenal a"))
}

func TestTransformSublinear(t *testing.T) {
	m, err := NewModel(&Artifact{
		Classes:     []int{-1, 1},
		Vocabulary:  map[string]int{"bagus": 0, "jelek": 1},
		Idf:         []float64{1, 1},
		SublinearTF: true,
		Coef:        [][]float64{{1, -1}},
		Intercept:   []float64{0},
	})
	require.NoError(t, err)

	x := m.Vectorizer().Transform("bagus bagus jelek")
	assert.InDelta(t, 1+math.Log(2), x[0], 1e-9)
	assert.InDelta(t, 1.0, x[1], 1e-9)
}

func TestPredictMulticlass(t *testing.T) {
	m := loadTestModel(t)

	label, scores := m.Predict("bangga")
	assert.Equal(t, models.Positif, label)
	require.Len(t, scores, 3)
	assert.Equal(t, models.Positif, scores[0].Sentimen)
	assert.InDelta(t, 78.70, scores[0].Persentase, 1e-9)
	assert.Equal(t, "#4F9DA6", scores[0].Color)
	assert.Equal(t, models.Negatif, scores[1].Sentimen, "equal scores are ordered by label")
	assert.InDelta(t, 10.65, scores[1].Persentase, 1e-9)
	assert.Equal(t, models.Netral, scores[2].Sentimen)

	label, _ = m.Predict("venue buruk bikin kecewa")
	assert.Equal(t, models.Negatif, label)

	label, _ = m.Predict("jadwal")
	assert.Equal(t, models.Netral, label)
}

func TestPredictUnknownText(t *testing.T) {
	label, scores := loadTestModel(t).Predict("")
	assert.Equal(t, models.Negatif, label, "first class wins a tie")
	for _, s := range scores {
		assert.InDelta(t, 33.33, s.Persentase, 1e-9)
	}
}

func TestPredictBinaryWithoutProbability(t *testing.T) {
	m, err := NewModel(&Artifact{
		Classes:    []int{-1, 1},
		Vocabulary: map[string]int{"bagus": 0, "jelek": 1},
		Idf:        []float64{1, 1},
		Norm:       "l2",
		Coef:       [][]float64{{1, -1}},
		Intercept:  []float64{0},
	})
	require.NoError(t, err)

	label, scores := m.Predict("bagus")
	assert.Equal(t, models.Positif, label)
	assert.Equal(t, []Score{{Sentimen: models.Positif, Persentase: 100, Color: "#4F9DA6"}}, scores)

	label, _ = m.Predict("jelek")
	assert.Equal(t, models.Negatif, label)
}

func TestLoadRejectsInvalidArtifacts(t *testing.T) {
	base := func() *Artifact {
		return &Artifact{
			Classes:    []int{-1, 0, 1},
			Vocabulary: map[string]int{"a": 0},
			Idf:        []float64{1},
			Coef:       [][]float64{{1}, {1}, {1}},
			Intercept:  []float64{0, 0, 0},
		}
	}

	tests := map[string]func(a *Artifact){
		"unknown class":    func(a *Artifact) { a.Classes[2] = 5 },
		"single class":     func(a *Artifact) { a.Classes = []int{1} },
		"missing coef row": func(a *Artifact) { a.Coef = a.Coef[:2] },
		"short intercept":  func(a *Artifact) { a.Intercept = a.Intercept[:1] },
		"wide coef row":    func(a *Artifact) { a.Coef[0] = []float64{1, 2} },
		"column overflow":  func(a *Artifact) { a.Vocabulary["b"] = 3 },
		"bad ngram range":  func(a *Artifact) { a.NgramRange = [2]int{2, 1} },
		"unsupported norm": func(a *Artifact) { a.Norm = "l1" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			a := base()
			mutate(a)
			_, err := NewModel(a)
			assert.ErrorIs(t, err, ErrInvalidModel)
		})
	}

	_, err := NewModel(base())
	assert.NoError(t, err)

	_, err = Load(strings.NewReader("{not json"))
	assert.ErrorIs(t, err, ErrInvalidModel)

	_, err = LoadFile("testdata/missing.json")
	assert.Error(t, err)
}
