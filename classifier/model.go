package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/gonum/floats"

	"github.com/delta/pon-sentimen-dashboard/models"
)

var ErrInvalidModel = errors.New("Invalid model artifact")

// Artifact is the JSON export of a fitted TF-IDF vectorizer and a linear
// classifier. coef holds one row per class, or a single row when there are
// exactly two classes.
type Artifact struct {
	Classes     []int          `json:"classes"`
	Vocabulary  map[string]int `json:"vocabulary"`
	Idf         []float64      `json:"idf"`
	NgramRange  [2]int         `json:"ngram_range"`
	SublinearTF bool           `json:"sublinear_tf"`
	Norm        string         `json:"norm"`
	Coef        [][]float64    `json:"coef"`
	Intercept   []float64      `json:"intercept"`
	Probability bool           `json:"probability"`
}

// Score is the confidence of the model in one class, as a percentage
type Score struct {
	Sentimen   models.Sentimen `json:"sentimen"`
	Persentase float64         `json:"persentase"`
	Color      string          `json:"color"`
}

// Model is a loaded artifact. It is read-only and safe for concurrent use.
type Model struct {
	vectorizer  *Vectorizer
	labels      []models.Sentimen
	coef        [][]float64
	intercept   []float64
	probability bool
}

// LoadFile reads and validates a model artifact from disk
func LoadFile(fileName string) (*Model, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Load decodes and validates a model artifact
func Load(r io.Reader) (*Model, error) {
	var a Artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	return NewModel(&a)
}

// NewModel validates a and builds the model it describes
func NewModel(a *Artifact) (*Model, error) {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidModel, fmt.Sprintf(format, args...))
	}

	if len(a.Classes) < 2 {
		return nil, invalid("need at least 2 classes, got %d", len(a.Classes))
	}
	labels := make([]models.Sentimen, len(a.Classes))
	for i, c := range a.Classes {
		s, err := models.SentimenFromClass(c)
		if err != nil {
			return nil, invalid("%v", err)
		}
		labels[i] = s
	}

	rows := len(a.Classes)
	if rows == 2 {
		rows = 1
	}
	if len(a.Coef) != rows {
		return nil, invalid("coef has %d rows, want %d", len(a.Coef), rows)
	}
	if len(a.Intercept) != rows {
		return nil, invalid("intercept has %d values, want %d", len(a.Intercept), rows)
	}
	for i, row := range a.Coef {
		if len(row) != len(a.Idf) {
			return nil, invalid("coef row %d has %d columns, want %d", i, len(row), len(a.Idf))
		}
	}
	for term, col := range a.Vocabulary {
		if col < 0 || col >= len(a.Idf) {
			return nil, invalid("term %q maps to column %d of %d", term, col, len(a.Idf))
		}
	}

	minN, maxN := a.NgramRange[0], a.NgramRange[1]
	if minN == 0 && maxN == 0 {
		minN, maxN = 1, 1
	}
	if minN < 1 || maxN < minN {
		return nil, invalid("bad ngram_range %v", a.NgramRange)
	}

	var l2 bool
	switch a.Norm {
	case "l2":
		l2 = true
	case "":
	default:
		return nil, invalid("unsupported norm %q", a.Norm)
	}

	return &Model{
		vectorizer: &Vectorizer{
			vocabulary:  a.Vocabulary,
			idf:         a.Idf,
			minN:        minN,
			maxN:        maxN,
			sublinearTF: a.SublinearTF,
			l2:          l2,
		},
		labels:      labels,
		coef:        a.Coef,
		intercept:   a.Intercept,
		probability: a.Probability,
	}, nil
}

// Vectorizer returns the vectorizer of the model
func (m *Model) Vectorizer() *Vectorizer {
	return m.vectorizer
}

// Labels returns the classes of the model in artifact order
func (m *Model) Labels() []models.Sentimen {
	return m.labels
}

// decision returns coef·x + intercept for every coef row
func (m *Model) decision(x map[int]float64) []float64 {
	out := make([]float64, len(m.coef))
	for i, row := range m.coef {
		d := m.intercept[i]
		for col, w := range x {
			d += row[col] * w
		}
		out[i] = d
	}
	return out
}

// Predict classifies prepared text. Scores are sorted from the most to the
// least confident class. Without probability estimates only the predicted
// class is scored, at 100.
func (m *Model) Predict(text string) (models.Sentimen, []Score) {
	d := m.decision(m.vectorizer.Transform(text))

	var probs []float64
	var best int
	if len(d) == 1 {
		p := 1 / (1 + math.Exp(-d[0]))
		probs = []float64{1 - p, p}
		if d[0] > 0 {
			best = 1
		}
	} else {
		best = floats.MaxIdx(d)
		probs = make([]float64, len(d))
		copy(probs, d)
		floats.AddConst(-floats.LogSumExp(d), probs)
		for i := range probs {
			probs[i] = math.Exp(probs[i])
		}
	}

	label := m.labels[best]
	if !m.probability {
		return label, []Score{{Sentimen: label, Persentase: 100.0, Color: label.Color()}}
	}

	scores := make([]Score, len(m.labels))
	for i, s := range m.labels {
		scores[i] = Score{
			Sentimen:   s,
			Persentase: floats.Round(probs[i]*100, 2),
			Color:      s.Color(),
		}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Persentase != scores[j].Persentase {
			return scores[i].Persentase > scores[j].Persentase
		}
		return scores[i].Sentimen < scores[j].Sentimen
	})
	return label, scores
}
