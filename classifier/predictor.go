// Package classifier predicts the sentiment of free text with a pre-trained
// TF-IDF vectorizer and linear classifier exported as JSON.
package classifier

import (
	"context"
	"errors"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"

	"github.com/delta/pon-sentimen-dashboard/models"
	"github.com/delta/pon-sentimen-dashboard/preprocess"
	"github.com/delta/pon-sentimen-dashboard/utils"
)

var (
	ErrEmptyText      = errors.New("Silakan masukkan teks terlebih dahulu sebelum memprediksi.")
	ErrModelNotLoaded = errors.New("Model belum dimuat!")
)

// Prediction is the outcome of classifying one text
type Prediction struct {
	Input     string          `json:"input"`
	CleanText string          `json:"clean_text"`
	Label     models.Sentimen `json:"label"`
	Color     string          `json:"color"`
	Scores    []Score         `json:"scores"`
}

//go:generate mockgen -destination=../mocks/mock_predictor.go -package=mocks github.com/delta/pon-sentimen-dashboard/classifier Predictor

// Predictor classifies raw user text
type Predictor interface {
	Predict(ctx context.Context, text string) (*Prediction, error)
}

// Preparer turns raw text into the form the model was trained on
type Preparer interface {
	Prepare(text string) string
}

// PreparerFunc adapts a plain function to the Preparer interface
type PreparerFunc func(text string) string

func (f PreparerFunc) Prepare(text string) string {
	return f(text)
}

type predictor struct {
	model    *Model
	preparer Preparer
	cache    *lru.Cache
}

type cachedResult struct {
	label  models.Sentimen
	scores []Score
}

// NewPredictor builds a Predictor over model. A nil preparer uses the default
// preprocess pipeline. cacheSize <= 0 disables the result cache.
func NewPredictor(model *Model, preparer Preparer, cacheSize int) (Predictor, error) {
	if model == nil {
		return nil, ErrModelNotLoaded
	}
	if preparer == nil {
		preparer = PreparerFunc(preprocess.Prepare)
	}

	p := &predictor{model: model, preparer: preparer}
	if cacheSize > 0 {
		cache, err := lru.New(cacheSize)
		if err != nil {
			return nil, err
		}
		p.cache = cache
	}
	return p, nil
}

// Predict prepares text and classifies it. Results are cached by prepared
// text, so inputs differing only in noise share one entry.
func (p *predictor) Predict(ctx context.Context, text string) (*Prediction, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean := p.preparer.Prepare(text)

	var res cachedResult
	if v, ok := p.cacheGet(clean); ok {
		res = v
	} else {
		res.label, res.scores = p.model.Predict(clean)
		p.cacheAdd(clean, res)
	}

	scores := make([]Score, len(res.scores))
	copy(scores, res.scores)

	return &Prediction{
		Input:     text,
		CleanText: clean,
		Label:     res.label,
		Color:     res.label.Color(),
		Scores:    scores,
	}, nil
}

func (p *predictor) cacheGet(clean string) (cachedResult, bool) {
	if p.cache == nil {
		return cachedResult{}, false
	}
	v, ok := p.cache.Get(clean)
	if !ok {
		return cachedResult{}, false
	}
	return v.(cachedResult), true
}

func (p *predictor) cacheAdd(clean string, res cachedResult) {
	if p.cache != nil {
		p.cache.Add(clean, res)
	}
}

var logger = logrus.NewEntry(utils.Logger)

var current = struct {
	sync.RWMutex
	p Predictor
}{}

// Init loads config.ModelFile and installs it as the shared predictor.
// A missing ModelFile leaves the package without a model; GetPredictor then
// returns ErrModelNotLoaded.
func Init(config *utils.Config) error {
	logger = utils.Logger.WithFields(logrus.Fields{
		"module": "classifier",
	})

	l := logger.WithFields(logrus.Fields{
		"method":          "Init",
		"param_modelFile": config.ModelFile,
	})

	if config.ModelFile == "" {
		l.Warnf("No ModelFile configured. Predictions are disabled")
		return nil
	}

	l.Infof("Attempting to load model")

	model, err := LoadFile(config.ModelFile)
	if err != nil {
		l.Errorf("Failed loading model: %+v", err)
		return err
	}

	p, err := NewPredictor(model, nil, config.CacheSize)
	if err != nil {
		l.Errorf("Failed creating predictor: %+v", err)
		return err
	}
	SetPredictor(p)

	l.Infof("Loaded model with classes %v and %d terms", model.Labels(), model.Vectorizer().Size())
	return nil
}

// SetPredictor replaces the shared predictor
func SetPredictor(p Predictor) {
	current.Lock()
	current.p = p
	current.Unlock()
}

// GetPredictor returns the shared predictor
func GetPredictor() (Predictor, error) {
	current.RLock()
	defer current.RUnlock()

	if current.p == nil {
		return nil, ErrModelNotLoaded
	}
	return current.p, nil
}
