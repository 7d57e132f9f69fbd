package session

import (
	"strconv"

	"github.com/delta/pon-sentimen-dashboard/models"
	"github.com/delta/pon-sentimen-dashboard/utils"
)

const (
	labelKey          = "label_sentimen"
	topKey            = "top_number"
	lastPredictionKey = "last_prediction"

	DefaultTop = 20
	MinTop     = 5
	MaxTop     = 50
)

// Filters are the dashboard selections remembered between page loads
type Filters struct {
	Sentimen models.Sentimen `json:"sentimen"`
	Top      int             `json:"top"`
}

// DefaultFilters is what a new visitor sees
func DefaultFilters() Filters {
	return Filters{Sentimen: models.All, Top: DefaultTop}
}

// GetFilters reads the filters stored in sess. Missing or corrupt values
// fall back to the defaults.
func GetFilters(sess Session) Filters {
	f := DefaultFilters()

	if v, ok := sess.Get(labelKey); ok {
		if s, err := models.ParseSentimen(v); err == nil {
			f.Sentimen = s
		}
	}
	if v, ok := sess.Get(topKey); ok {
		if n, err := strconv.Atoi(v); err == nil {
			f.Top = utils.ClampInt(n, MinTop, MaxTop)
		}
	}
	return f
}

// SetFilters validates label, clamps top to [MinTop, MaxTop] and stores both.
// The stored filters are returned.
func SetFilters(sess Session, label string, top int) (Filters, error) {
	s, err := models.ParseSentimen(label)
	if err != nil {
		return GetFilters(sess), err
	}

	f := Filters{Sentimen: s, Top: utils.ClampInt(top, MinTop, MaxTop)}
	if err := sess.Set(labelKey, string(f.Sentimen)); err != nil {
		return f, err
	}
	if err := sess.Set(topKey, strconv.Itoa(f.Top)); err != nil {
		return f, err
	}
	return f, nil
}

// SetLastPrediction remembers the label of the visitor's latest prediction
func SetLastPrediction(sess Session, label models.Sentimen) error {
	return sess.Set(lastPredictionKey, string(label))
}

// GetLastPrediction returns the label stored by SetLastPrediction.
// ok is false when nothing valid was stored.
func GetLastPrediction(sess Session) (label models.Sentimen, ok bool) {
	v, found := sess.Get(lastPredictionKey)
	if !found {
		return "", false
	}
	s := models.Sentimen(v)
	if !s.IsLabel() {
		return "", false
	}
	return s, true
}
