package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/delta/pon-sentimen-dashboard/classifier"
	"github.com/delta/pon-sentimen-dashboard/models"
	"github.com/delta/pon-sentimen-dashboard/session"
)

type predictionPage struct {
	pageMeta
	Input      string
	Warning    string
	Prediction *classifier.Prediction
	Last       models.Sentimen
}

func rememberPrediction(l *logrus.Entry, r *http.Request, pred *classifier.Prediction) {
	if err := session.SetLastPrediction(sessionFrom(r.Context()), pred.Label); err != nil {
		l.Warnf("Could not store last prediction: %+v", err)
	}
}

func handlePredictionPage(w http.ResponseWriter, r *http.Request) {
	page := predictionPage{pageMeta: pageMeta{Title: "Prediksi Sentimen"}}
	page.Last, _ = session.GetLastPrediction(sessionFrom(r.Context()))

	if _, err := getPredictor(); err != nil {
		page.Error = err.Error()
		render(w, statusFor(err), predictionTemplate, page)
		return
	}

	render(w, http.StatusOK, predictionTemplate, page)
}

func handlePredictionForm(w http.ResponseWriter, r *http.Request) {
	l := logger.WithFields(logrus.Fields{
		"method": "handlePredictionForm",
	})

	page := predictionPage{
		pageMeta: pageMeta{Title: "Prediksi Sentimen"},
		Input:    r.PostFormValue("text"),
	}

	p, err := getPredictor()
	if err != nil {
		page.Error = err.Error()
		render(w, statusFor(err), predictionTemplate, page)
		return
	}

	pred, err := p.Predict(r.Context(), page.Input)
	switch {
	case errors.Is(err, classifier.ErrEmptyText):
		page.Warning = err.Error()
		render(w, http.StatusBadRequest, predictionTemplate, page)
		return
	case err != nil:
		l.Errorf("Prediction failed: %+v", err)
		page.Error = err.Error()
		render(w, statusFor(err), predictionTemplate, page)
		return
	}

	l.Debugf("Predicted %s for %q", pred.Label, pred.CleanText)
	rememberPrediction(l, r, pred)

	page.Prediction = pred
	render(w, http.StatusOK, predictionTemplate, page)
}

type predictRequest struct {
	Text string `json:"text"`
}

func handlePredict(w http.ResponseWriter, r *http.Request) {
	l := logger.WithFields(logrus.Fields{
		"method": "handlePredict",
	})

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidParameter, err))
		return
	}

	p, err := getPredictor()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	pred, err := p.Predict(r.Context(), req.Text)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			l.Errorf("Prediction failed: %+v", err)
		}
		writeError(w, statusFor(err), err)
		return
	}

	rememberPrediction(l, r, pred)
	writeJSON(w, http.StatusOK, pred)
}
