package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/delta/pon-sentimen-dashboard/classifier"
	"github.com/delta/pon-sentimen-dashboard/models"
	"github.com/delta/pon-sentimen-dashboard/templates"
)

var ErrInvalidParameter = errors.New("Invalid parameters passed")

var (
	dashboardTemplate  = parsePage(templates.Dashboard)
	predictionTemplate = parsePage(templates.Prediction)
)

func parsePage(content string) *template.Template {
	t := template.Must(template.New("layout").Parse(templates.Layout))
	return template.Must(t.Parse(content))
}

// statusFor maps package errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrDatasetNotLoaded), errors.Is(err, classifier.ErrModelNotLoaded):
		return http.StatusServiceUnavailable
	case errors.Is(err, classifier.ErrEmptyText),
		errors.Is(err, models.ErrInvalidSentimen),
		errors.Is(err, ErrInvalidParameter):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Errorf("Failed marshalling response: %+v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// pageMeta is shared by every page. A non-empty Error replaces the content.
type pageMeta struct {
	Title string
	Error string
}

func render(w http.ResponseWriter, status int, t *template.Template, data interface{}) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Errorf("Failed rendering page: %+v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
