package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/delta/pon-sentimen-dashboard/analysis"
	"github.com/delta/pon-sentimen-dashboard/models"
	"github.com/delta/pon-sentimen-dashboard/session"
)

const maxNGram = 3

// resolveFilters returns the session's filters, first storing any passed in
// the sentimen and top query parameters
func resolveFilters(r *http.Request) (session.Filters, error) {
	sess := sessionFrom(r.Context())
	f := session.GetFilters(sess)

	q := r.URL.Query()
	if q.Get("sentimen") == "" && q.Get("top") == "" {
		return f, nil
	}

	label := string(f.Sentimen)
	if v := q.Get("sentimen"); v != "" {
		label = v
	}

	top := f.Top
	if v := q.Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("%w: top %q", ErrInvalidParameter, v)
		}
		top = n
	}

	return session.SetFilters(sess, label, top)
}

type dashboardPage struct {
	pageMeta
	Filters      session.Filters
	Options      []models.Sentimen
	Labels       []models.Sentimen
	MinTop       int
	MaxTop       int
	Counts       analysis.Counts
	Distribution []analysis.SentimenShare
	Hashtags     []analysis.HashtagCount
	Search       analysis.SearchResult
}

func handleDashboard(w http.ResponseWriter, r *http.Request) {
	l := logger.WithFields(logrus.Fields{
		"method": "handleDashboard",
	})

	page := dashboardPage{
		pageMeta: pageMeta{Title: "Dashboard"},
		Labels:   []models.Sentimen{models.Negatif, models.Netral, models.Positif},
		MinTop:   session.MinTop,
		MaxTop:   session.MaxTop,
	}

	f, err := resolveFilters(r)
	if err != nil {
		l.Debugf("Bad filters: %v", err)
		page.Error = err.Error()
		render(w, statusFor(err), dashboardTemplate, page)
		return
	}
	page.Filters = f

	ds, err := getDataset()
	if err != nil {
		l.Warnf("Dataset unavailable: %v", err)
		page.Error = err.Error()
		render(w, statusFor(err), dashboardTemplate, page)
		return
	}

	page.Options = ds.SentimenOptions()
	page.Counts = analysis.Count(ds.Tweets)
	page.Distribution = analysis.Distribution(ds.Tweets)
	page.Hashtags = analysis.Hashtags(ds.Tweets, f.Sentimen)
	page.Search = analysis.Search(ds.Tweets, r.URL.Query().Get("q"))

	render(w, http.StatusOK, dashboardTemplate, page)
}

// datasetHandler serves JSON computed from the loaded dataset and the
// visitor's filters
type datasetHandler func(w http.ResponseWriter, r *http.Request, ds *models.Dataset, f session.Filters)

func (h datasetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f, err := resolveFilters(r)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	ds, err := getDataset()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	h(w, r, ds, f)
}

type filtersResponse struct {
	Filters session.Filters   `json:"filters"`
	Options []models.Sentimen `json:"options"`
	MinTop  int               `json:"min_top"`
	MaxTop  int               `json:"max_top"`
}

func newFiltersResponse(f session.Filters) filtersResponse {
	res := filtersResponse{
		Filters: f,
		Options: append([]models.Sentimen{models.All}, models.Labels...),
		MinTop:  session.MinTop,
		MaxTop:  session.MaxTop,
	}
	if ds, err := getDataset(); err == nil {
		res.Options = ds.SentimenOptions()
	}
	return res
}

func handleGetFilters(w http.ResponseWriter, r *http.Request) {
	f, err := resolveFilters(r)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, newFiltersResponse(f))
}

func handleSetFilters(w http.ResponseWriter, r *http.Request) {
	var req session.Filters
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidParameter, err))
		return
	}

	sess := sessionFrom(r.Context())
	if req.Sentimen == "" {
		req.Sentimen = session.GetFilters(sess).Sentimen
	}
	if req.Top == 0 {
		req.Top = session.GetFilters(sess).Top
	}

	f, err := session.SetFilters(sess, string(req.Sentimen), req.Top)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, newFiltersResponse(f))
}

type summaryResponse struct {
	Source       string                   `json:"source"`
	LoadedAt     string                   `json:"loaded_at"`
	Counts       analysis.Counts          `json:"counts"`
	Distribution []analysis.SentimenShare `json:"distribution"`
}

func handleSummary(w http.ResponseWriter, r *http.Request, ds *models.Dataset, f session.Filters) {
	writeJSON(w, http.StatusOK, summaryResponse{
		Source:       ds.Source,
		LoadedAt:     ds.LoadedAt,
		Counts:       analysis.Count(ds.Tweets),
		Distribution: analysis.Distribution(ds.Tweets),
	})
}

func handleWordCloud(w http.ResponseWriter, r *http.Request) {
	label, err := models.ParseSentimen(chi.URLParam(r, "sentimen"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ds, err := getDataset()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, analysis.WordCloud(ds.Tweets, label))
}

func handleNGrams(w http.ResponseWriter, r *http.Request, ds *models.Dataset, f session.Filters) {
	n := 1
	if v := r.URL.Query().Get("n"); v != "" {
		var err error
		n, err = strconv.Atoi(v)
		if err != nil || n < 1 || n > maxNGram {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%w: n must be between 1 and %d", ErrInvalidParameter, maxNGram))
			return
		}
	}

	writeJSON(w, http.StatusOK, analysis.NGrams(ds.Tweets, f.Sentimen, n, f.Top))
}

func handleUsers(w http.ResponseWriter, r *http.Request, ds *models.Dataset, f session.Filters) {
	writeJSON(w, http.StatusOK, analysis.TopUsers(ds.Tweets, f.Sentimen, f.Top))
}

func handleMentions(w http.ResponseWriter, r *http.Request, ds *models.Dataset, f session.Filters) {
	writeJSON(w, http.StatusOK, analysis.TopMentions(ds.Tweets, f.Sentimen, f.Top))
}

func handleHashtags(w http.ResponseWriter, r *http.Request, ds *models.Dataset, f session.Filters) {
	writeJSON(w, http.StatusOK, analysis.Hashtags(ds.Tweets, f.Sentimen))
}

func handleSearch(w http.ResponseWriter, r *http.Request, ds *models.Dataset, f session.Filters) {
	writeJSON(w, http.StatusOK, analysis.Search(ds.Tweets, r.URL.Query().Get("q")))
}
