// Package httpapi serves the dashboard and prediction pages and the JSON
// API behind their charts.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/delta/pon-sentimen-dashboard/classifier"
	"github.com/delta/pon-sentimen-dashboard/models"
	"github.com/delta/pon-sentimen-dashboard/socketapi"
	"github.com/delta/pon-sentimen-dashboard/utils"
)

var logger = logrus.NewEntry(utils.Logger)
var config = utils.GetConfiguration()

// Replaced in tests
var getDataset = models.GetDataset
var getPredictor = classifier.GetPredictor

// Init configures the httpapi package
func Init(conf *utils.Config) {
	logger = utils.Logger.WithFields(logrus.Fields{
		"module": "httpapi",
	})
	config = conf
}

// NewRouter builds the handler for every HTTP route, websocket included
func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handleHealth)
	r.Get("/ws/predict", socketapi.Handle)

	// serve public dir
	static := http.StripPrefix("/static/", http.FileServer(http.Dir(config.StaticDir)))
	r.Handle("/static/*", http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		resp.Header().Add("Access-Control-Allow-Origin", "*")
		resp.Header().Add("Access-Control-Allow-Methods", "GET")
		resp.Header().Add("Access-Control-Max-Age", "600")
		static.ServeHTTP(resp, req)
	}))

	r.Group(func(r chi.Router) {
		r.Use(withSession)

		r.Get("/", handleDashboard)
		r.Get("/prediksi", handlePredictionPage)
		r.Post("/prediksi", handlePredictionForm)

		r.Route("/api", func(r chi.Router) {
			r.Get("/filters", handleGetFilters)
			r.Post("/filters", handleSetFilters)
			r.Get("/wordcloud/{sentimen}", handleWordCloud)
			r.Method(http.MethodGet, "/summary", datasetHandler(handleSummary))
			r.Method(http.MethodGet, "/ngrams", datasetHandler(handleNGrams))
			r.Method(http.MethodGet, "/users", datasetHandler(handleUsers))
			r.Method(http.MethodGet, "/mentions", datasetHandler(handleMentions))
			r.Method(http.MethodGet, "/hashtags", datasetHandler(handleHashtags))
			r.Method(http.MethodGet, "/search", datasetHandler(handleSearch))
			r.Post("/predict", handlePredict)
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	_, dsErr := getDataset()
	_, modelErr := getPredictor()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"time":    utils.GetCurrentTimeISO8601(),
		"dataset": dsErr == nil,
		"model":   modelErr == nil,
	})
}
