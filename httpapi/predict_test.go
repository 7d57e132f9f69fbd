package httpapi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delta/pon-sentimen-dashboard/classifier"
	"github.com/delta/pon-sentimen-dashboard/mocks"
	"github.com/delta/pon-sentimen-dashboard/models"
	testutils "github.com/delta/pon-sentimen-dashboard/utils/test"
)

var testPrediction = &classifier.Prediction{
	Input:     "Saya bangga dengan atlet PON!",
	CleanText: "saya bangga atlet",
	Label:     models.Positif,
	Color:     "#4F9DA6",
	Scores: []classifier.Score{
		{Sentimen: models.Positif, Persentase: 81.25, Color: "#4F9DA6"},
		{Sentimen: models.Netral, Persentase: 12.5, Color: "#FACF5A"},
		{Sentimen: models.Negatif, Persentase: 6.25, Color: "#FF5959"},
	},
}

func withPredictor(t *testing.T) *mocks.MockPredictor {
	mockCtrl := gomock.NewController(t)
	mockPredictor := mocks.NewMockPredictor(mockCtrl)

	getPredictor = func() (classifier.Predictor, error) { return mockPredictor, nil }
	t.Cleanup(func() {
		getPredictor = classifier.GetPredictor
		mockCtrl.Finish()
	})
	return mockPredictor
}

func withoutPredictor(t *testing.T) {
	getPredictor = func() (classifier.Predictor, error) { return nil, classifier.ErrModelNotLoaded }
	t.Cleanup(func() { getPredictor = classifier.GetPredictor })
}

func postJSON(t *testing.T, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return do(t, req)
}

func postForm(t *testing.T, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(t, req)
}

func TestPredictAPI(t *testing.T) {
	mockPredictor := withPredictor(t)
	mockPredictor.EXPECT().Predict(gomock.Any(), testPrediction.Input).Return(testPrediction, nil)

	rec := postJSON(t, "/api/predict", `{"text":"Saya bangga dengan atlet PON!"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	testutils.AssertJSONBody(t, testPrediction, rec.Body.Bytes())
}

func TestPredictAPIEmptyText(t *testing.T) {
	mockPredictor := withPredictor(t)
	mockPredictor.EXPECT().Predict(gomock.Any(), " ").Return(nil, classifier.ErrEmptyText)

	rec := postJSON(t, "/api/predict", `{"text":" "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	testutils.AssertJSONBody(t, map[string]string{
		"error": "Silakan masukkan teks terlebih dahulu sebelum memprediksi.",
	}, rec.Body.Bytes())
}

func TestPredictAPIBadBody(t *testing.T) {
	withPredictor(t)

	rec := postJSON(t, "/api/predict", `text=halo`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredictAPIWithoutModel(t *testing.T) {
	withoutPredictor(t)

	rec := postJSON(t, "/api/predict", `{"text":"halo"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	testutils.AssertJSONBody(t, map[string]string{"error": "Model belum dimuat!"}, rec.Body.Bytes())
}

func TestPredictionPage(t *testing.T) {
	withPredictor(t)

	rec := get(t, "/prediksi")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Masukkan teks di sini:")
}

func TestPredictionPageWithoutModel(t *testing.T) {
	withoutPredictor(t)

	rec := get(t, "/prediksi")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Model belum dimuat!")
}

func TestPredictionForm(t *testing.T) {
	mockPredictor := withPredictor(t)
	mockPredictor.EXPECT().Predict(gomock.Any(), testPrediction.Input).Return(testPrediction, nil)

	rec := postForm(t, "/prediksi", url.Values{"text": {testPrediction.Input}})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Prediksi Sentimen:")
	assert.Contains(t, body, "Positif: 81.25%")
	assert.Contains(t, body, "Negatif: 6.25%")
}

func TestPredictionPageShowsLastPrediction(t *testing.T) {
	mockPredictor := withPredictor(t)
	mockPredictor.EXPECT().Predict(gomock.Any(), testPrediction.Input).Return(testPrediction, nil)

	rec := get(t, "/prediksi")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Prediksi terakhir Anda")
	sid := sidCookie(t, rec)

	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(`{"text":"Saya bangga dengan atlet PON!"}`))
	req.Header.Set("Content-Type", "application/json")
	require.Equal(t, http.StatusOK, do(t, req, sid).Code)

	rec = get(t, "/prediksi", sid)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Prediksi terakhir Anda: <strong>Positif</strong>")
}

func TestPredictionFormEmptyText(t *testing.T) {
	mockPredictor := withPredictor(t)
	mockPredictor.EXPECT().Predict(gomock.Any(), "").Return(nil, classifier.ErrEmptyText)

	rec := postForm(t, "/prediksi", url.Values{"text": {""}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Silakan masukkan teks terlebih dahulu sebelum memprediksi.")
}
