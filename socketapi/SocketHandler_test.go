package socketapi

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delta/pon-sentimen-dashboard/classifier"
	"github.com/delta/pon-sentimen-dashboard/mocks"
	"github.com/delta/pon-sentimen-dashboard/models"
	"github.com/delta/pon-sentimen-dashboard/session"
	"github.com/delta/pon-sentimen-dashboard/utils"
	testutils "github.com/delta/pon-sentimen-dashboard/utils/test"
)

func TestMain(m *testing.M) {
	config := utils.GetConfiguration()
	utils.Init(config)
	session.Init(config)
	Init(config)

	os.Exit(m.Run())
}

func dial(t *testing.T) (*websocket.Conn, *http.Response, func()) {
	srv := httptest.NewServer(http.HandlerFunc(Handle))

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)

	return conn, resp, func() {
		conn.Close()
		srv.Close()
	}
}

func exchange(t *testing.T, conn *websocket.Conn, text string) []byte {
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(text)))
	msgType, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, msgType)
	return msg
}

func TestHandlePredicts(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	pred := &classifier.Prediction{
		Input:     "Bangga!",
		CleanText: "bangga",
		Label:     models.Positif,
		Color:     models.Positif.Color(),
		Scores:    []classifier.Score{{Sentimen: models.Positif, Persentase: 100, Color: models.Positif.Color()}},
	}

	mockPredictor := mocks.NewMockPredictor(mockCtrl)
	mockPredictor.EXPECT().Predict(gomock.Any(), "Bangga!").Return(pred, nil)
	mockPredictor.EXPECT().Predict(gomock.Any(), "   ").Return(nil, classifier.ErrEmptyText)

	getPredictor = func() (classifier.Predictor, error) { return mockPredictor, nil }
	defer func() { getPredictor = classifier.GetPredictor }()

	conn, resp, closeAll := dial(t)
	defer closeAll()

	assert.Contains(t, resp.Header.Get("Set-Cookie"), session.CookieName+"=")

	testutils.AssertJSONBody(t, pred, exchange(t, conn, "Bangga!"))
	assert.Equal(t, "pong", string(exchange(t, conn, "ping")))
	testutils.AssertJSONBody(t, errorMessage{classifier.ErrEmptyText.Error()}, exchange(t, conn, "   "))

	var sid string
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			sid = c.Value
		}
	}
	sess, err := session.Load(sid)
	require.NoError(t, err)
	label, ok := session.GetLastPrediction(sess)
	assert.True(t, ok)
	assert.Equal(t, models.Positif, label)
}

func TestHandleWithoutModel(t *testing.T) {
	getPredictor = func() (classifier.Predictor, error) { return nil, classifier.ErrModelNotLoaded }
	defer func() { getPredictor = classifier.GetPredictor }()

	conn, _, closeAll := dial(t)
	defer closeAll()

	testutils.AssertJSONBody(t, map[string]string{"error": "Model belum dimuat!"}, exchange(t, conn, "halo"))
}

func TestCheckOrigin(t *testing.T) {
	defer Init(utils.GetConfiguration())

	prod := *utils.GetConfiguration()
	prod.Stage = "prod"
	prod.AllowedOrigins = []string{"https://pon.example"}
	Init(&prod)

	req := httptest.NewRequest(http.MethodGet, "/ws/predict", nil)
	req.Header.Set("Origin", "https://pon.example")
	assert.True(t, upgrader.CheckOrigin(req))

	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, upgrader.CheckOrigin(req))

	Init(utils.GetConfiguration())
	assert.True(t, upgrader.CheckOrigin(req), "test stage accepts any origin")
}
