// Package socketapi predicts sentiment live over a websocket. Every text
// frame received on /ws/predict is classified and answered with one JSON frame.
package socketapi

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/delta/pon-sentimen-dashboard/classifier"
	"github.com/delta/pon-sentimen-dashboard/session"
	"github.com/delta/pon-sentimen-dashboard/utils"
)

var socketApiLogger = logrus.NewEntry(utils.Logger)
var upgrader websocket.Upgrader

// Replaced in tests
var getPredictor = classifier.GetPredictor

// Init configures the socketapi package
func Init(config *utils.Config) {
	socketApiLogger = utils.Logger.WithFields(logrus.Fields{
		"module": "socketapi/SocketHandler",
	})

	upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if utils.IsDevLikeEnv(config.Stage) {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range config.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}
}

// loadSession loads a given session from the http request using the sid cookie
func loadSession(r *http.Request) (session.Session, error) {
	var l = socketApiLogger.WithFields(logrus.Fields{
		"method": "loadSession",
	})

	var sid string
	if sidCookie, err := r.Cookie(session.CookieName); err == nil {
		l.Debugf("Found sid cookie")
		sid = sidCookie.Value
	}

	s, err := session.LoadOrNew(sid)
	if err != nil {
		l.Errorf("Error loading session data: '%s'", err)
		return nil, err
	}

	l.Debugf("Loaded session")
	return s, nil
}

// Handle handles an HTTP request meant for a websocket connection
func Handle(w http.ResponseWriter, r *http.Request) {
	var l = socketApiLogger.WithFields(logrus.Fields{
		"method": "Handle",
	})

	l.Infof("Connection from %+v", r.RemoteAddr)

	sess, err := loadSession(r)
	if err != nil {
		l.Errorf("Could not load or create session. Replying with 500. '%+v'", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cookie := &http.Cookie{Name: session.CookieName, Value: sess.GetID(), Path: "/", HttpOnly: true}
	conn, err := upgrader.Upgrade(w, r, http.Header{"Set-Cookie": {cookie.String()}})
	if err != nil {
		l.Errorf("Could not upgrade connection: '%s'", err)
		return
	}
	l.Debugf("Upgraded to websocket protocol")

	c := NewClient(make(chan struct{}), make(chan interface{}, 20), conn, sess)

	go c.WritePump()
	c.ReadPump()
}
