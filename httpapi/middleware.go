package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/delta/pon-sentimen-dashboard/session"
	"github.com/delta/pon-sentimen-dashboard/utils"
)

type contextKey string

const sessionKey contextKey = "session"

// withSession loads the visitor's session from the sid cookie, creating one
// when it is missing or expired, and stores it in the request context
func withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := logger.WithFields(logrus.Fields{
			"method": "withSession",
		})

		var sid string
		if c, err := r.Cookie(session.CookieName); err == nil {
			sid = c.Value
		}

		sess, err := session.LoadOrNew(sid)
		if err != nil {
			l.Errorf("Could not load or create session. Replying with 500. '%+v'", err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		if sess.GetID() != sid {
			http.SetCookie(w, &http.Cookie{
				Name:     session.CookieName,
				Value:    sess.GetID(),
				Path:     "/",
				HttpOnly: true,
				Secure:   utils.IsProdEnv(),
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sess)))
	})
}

func sessionFrom(ctx context.Context) session.Session {
	return ctx.Value(sessionKey).(session.Session)
}

// requestLogger logs one line per request
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			l := logger.WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"remote":     r.RemoteAddr,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
			})
			if ww.Status() >= http.StatusInternalServerError {
				l.Errorf("%s %s", r.Method, r.URL.RequestURI())
			} else {
				l.Infof("%s %s", r.Method, r.URL.RequestURI())
			}
		}()

		next.ServeHTTP(ww, r)
	})
}
