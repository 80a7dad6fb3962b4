package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Logger returns a request logging middleware writing to the given
// logrus logger at the given level.
func Logger(name string, logger *logrus.Logger, level logrus.Level) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				logger.WithFields(logrus.Fields{
					"handler": name,
					"method":  r.Method,
					"path":    r.URL.Path,
					"status":  ww.Status(),
					"bytes":   ww.BytesWritten(),
					"took":    time.Since(start).String(),
				}).Log(level, "request")
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}
