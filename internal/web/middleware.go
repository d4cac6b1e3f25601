package web

import (
	"net/http"
	"time"

	"github.com/yaklabco/rocketlab/internal/logging"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

// withLogging attaches a request-scoped logger to the context and logs
// each completed request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx := logging.WithLogger(r.Context(), s.logger)
		ctx = logging.WithFields(ctx,
			logging.FieldMethod, r.Method,
			logging.FieldPath, r.URL.Path,
		)

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r.WithContext(ctx))

		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		logging.FromContext(ctx).Debug("request",
			logging.FieldStatus, rec.status,
			logging.FieldBytes, rec.bytes,
			logging.FieldDuration, time.Since(start),
			logging.FieldRemote, r.RemoteAddr,
		)
	})
}
