package log

import (
	"log/slog"
	"net/http"
	"time"
)

// statusRecorder captures the response status for after-the-fact logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware logs every HTTP request with method, path, status and
// duration. 4xx responses log at warn, 5xx at error.
func Middleware(logger *Logger) func(http.Handler) http.Handler {
	httpLogger := logger.WithComponent(ComponentHTTP)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			switch {
			case rec.status >= 500:
				level = slog.LevelError
			case rec.status >= 400:
				level = slog.LevelWarn
			}

			httpLogger.Log(r.Context(), level, "HTTP request completed",
				FieldComponent, ComponentHTTP,
				FieldMethod, r.Method,
				FieldPath, r.URL.Path,
				FieldStatusCode, rec.status,
				FieldDuration, time.Since(start).Milliseconds())
		})
	}
}
