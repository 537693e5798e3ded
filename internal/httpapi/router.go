package httpapi

import (
	"bytes"
	"net/http"
	"time"

	"go.uber.org/zap"

	"quiz-session/internal/quiz"
)

const maxLoggedBodyBytes = 512

func NewRouter(repo quiz.Repository, logger *zap.Logger) http.Handler {
	api := NewAPI(repo, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/quizzes", api.HandleQuizzes)
	mux.HandleFunc("/quizzes/{id}", api.HandleQuiz)

	return logRequests(api.logger, mux)
}

// statusRecorder remembers the status and the start of the body so failed
// requests can be logged with their error payload.
type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	maxLogBytes  int
	logBody      bytes.Buffer
	truncated    bool
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if room := r.maxLogBytes - r.logBody.Len(); room > 0 {
		if len(p) > room {
			r.logBody.Write(p[:room])
			r.truncated = true
		} else {
			r.logBody.Write(p)
		}
	} else if len(p) > 0 {
		r.truncated = true
	}

	n, err := r.ResponseWriter.Write(p)
	r.bytesWritten += n
	return n, err
}

func logRequests(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			maxLogBytes:    maxLoggedBodyBytes,
		}

		next.ServeHTTP(recorder, r)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.statusCode),
			zap.Int("bytes", recorder.bytesWritten),
			zap.Duration("duration", time.Since(start)),
		}
		if recorder.statusCode >= http.StatusBadRequest {
			fields = append(fields,
				zap.ByteString("body", recorder.logBody.Bytes()),
				zap.Bool("body_truncated", recorder.truncated),
			)
			logger.Warn("http request failed", fields...)
			return
		}
		logger.Debug("http request", fields...)
	})
}
