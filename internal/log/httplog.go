package log

import (
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// HTTPRequestLogger is a middleware that logs each request with its status,
// duration and response size through the package logger
func HTTPRequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, req)

		duration := time.Since(start)
		if rec.status >= http.StatusInternalServerError {
			Errorf("%s %s %d %v %d bytes (%s)", req.Method, req.URL.Path, rec.status, duration, rec.size, req.RemoteAddr)
			return
		}
		Debugf("%s %s %d %v %d bytes (%s)", req.Method, req.URL.Path, rec.status, duration, rec.size, req.RemoteAddr)
	})
}
