package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/models"
)

type accessLogKey struct{}

// accessLog collects what inner middlewares learn about a request while it is
// served. The auth middleware fills in the caller.
type accessLog struct {
	caller *models.Token
}

// setAccessLogCaller records the verified caller for the access log line.
// It is a no-op outside withLogging.
func setAccessLogCaller(ctx context.Context, token models.Token) {
	if entry, ok := ctx.Value(accessLogKey{}).(*accessLog); ok {
		entry.caller = &token
	}
}

// withLogging writes one access log line per request. The line carries the
// trace_id of the request logger and, on protected routes, the caller.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		entry := &accessLog{}
		r = r.WithContext(context.WithValue(r.Context(), accessLogKey{}, entry))
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			// net/http answers 200 for handlers that write nothing
			status = http.StatusOK
		}

		event := log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)
		if entry.caller != nil {
			event = event.Str("login", entry.caller.Login).Int64("user_id", entry.caller.UserID)
		}
		event.Msg("request served")
	})
}
