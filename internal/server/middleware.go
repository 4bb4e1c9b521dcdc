package server

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/observability"
)

// RequestLogger tags each request with a run ID and logs one line per
// request through the structured logger. The extraction service picks the
// run ID up from the request context, so both log lines share it.
func RequestLogger(logger *observability.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := observability.ContextWithRunID(r.Context(), uuid.NewString())
			reqLogger := logger.WithContext(ctx)
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			evt := reqLogger.Info()
			if status >= http.StatusInternalServerError {
				evt = reqLogger.Error()
			}
			evt.
				Str("request_id", chimiddleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("HTTP request")
		})
	}
}
