package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/chef-assistente/internal/api/shared"
)

// TraceHeader carries the request's trace ID back to the client.
const TraceHeader = "X-Trace-ID"

// NewTraceMiddleware returns middleware that adds a trace ID to the request
// context and response headers. Apply it early so every later handler and
// error response can see the ID.
func NewTraceMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			w.Header().Set(TraceHeader, traceID)

			logger.DebugContext(ctx, "request started",
				slog.String("trace_id", traceID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
