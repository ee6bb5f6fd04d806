package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/secmon-lab/issueflow/pkg/utils/logging"
)

const (
	headerGitHubDelivery = "X-GitHub-Delivery"
	headerGitHubEvent    = "X-GitHub-Event"
)

// preProcess binds a request scoped logger to the context. Webhook requests also carry the
// delivery GUID so that jobs detached from the request can be traced back to it.
func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		attrs := []any{slog.Any("request_id", reqID)}

		if delivery := r.Header.Get(headerGitHubDelivery); delivery != "" {
			ctx = logging.CtxWithDelivery(ctx, delivery)
			attrs = append(attrs, slog.String("delivery", delivery))
		}

		logger := logging.From(ctx).With(attrs...)
		ctx = logging.With(ctx, logger)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		requestedAt := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status", rec.status),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("event", r.Header.Get(headerGitHubEvent)),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

// statusRecorder remembers the status code sent by the handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (x *statusRecorder) WriteHeader(code int) {
	x.status = code
	x.ResponseWriter.WriteHeader(code)
}
