package server

import (
	"context"

	"github.com/secmon-lab/issueflow/pkg/utils/logging"
)

// DetachContext creates a context.Background() based context that keeps the logger,
// request ID and clock of ctx. Webhook jobs run on it after the response is sent.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := logging.With(context.Background(), logging.From(ctx))
	return logging.InheritContextValues(bgCtx, ctx)
}
