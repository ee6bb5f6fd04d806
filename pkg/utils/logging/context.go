package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

type (
	ctxRequestIDKey struct{}
	ctxDeliveryKey  struct{}
	ctxLoggerKey    struct{}
	ctxTimeKey      struct{}
)

// TimeFunc is the clock of an operation. Tests pin it with CtxWithTime.
type TimeFunc func() time.Time

// CtxRequestID returns the request ID of ctx. A new ID is issued and attached when ctx has
// none.
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	id := types.NewRequestID()
	return id, context.WithValue(ctx, ctxRequestIDKey{}, id)
}

// CtxWithDelivery attaches the GUID of the GitHub webhook delivery being processed
func CtxWithDelivery(ctx context.Context, delivery string) context.Context {
	return context.WithValue(ctx, ctxDeliveryKey{}, delivery)
}

// CtxDelivery returns the webhook delivery GUID, or empty outside of webhook handling
func CtxDelivery(ctx context.Context) string {
	delivery, _ := ctx.Value(ctxDeliveryKey{}).(string)
	return delivery
}

func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns the logger of ctx, or the default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

// CtxTime returns the current time by the clock of ctx
func CtxTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return t()
	}
	return time.Now()
}

func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}

// inheritedKeys are the values a job detached from its request keeps
var inheritedKeys = []any{
	ctxRequestIDKey{},
	ctxDeliveryKey{},
	ctxTimeKey{},
}

// InheritContextValues copies request ID, delivery GUID and clock of src into dst. The
// logger is not copied; use With for it.
func InheritContextValues(dst, src context.Context) context.Context {
	for _, key := range inheritedKeys {
		if v := src.Value(key); v != nil {
			dst = context.WithValue(dst, key, v)
		}
	}
	return dst
}
