package errutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
)

// HandleError logs err and sends it to Sentry. Values attached with goerr.V are copied to
// the Sentry scope as extras.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("message", msg)
		if delivery := logging.CtxDelivery(ctx); delivery != "" {
			scope.SetTag("github.delivery", delivery)
		}
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}

// IsAlreadyStarted reports whether err means the work item was already picked up by an
// earlier run. Such failures are expected in a re-run and not reported as errors.
func IsAlreadyStarted(err error) bool {
	return errors.Is(err, types.ErrAlreadyStarted) || errors.Is(err, types.ErrBranchExists)
}
