package gh

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
)

// do runs one API call with a per-attempt timeout and retries transient failures with
// exponential backoff. The returned error is the last one of fn.
func (x *Client) do(ctx context.Context, call string, fn func(ctx context.Context) (*github.Response, error)) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = x.retryInterval
	bo.MaxElapsedTime = 0

	op := func() error {
		reqCtx, cancel := context.WithTimeout(ctx, x.timeout)
		defer cancel()

		resp, err := fn(reqCtx)
		if err == nil {
			return nil
		}
		if ctx.Err() == nil && isRetryable(resp, err) {
			return err
		}
		return backoff.Permanent(err)
	}

	notify := func(err error, wait time.Duration) {
		logging.From(ctx).Warn("retrying GitHub API call",
			slog.String("call", call),
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, x.maxRetries), ctx)
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return goerr.Wrap(err, "GitHub API call failed", goerr.V("call", call))
	}
	return nil
}

func isRetryable(resp *github.Response, err error) bool {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if resp != nil {
		return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError
	}
	return false
}

// statusCode returns the HTTP status of a failed call, or 0 when no response was received
func statusCode(err error) int {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	return 0
}

// errorMessage returns the message of a failed call, including the validation details of
// a 422 response
func errorMessage(err error) string {
	var errResp *github.ErrorResponse
	if !errors.As(err, &errResp) {
		return ""
	}
	msg := errResp.Message
	for _, e := range errResp.Errors {
		msg += " " + e.Message
	}
	return msg
}
