package checker

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"
)

const maxResponseBytes = 4 << 20

func httpClient(client *http.Client, timeout time.Duration) *http.Client {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: timeout}
}

func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body
	return io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
}

// contextErr returns the caller's cancellation error when the request failed
// because ctx ended, so that callers abort instead of skipping the batch.
func contextErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func excerpt(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit])
}
