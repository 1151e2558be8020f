package etymology

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const searchPath = "/index.php"

// HTTPFetcher queries the etymonline search page.
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher creates a fetcher for baseURL. A zero timeout leaves the
// request bounded only by the context.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPFetcher{
		client: client,
	}
}

// Fetch returns the body of the search page for query whatever its status
// code; pages without entries are detected by Extract.
func (f *HTTPFetcher) Fetch(ctx context.Context, query string) ([]byte, error) {
	res, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("search", query).
		Get(searchPath)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("client.R.Get > %w", ctxErr)
		}
		slog.Default().Debug("etymonline request failed",
			"query", query,
			"error", err)
		return nil, &ConnectivityError{Err: err}
	}

	slog.Default().Debug("etymonline response",
		"query", query,
		"status", res.StatusCode(),
		"bytes", len(res.Body()))
	return res.Body(), nil
}
