package render

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Fetcher retrieves a remote asset, returning its bytes and content type.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}

// HTTPFetcher fetches assets over HTTP. The underlying client reuses
// connections and is safe for concurrent use, so one instance serves the
// whole process.
type HTTPFetcher struct {
	client *resty.Client
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: resty.New().SetTimeout(15 * time.Second),
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode())
	}
	return resp.Body(), resp.Header().Get("Content-Type"), nil
}
