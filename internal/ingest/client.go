// Package ingest opens table sources for the dataset loader. Local paths
// are read from disk; http and https locations are downloaded once, with
// requests spaced by a rate limiter.
package ingest

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 60 * time.Second
	rateLimit      = 2 // requests per second
)

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	Timeout time.Duration
}

// Client downloads remote CSV tables.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Client.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(rateLimit), 1),
	}
}

// IsRemote reports whether location is an http or https URL.
func IsRemote(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Open returns a reader for location, downloading it when remote.
// A missing file or a 404 response wraps fs.ErrNotExist.
func (c *Client) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !IsRemote(location) {
		return os.Open(location)
	}
	return c.Download(ctx, location)
}

// Download fetches rawURL and returns the response body. Failures are
// returned as-is; the caller treats them as fatal.
func (c *Client) Download(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: create request")
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "ingest: rate limiter wait")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: get %s", rawURL)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_ = resp.Body.Close()
		return nil, eris.Wrapf(fs.ErrNotExist, "ingest: %s", rawURL)
	case resp.StatusCode != http.StatusOK:
		_ = resp.Body.Close()
		return nil, eris.Errorf("ingest: unexpected status %d from %s", resp.StatusCode, rawURL)
	}

	zap.L().Debug("downloaded table",
		zap.String("url", rawURL),
		zap.Int64("content_length", resp.ContentLength),
		zap.Duration("elapsed", time.Since(start)),
	)
	return resp.Body, nil
}
