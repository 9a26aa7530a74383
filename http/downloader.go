// Package http provides an HTTP-based implementation of lexdoc.Downloader
// for retrieving PDF files from remote servers.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"lexdoc"

	"golang.org/x/time/rate"
)

// DefaultTimeout is the default timeout for download requests.
const DefaultTimeout = 60 * time.Second

// DefaultRPS is the default per-host request rate.
const DefaultRPS = 2.0

// Ensure Downloader implements lexdoc.Downloader at compile time.
var _ lexdoc.Downloader = (*Downloader)(nil)

// Downloader retrieves files over HTTP with per-host rate limiting.
// Each host gets its own token bucket with a burst of 1, so downloads
// from different hosts proceed concurrently while requests to the same
// host are spaced out.
type Downloader struct {
	client  *http.Client
	timeout time.Duration
	rps     float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithTimeout sets the timeout for download requests.
func WithTimeout(d time.Duration) Option {
	return func(dl *Downloader) {
		dl.timeout = d
	}
}

// WithRPS sets the per-host requests per second limit.
func WithRPS(rps float64) Option {
	return func(dl *Downloader) {
		dl.rps = rps
	}
}

// NewDownloader creates a new Downloader.
func NewDownloader(opts ...Option) *Downloader {
	dl := &Downloader{
		timeout:  DefaultTimeout,
		rps:      DefaultRPS,
		limiters: make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(dl)
	}

	dl.client = &http.Client{
		Timeout: dl.timeout,
	}

	return dl
}

// Download retrieves the file at fileURL and returns its contents.
func (dl *Downloader) Download(ctx context.Context, fileURL string) ([]byte, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "invalid file URL: %v", err)
	}

	if err := dl.wait(ctx, u.Host); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "invalid file URL: %v", err)
	}

	resp, err := dl.client.Do(req)
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EPROCESSING, "download failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, lexdoc.Errorf(lexdoc.EPROCESSING, "download failed: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EPROCESSING, "download failed: %v", err)
	}

	return body, nil
}

// wait blocks until the rate limit allows a request to the host.
func (dl *Downloader) wait(ctx context.Context, host string) error {
	dl.mu.Lock()
	limiter, ok := dl.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(dl.rps), 1)
		dl.limiters[host] = limiter
	}
	dl.mu.Unlock()

	return limiter.Wait(ctx)
}
