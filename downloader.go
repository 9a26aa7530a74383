package lexdoc

import "context"

// Downloader retrieves remote PDF files.
type Downloader interface {
	// Download fetches the resource at url and returns its bytes.
	// Returns EPROCESSING on network failure or a non-OK response.
	Download(ctx context.Context, url string) ([]byte, error)
}
