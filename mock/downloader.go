package mock

import (
	"context"

	"lexdoc"
)

var _ lexdoc.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of lexdoc.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string) ([]byte, error)
}

func (d *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	return d.DownloadFn(ctx, url)
}

var _ lexdoc.LinkScraper = (*LinkScraper)(nil)

// LinkScraper is a mock implementation of lexdoc.LinkScraper.
type LinkScraper struct {
	ScrapePDFLinksFn func(ctx context.Context, startURL string) ([]string, error)
}

func (s *LinkScraper) ScrapePDFLinks(ctx context.Context, startURL string) ([]string, error) {
	return s.ScrapePDFLinksFn(ctx, startURL)
}
