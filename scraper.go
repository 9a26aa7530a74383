package lexdoc

import "context"

// LinkScraper collects PDF links from a web page.
type LinkScraper interface {
	// ScrapePDFLinks fetches the page at startURL and returns the
	// absolute URLs of all anchors pointing at PDF files, deduplicated,
	// in document order.
	ScrapePDFLinks(ctx context.Context, startURL string) ([]string, error)
}
