// Package goquery provides an HTML link scraper implementation of
// lexdoc.LinkScraper.
package goquery

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lexdoc"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default timeout for fetching a page.
const DefaultTimeout = 30 * time.Second

// Ensure Scraper implements lexdoc.LinkScraper at compile time.
var _ lexdoc.LinkScraper = (*Scraper)(nil)

// Scraper discovers PDF links on HTML pages.
type Scraper struct {
	client *http.Client
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) {
		s.client = client
	}
}

// NewScraper creates a new Scraper.
func NewScraper(opts ...Option) *Scraper {
	s := &Scraper{
		client: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScrapePDFLinks fetches startURL and returns the absolute URLs of all
// anchors pointing at PDF files, deduplicated, in document order.
func (s *Scraper) ScrapePDFLinks(ctx context.Context, startURL string) ([]string, error) {
	base, err := url.Parse(startURL)
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "invalid page URL: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, startURL, nil)
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "invalid page URL: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EPROCESSING, "failed to fetch page: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, lexdoc.Errorf(lexdoc.EPROCESSING, "failed to fetch page: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EPROCESSING, "failed to parse page: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		resolved := resolvePDFURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}

		seen[resolved] = true
		links = append(links, resolved)
	})

	return links, nil
}

// resolvePDFURL resolves href against base and returns the absolute URL if
// it points at a PDF file, or an empty string otherwise.
func resolvePDFURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	if !strings.HasSuffix(strings.ToLower(resolved.Path), ".pdf") {
		return ""
	}
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}
