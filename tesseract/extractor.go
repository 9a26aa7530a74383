// Package tesseract provides an OCR-based implementation of
// lexdoc.TextExtractor. PDF pages are rasterized with the pdftoppm binary
// and recognized with the Tesseract engine.
package tesseract

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"lexdoc"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/sync/semaphore"
)

// Defaults for the extractor. The recognition language follows the
// deployment's fixed language setting.
const (
	DefaultLanguage    = "pol"
	DefaultPopplerPath = "pdftoppm"
	DefaultDPI         = 300
)

// Ensure Extractor implements lexdoc.TextExtractor at compile time.
var _ lexdoc.TextExtractor = (*Extractor)(nil)

// Extractor runs OCR over PDF page images. The underlying engine holds
// process-wide state and is not safe for unbounded concurrent use, so
// extractions are serialized through a weighted semaphore.
type Extractor struct {
	language    string
	popplerPath string
	tempDir     string
	dpi         int
	sem         *semaphore.Weighted
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLanguage sets the recognition language. Defaults to DefaultLanguage.
func WithLanguage(lang string) Option {
	return func(e *Extractor) {
		e.language = lang
	}
}

// WithPopplerPath sets the path to the pdftoppm binary.
// Defaults to DefaultPopplerPath (resolved via PATH).
func WithPopplerPath(path string) Option {
	return func(e *Extractor) {
		e.popplerPath = path
	}
}

// WithTempDir sets the directory for temporary page images.
// Defaults to the system temp directory.
func WithTempDir(dir string) Option {
	return func(e *Extractor) {
		e.tempDir = dir
	}
}

// WithDPI sets the rasterization resolution. Defaults to DefaultDPI.
func WithDPI(dpi int) Option {
	return func(e *Extractor) {
		e.dpi = dpi
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		language:    DefaultLanguage,
		popplerPath: DefaultPopplerPath,
		tempDir:     os.TempDir(),
		dpi:         DefaultDPI,
		sem:         semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText converts the PDF into page images, recognizes each page and
// returns the page outputs joined by a newline. Temporary artifacts are
// removed on every exit path.
func (e *Extractor) ExtractText(ctx context.Context, pdf []byte) (string, error) {
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer e.sem.Release(1)

	dir, err := os.MkdirTemp(e.tempDir, "lexdoc-ocr-*")
	if err != nil {
		return "", lexdoc.Errorf(lexdoc.EPROCESSING, "failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	pdfPath := filepath.Join(dir, "input.pdf")
	if err := os.WriteFile(pdfPath, pdf, 0o600); err != nil {
		return "", lexdoc.Errorf(lexdoc.EPROCESSING, "failed to write temp file: %v", err)
	}

	pages, err := e.rasterize(ctx, dir, pdfPath)
	if err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.language); err != nil {
		return "", lexdoc.Errorf(lexdoc.EPROCESSING, "failed to set OCR language: %v", err)
	}

	var sb strings.Builder
	for _, page := range pages {
		if err := client.SetImage(page); err != nil {
			return "", lexdoc.Errorf(lexdoc.EPROCESSING, "failed to load page image: %v", err)
		}
		text, err := client.Text()
		if err != nil {
			return "", lexdoc.Errorf(lexdoc.EPROCESSING, "text recognition failed: %v", err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), nil
}

// rasterize converts the PDF into one PNG per page and returns the page
// image paths in page order.
func (e *Extractor) rasterize(ctx context.Context, dir, pdfPath string) ([]string, error) {
	prefix := filepath.Join(dir, "page")
	cmd := exec.CommandContext(ctx, e.popplerPath, "-png", "-r", strconv.Itoa(e.dpi), pdfPath, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, lexdoc.Errorf(lexdoc.EPROCESSING, "pdf conversion failed: %v: %s", err, strings.TrimSpace(string(out)))
	}

	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EPROCESSING, "failed to list page images: %v", err)
	}
	if len(pages) == 0 {
		return nil, lexdoc.Errorf(lexdoc.EPROCESSING, "pdf conversion produced no pages")
	}

	sortPages(pages)
	return pages, nil
}

// sortPages orders page image paths by page number. pdftoppm pads page
// numbers to the width of the last page, so a lexical sort would misorder
// mixed-width names.
func sortPages(pages []string) {
	sort.Slice(pages, func(i, j int) bool {
		return pageNumber(pages[i]) < pageNumber(pages[j])
	})
}

// pageNumber extracts the numeric page suffix from a pdftoppm output name.
func pageNumber(path string) int {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	idx := strings.LastIndex(base, "-")
	if idx < 0 {
		return 0
	}
	n, err := strconv.Atoi(base[idx+1:])
	if err != nil {
		return 0
	}
	return n
}
