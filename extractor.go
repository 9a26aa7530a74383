package lexdoc

import "context"

// TextExtractor extracts text from a PDF through OCR.
type TextExtractor interface {
	// ExtractText converts the PDF into page images, runs recognition on
	// each page, and returns the page outputs joined by a newline with
	// surrounding whitespace trimmed. Any conversion or recognition error
	// is returned as EPROCESSING carrying the underlying cause; failures
	// are not retried.
	ExtractText(ctx context.Context, pdf []byte) (string, error)
}
