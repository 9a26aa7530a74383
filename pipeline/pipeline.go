// Package pipeline orchestrates the document processing flows: ingestion
// (OCR, correction, keyword extraction, persistence) and advice
// (context resolution, prompt construction, inference).
package pipeline

import (
	"context"
	"net/url"
	"path"
	"strings"

	"lexdoc"
)

// DefaultTopN is the default number of keywords extracted during ingestion.
const DefaultTopN = 7

// Ensure Orchestrator implements lexdoc.Pipeline at compile time.
var _ lexdoc.Pipeline = (*Orchestrator)(nil)

// Orchestrator runs the processing stages in strict sequence. A failure at
// any stage aborts the run and nothing is persisted.
type Orchestrator struct {
	extractor lexdoc.TextExtractor
	corrector lexdoc.Corrector
	keywords  lexdoc.KeywordExtractor
	documents lexdoc.DocumentService
	asker     lexdoc.Asker

	topN int
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithDefaultTopN sets the number of keywords extracted during ingestion.
func WithDefaultTopN(n int) Option {
	return func(o *Orchestrator) {
		o.topN = n
	}
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	extractor lexdoc.TextExtractor,
	corrector lexdoc.Corrector,
	keywords lexdoc.KeywordExtractor,
	documents lexdoc.DocumentService,
	asker lexdoc.Asker,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		extractor: extractor,
		corrector: corrector,
		keywords:  keywords,
		documents: documents,
		asker:     asker,
		topN:      DefaultTopN,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// LoadPDFData runs the ingestion flow for a single PDF.
func (o *Orchestrator) LoadPDFData(ctx context.Context, in lexdoc.IngestInput) (*lexdoc.IngestResult, error) {
	name := in.Filename
	if name == "" {
		name = filenameFromURL(in.URL)
	}
	if err := validatePDFName(name); err != nil {
		return nil, err
	}

	text, err := o.extractor.ExtractText(ctx, in.PDF)
	if err != nil {
		return nil, err
	}

	corr, err := o.corrector.Correct(ctx, text)
	if err != nil {
		return nil, err
	}

	scored, err := o.keywords.ExtractKeywords(ctx, corr.Corrected, o.topN)
	if err != nil {
		return nil, err
	}

	doc := &lexdoc.Document{
		Name:             name,
		URL:              in.URL,
		Content:          corr.Original,
		CorrectedContent: &corr.Corrected,
	}
	if err := o.documents.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}

	keywords := make([]string, len(scored))
	for i, kw := range scored {
		keywords[i] = kw.Keyword
	}
	if len(keywords) > 0 {
		if _, err := o.documents.ReplaceKeywords(ctx, doc.ID, keywords); err != nil {
			return nil, err
		}
	}

	return &lexdoc.IngestResult{
		ID:               doc.ID,
		Content:          doc.Content,
		CorrectedContent: corr.Corrected,
		Keywords:         keywords,
	}, nil
}

// AskForAdvice resolves context text, builds the prompt and queries the
// inference engine. Context sources are tried in priority order: stored
// document, uploaded PDF, then raw input text.
func (o *Orchestrator) AskForAdvice(ctx context.Context, in lexdoc.AdviceInput) (*lexdoc.AdviceResult, error) {
	if strings.TrimSpace(in.Question) == "" {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "question required")
	}

	contextText, err := o.resolveContext(ctx, in)
	if err != nil {
		return nil, err
	}

	answer, err := o.asker.Ask(ctx, contextText, in.Question)
	if err != nil {
		return nil, err
	}

	return &lexdoc.AdviceResult{
		Prompt: o.asker.BuildPrompt(contextText, in.Question),
		Answer: answer,
	}, nil
}

func (o *Orchestrator) resolveContext(ctx context.Context, in lexdoc.AdviceInput) (string, error) {
	switch {
	case in.DocumentID != "":
		doc, err := o.documents.FindDocumentByID(ctx, in.DocumentID)
		if err != nil {
			return "", err
		}
		if doc.CorrectedContent != nil {
			return *doc.CorrectedContent, nil
		}
		return doc.Content, nil

	case len(in.PDF) > 0:
		if err := validatePDFName(in.Filename); err != nil {
			return "", err
		}
		text, err := o.extractor.ExtractText(ctx, in.PDF)
		if err != nil {
			return "", err
		}
		// Uploaded files are persisted so the exchange can be revisited
		// against the same text later.
		doc := &lexdoc.Document{
			Name:    in.Filename,
			URL:     "uploaded://" + in.Filename,
			Content: text,
		}
		if err := o.documents.CreateDocument(ctx, doc); err != nil {
			return "", err
		}
		return text, nil

	case strings.TrimSpace(in.InputText) != "":
		return in.InputText, nil
	}

	return "", lexdoc.Errorf(lexdoc.EINVALID, "advice context required: provide a file ID, an uploaded PDF, or input text")
}

// validatePDFName checks that a filename carries the .pdf extension.
func validatePDFName(name string) error {
	if name == "" || !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return lexdoc.Errorf(lexdoc.EINVALID, "only PDF files are allowed")
	}
	return nil
}

// filenameFromURL derives a filename from the path component of a URL.
func filenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return path.Base(rawURL)
	}
	return path.Base(u.Path)
}
