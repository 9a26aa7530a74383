package lexdoc

import "context"

// IngestInput is the input to the ingestion flow: the source URL of a PDF
// plus its decoded bytes.
type IngestInput struct {
	URL      string
	Filename string
	PDF      []byte
}

// IngestResult is the outcome of a completed ingestion.
type IngestResult struct {
	ID               string   `json:"id"`
	Content          string   `json:"content"`
	CorrectedContent string   `json:"correctedContent"`
	Keywords         []string `json:"keywords"`
}

// AdviceInput is the input to the advice flow. Context is resolved with
// priority DocumentID, then PDF, then InputText.
type AdviceInput struct {
	Question   string
	DocumentID string
	Filename   string
	PDF        []byte
	InputText  string
}

// AdviceResult carries the prompt that was sent and the model's answer.
type AdviceResult struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// Pipeline orchestrates the two document processing flows.
type Pipeline interface {
	// LoadPDFData runs the ingestion flow: OCR, correction, keyword
	// extraction and persistence, in strict sequence. A failure at any
	// stage aborts the run; work already done is discarded and nothing
	// is persisted.
	LoadPDFData(ctx context.Context, in IngestInput) (*IngestResult, error)

	// AskForAdvice runs the advice flow: context resolution, prompt
	// construction and inference. The exchange is not persisted; saving
	// chat history is a separate explicit call.
	AskForAdvice(ctx context.Context, in AdviceInput) (*AdviceResult, error)
}
