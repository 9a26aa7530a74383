package lexdoc

import (
	"context"
	"time"
)

// Document represents one ingested PDF and its derived text. Content holds
// the raw OCR output; CorrectedContent is nil until the correction stage
// persists its result.
type Document struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	URL              string    `json:"url"`
	Content          string    `json:"content"`
	CorrectedContent *string   `json:"correctedContent"`
	ContentHash      string    `json:"contentHash"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	if d.URL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	return nil
}

// DocumentService represents a service for managing documents and their
// keyword sets. All mutating operations commit as a single transaction and
// roll back on any storage error; a multi-row change is never partially
// applied.
type DocumentService interface {
	// CreateDocument creates a new document. The ID, content hash and
	// creation timestamp are generated. Returns ESTORAGE if the
	// transaction cannot commit.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// SetCorrectedContent stores the corrected text for a document and
	// returns the updated document.
	// Returns ENOTFOUND if the document does not exist.
	SetCorrectedContent(ctx context.Context, id string, text string) (*Document, error)

	// ReplaceKeywords atomically replaces the keyword set of a document:
	// prior keywords are deleted and the new set inserted in one
	// transaction, or neither happens.
	// Returns ENOTFOUND if the document does not exist.
	ReplaceKeywords(ctx context.Context, id string, keywords []string) ([]*Keyword, error)

	// FindKeywords retrieves the stored keyword set of a document in
	// insertion order.
	// Returns ENOTFOUND if the document does not exist.
	FindKeywords(ctx context.Context, id string) ([]*Keyword, error)
}
