package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"lexdoc"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ lexdoc.DocumentService = (*DocumentService)(nil)

// DocumentService implements lexdoc.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *lexdoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.CreatedAt = time.Now().UTC()
	doc.ContentHash = hashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, name, url, content, corrected_content, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Name, doc.URL, doc.Content, doc.CorrectedContent, doc.ContentHash,
		doc.CreatedAt.Format(time.RFC3339))

	if err != nil {
		return lexdoc.Errorf(lexdoc.ESTORAGE, "document was not persisted")
	}

	return nil
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*lexdoc.Document, error) {
	return findDocumentByID(ctx, s.db, id)
}

// queryer abstracts over DB and Tx so lookups can run inside transactions.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func findDocumentByID(ctx context.Context, q queryer, id string) (*lexdoc.Document, error) {
	var doc lexdoc.Document
	var corrected sql.NullString
	var createdAt string

	err := q.QueryRowContext(ctx, `
		SELECT id, name, url, content, corrected_content, content_hash, created_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.Name, &doc.URL, &doc.Content, &corrected, &doc.ContentHash, &createdAt)

	if err == sql.ErrNoRows {
		return nil, lexdoc.Errorf(lexdoc.ENOTFOUND, "File not found")
	}
	if err != nil {
		return nil, err
	}

	if corrected.Valid {
		doc.CorrectedContent = &corrected.String
	}

	var parseErr error
	doc.CreatedAt, parseErr = parseRFC3339(createdAt, "created_at")
	if parseErr != nil {
		return nil, parseErr
	}

	return &doc, nil
}

// SetCorrectedContent stores the corrected text for a document.
func (s *DocumentService) SetCorrectedContent(ctx context.Context, id string, text string) (*lexdoc.Document, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.ESTORAGE, "corrected text was not persisted")
	}
	defer tx.Rollback()

	doc, err := findDocumentByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE documents SET corrected_content = ? WHERE id = ?
	`, text, id); err != nil {
		return nil, lexdoc.Errorf(lexdoc.ESTORAGE, "corrected text was not persisted")
	}

	if err := tx.Commit(); err != nil {
		return nil, lexdoc.Errorf(lexdoc.ESTORAGE, "corrected text was not persisted")
	}

	doc.CorrectedContent = &text
	return doc, nil
}

// ReplaceKeywords atomically replaces the keyword set of a document.
// Prior keywords are deleted and the new set inserted in one transaction;
// on any failure the transaction is rolled back and the prior set remains.
func (s *DocumentService) ReplaceKeywords(ctx context.Context, id string, keywords []string) ([]*lexdoc.Keyword, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.ESTORAGE, "keywords were not persisted")
	}
	defer tx.Rollback()

	if _, err := findDocumentByID(ctx, tx, id); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM document_keywords WHERE document_id = ?`, id); err != nil {
		return nil, lexdoc.Errorf(lexdoc.ESTORAGE, "keywords were not persisted")
	}

	replaced := make([]*lexdoc.Keyword, 0, len(keywords))
	for _, text := range keywords {
		kw := &lexdoc.Keyword{
			ID:         uuid.New().String(),
			DocumentID: id,
			Text:       text,
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO document_keywords (id, document_id, keyword)
			VALUES (?, ?, ?)
		`, kw.ID, kw.DocumentID, kw.Text); err != nil {
			return nil, lexdoc.Errorf(lexdoc.ESTORAGE, "keywords were not persisted")
		}
		replaced = append(replaced, kw)
	}

	if err := tx.Commit(); err != nil {
		return nil, lexdoc.Errorf(lexdoc.ESTORAGE, "keywords were not persisted")
	}

	return replaced, nil
}

// FindKeywords retrieves the stored keyword set of a document in
// insertion order.
func (s *DocumentService) FindKeywords(ctx context.Context, id string) ([]*lexdoc.Keyword, error) {
	if _, err := findDocumentByID(ctx, s.db, id); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, keyword
		FROM document_keywords
		WHERE document_id = ?
		ORDER BY rowid ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query keywords: %w", err)
	}
	defer rows.Close()

	var keywords []*lexdoc.Keyword
	for rows.Next() {
		var kw lexdoc.Keyword
		if err := rows.Scan(&kw.ID, &kw.DocumentID, &kw.Text); err != nil {
			return nil, err
		}
		keywords = append(keywords, &kw)
	}

	return keywords, rows.Err()
}
