package sqlite

import (
	"context"
	"time"

	"lexdoc"

	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ lexdoc.ChatService = (*ChatService)(nil)

// ChatService implements lexdoc.ChatService using SQLite.
type ChatService struct {
	db *DB
}

// NewChatService creates a new ChatService.
func NewChatService(db *DB) *ChatService {
	return &ChatService{db: db}
}

// SaveChatMessage stores a chat message. When DocumentID is set the
// referenced document must exist; otherwise no row is inserted.
func (s *ChatService) SaveChatMessage(ctx context.Context, msg *lexdoc.ChatMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return lexdoc.Errorf(lexdoc.ESTORAGE, "chat message was not persisted")
	}
	defer tx.Rollback()

	if msg.DocumentID != nil {
		if _, err := findDocumentByID(ctx, tx, *msg.DocumentID); err != nil {
			return err
		}
	}

	msg.ID = uuid.New().String()
	msg.CreatedAt = time.Now().UTC()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO chat_messages (id, document_id, prompt, answer, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, msg.ID, msg.DocumentID, msg.Prompt, msg.Answer, msg.CreatedAt.Format(time.RFC3339)); err != nil {
		return lexdoc.Errorf(lexdoc.ESTORAGE, "chat message was not persisted")
	}

	if err := tx.Commit(); err != nil {
		return lexdoc.Errorf(lexdoc.ESTORAGE, "chat message was not persisted")
	}

	return nil
}
