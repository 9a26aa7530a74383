package lexdoc

import (
	"context"
	"time"
)

// ChatMessage is one question/answer exchange, optionally tied to a
// document. A nil DocumentID means the message is free-standing.
type ChatMessage struct {
	ID         string    `json:"id"`
	DocumentID *string   `json:"documentId"`
	Prompt     string    `json:"prompt"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the message contains invalid fields.
func (m *ChatMessage) Validate() error {
	if m.Prompt == "" {
		return Errorf(EINVALID, "chat message prompt required")
	}
	if m.Answer == "" {
		return Errorf(EINVALID, "chat message answer required")
	}
	return nil
}

// ChatService persists chat exchanges.
type ChatService interface {
	// SaveChatMessage stores a chat message. When DocumentID is set it
	// must reference an existing document; otherwise ENOTFOUND is
	// returned and no row is inserted.
	SaveChatMessage(ctx context.Context, msg *ChatMessage) error
}
