package mock

import (
	"context"

	"lexdoc"
)

var _ lexdoc.ChatService = (*ChatService)(nil)

// ChatService is a mock implementation of lexdoc.ChatService.
type ChatService struct {
	SaveChatMessageFn func(ctx context.Context, msg *lexdoc.ChatMessage) error
}

func (s *ChatService) SaveChatMessage(ctx context.Context, msg *lexdoc.ChatMessage) error {
	return s.SaveChatMessageFn(ctx, msg)
}
