package mock

import (
	"context"

	"lexdoc"
)

var _ lexdoc.Asker = (*Asker)(nil)

// Asker is a mock implementation of lexdoc.Asker.
type Asker struct {
	BuildPromptFn func(contextText, question string) string
	AskFn         func(ctx context.Context, contextText, question string) (string, error)
}

func (a *Asker) BuildPrompt(contextText, question string) string {
	return a.BuildPromptFn(contextText, question)
}

func (a *Asker) Ask(ctx context.Context, contextText, question string) (string, error) {
	return a.AskFn(ctx, contextText, question)
}
