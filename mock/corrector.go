package mock

import (
	"context"

	"lexdoc"
)

var _ lexdoc.Corrector = (*Corrector)(nil)

// Corrector is a mock implementation of lexdoc.Corrector.
type Corrector struct {
	CorrectFn func(ctx context.Context, text string) (*lexdoc.Correction, error)
}

func (c *Corrector) Correct(ctx context.Context, text string) (*lexdoc.Correction, error) {
	return c.CorrectFn(ctx, text)
}
