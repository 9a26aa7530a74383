package mock

import (
	"context"

	"lexdoc"
)

var _ lexdoc.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of lexdoc.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(ctx context.Context, pdf []byte) (string, error)
}

func (e *TextExtractor) ExtractText(ctx context.Context, pdf []byte) (string, error) {
	return e.ExtractTextFn(ctx, pdf)
}

var _ lexdoc.KeywordExtractor = (*KeywordExtractor)(nil)

// KeywordExtractor is a mock implementation of lexdoc.KeywordExtractor.
type KeywordExtractor struct {
	ExtractKeywordsFn func(ctx context.Context, text string, topN int) ([]*lexdoc.ScoredKeyword, error)
}

func (e *KeywordExtractor) ExtractKeywords(ctx context.Context, text string, topN int) ([]*lexdoc.ScoredKeyword, error) {
	return e.ExtractKeywordsFn(ctx, text, topN)
}
