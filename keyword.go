package lexdoc

import "context"

// Keyword is a single extracted term associated with exactly one document.
type Keyword struct {
	ID         string `json:"id"`
	DocumentID string `json:"documentId"`
	Text       string `json:"keyword"`
}

// ScoredKeyword is a keyword candidate ranked by relevance score.
type ScoredKeyword struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
}

// KeywordExtractor extracts ranked keyword candidates from text.
type KeywordExtractor interface {
	// ExtractKeywords returns at most topN candidates ordered by
	// descending relevance score. Candidates are 1-2 token n-grams with
	// no stop-word filtering, so domain-specific terms are never dropped.
	// Returns EPROCESSING if the underlying model fails.
	ExtractKeywords(ctx context.Context, text string, topN int) ([]*ScoredKeyword, error)
}
