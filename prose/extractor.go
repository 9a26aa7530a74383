// Package prose provides a keyword extractor implementation of
// lexdoc.KeywordExtractor built on the prose NLP tokenizer.
package prose

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"lexdoc"

	"github.com/jdkato/prose/v2"
	"golang.org/x/sync/semaphore"
)

// Candidate n-grams span one to two tokens. Stop words are intentionally
// not filtered so domain-specific terms are never dropped.
const (
	ngramMin = 1
	ngramMax = 2
)

// Ensure Extractor implements lexdoc.KeywordExtractor at compile time.
var _ lexdoc.KeywordExtractor = (*Extractor)(nil)

// Extractor ranks 1-2 token n-grams by relative frequency. The tokenizer
// model holds shared state, so extractions are serialized through a
// weighted semaphore.
type Extractor struct {
	sem *semaphore.Weighted
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{sem: semaphore.NewWeighted(1)}
}

// ExtractKeywords returns at most topN keyword candidates ordered by
// descending score. If fewer candidates exist, all are returned.
func (e *Extractor) ExtractKeywords(ctx context.Context, text string, topN int) ([]*lexdoc.ScoredKeyword, error) {
	if topN <= 0 {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "topN must be positive")
	}

	if err := e.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer e.sem.Release(1)

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EPROCESSING, "tokenization failed: %v", err)
	}

	words := make([]string, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		if isWord(tok.Text) {
			words = append(words, strings.ToLower(tok.Text))
		}
	}

	counts := make(map[string]int)
	order := make(map[string]int)
	total := 0
	for n := ngramMin; n <= ngramMax; n++ {
		for i := 0; i+n <= len(words); i++ {
			gram := strings.Join(words[i:i+n], " ")
			if _, seen := counts[gram]; !seen {
				order[gram] = len(order)
			}
			counts[gram]++
			total++
		}
	}

	if total == 0 {
		return nil, nil
	}

	candidates := make([]*lexdoc.ScoredKeyword, 0, len(counts))
	for gram, count := range counts {
		candidates = append(candidates, &lexdoc.ScoredKeyword{
			Keyword: gram,
			Score:   float64(count) / float64(total),
		})
	}

	// Descending score; ties resolve to first occurrence so results are
	// deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return order[candidates[i].Keyword] < order[candidates[j].Keyword]
	})

	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	return candidates, nil
}

// isWord reports whether a token carries at least one letter or digit.
func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
