package lexdoc

import "context"

// Correction is the outcome of a grammar correction pass. Original is the
// input text with line endings normalized to "\n" so comparison against
// Corrected is well-defined.
type Correction struct {
	Original  string `json:"originalText"`
	Corrected string `json:"correctedText"`
}

// Corrector applies grammar and spelling correction to text.
type Corrector interface {
	// Correct returns the corrected text alongside the normalized
	// original. Returns EPROCESSING if the underlying tool fails;
	// failures are not retried.
	Correct(ctx context.Context, text string) (*Correction, error)
}
