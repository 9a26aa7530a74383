package lexdoc

import "context"

// Asker provides question answering over context text through a language
// model.
type Asker interface {
	// BuildPrompt builds the instruction-formatted prompt embedding the
	// context text and the question.
	BuildPrompt(contextText, question string) string

	// Ask sends the prompt to the inference engine and returns the
	// cleaned result. Network and malformed-response errors are returned
	// as EPROCESSING; there is no automatic retry.
	Ask(ctx context.Context, contextText, question string) (string, error)
}
