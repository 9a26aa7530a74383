package mock

import (
	"context"

	"lexdoc"
)

var _ lexdoc.Pipeline = (*Pipeline)(nil)

// Pipeline is a mock implementation of lexdoc.Pipeline.
type Pipeline struct {
	LoadPDFDataFn  func(ctx context.Context, in lexdoc.IngestInput) (*lexdoc.IngestResult, error)
	AskForAdviceFn func(ctx context.Context, in lexdoc.AdviceInput) (*lexdoc.AdviceResult, error)
}

func (p *Pipeline) LoadPDFData(ctx context.Context, in lexdoc.IngestInput) (*lexdoc.IngestResult, error) {
	return p.LoadPDFDataFn(ctx, in)
}

func (p *Pipeline) AskForAdvice(ctx context.Context, in lexdoc.AdviceInput) (*lexdoc.AdviceResult, error) {
	return p.AskForAdviceFn(ctx, in)
}
