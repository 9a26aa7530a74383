package mock

import (
	"context"

	"lexdoc"
)

var _ lexdoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of lexdoc.DocumentService.
type DocumentService struct {
	CreateDocumentFn      func(ctx context.Context, doc *lexdoc.Document) error
	FindDocumentByIDFn    func(ctx context.Context, id string) (*lexdoc.Document, error)
	SetCorrectedContentFn func(ctx context.Context, id string, text string) (*lexdoc.Document, error)
	ReplaceKeywordsFn     func(ctx context.Context, id string, keywords []string) ([]*lexdoc.Keyword, error)
	FindKeywordsFn        func(ctx context.Context, id string) ([]*lexdoc.Keyword, error)
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *lexdoc.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*lexdoc.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) SetCorrectedContent(ctx context.Context, id string, text string) (*lexdoc.Document, error) {
	return s.SetCorrectedContentFn(ctx, id, text)
}

func (s *DocumentService) ReplaceKeywords(ctx context.Context, id string, keywords []string) ([]*lexdoc.Keyword, error) {
	return s.ReplaceKeywordsFn(ctx, id, keywords)
}

func (s *DocumentService) FindKeywords(ctx context.Context, id string) ([]*lexdoc.Keyword, error) {
	return s.FindKeywordsFn(ctx, id)
}
