// Package slog provides logging decorators around the domain services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"lexdoc"
)

// Ensure LoggingPipeline implements lexdoc.Pipeline.
var _ lexdoc.Pipeline = (*LoggingPipeline)(nil)

// LoggingPipeline wraps a Pipeline with per-run logging.
type LoggingPipeline struct {
	next   lexdoc.Pipeline
	logger *slog.Logger
}

// NewLoggingPipeline creates a new LoggingPipeline.
func NewLoggingPipeline(next lexdoc.Pipeline, logger *slog.Logger) *LoggingPipeline {
	return &LoggingPipeline{next: next, logger: logger}
}

// LoadPDFData delegates to the wrapped pipeline and logs the run.
func (p *LoggingPipeline) LoadPDFData(ctx context.Context, in lexdoc.IngestInput) (res *lexdoc.IngestResult, err error) {
	defer func(begin time.Time) {
		id := ""
		if res != nil {
			id = res.ID
		}
		p.logger.Info("pdf ingestion",
			"url", in.URL,
			"filename", in.Filename,
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.LoadPDFData(ctx, in)
}

// AskForAdvice delegates to the wrapped pipeline and logs the exchange.
// Question and answer text are not logged.
func (p *LoggingPipeline) AskForAdvice(ctx context.Context, in lexdoc.AdviceInput) (res *lexdoc.AdviceResult, err error) {
	defer func(begin time.Time) {
		p.logger.Info("advice request",
			"documentId", in.DocumentID,
			"hasFile", len(in.PDF) > 0,
			"hasInputText", in.InputText != "",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.AskForAdvice(ctx, in)
}
