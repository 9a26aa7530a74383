package slog

import (
	"context"
	"log/slog"
	"time"

	"lexdoc"
)

// Ensure LoggingDownloader implements lexdoc.Downloader.
var _ lexdoc.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with per-request logging.
type LoggingDownloader struct {
	next   lexdoc.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next lexdoc.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the request.
func (d *LoggingDownloader) Download(ctx context.Context, url string) (data []byte, err error) {
	defer func(begin time.Time) {
		d.logger.Info("pdf download",
			"url", url,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, url)
}
