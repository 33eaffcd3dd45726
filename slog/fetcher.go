package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordseek"
)

// Ensure LoggingFetcher implements wordseek.PageFetcher.
var _ wordseek.PageFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a PageFetcher with logging.
type LoggingFetcher struct {
	next   wordseek.PageFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next wordseek.PageFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchPage delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) FetchPage(ctx context.Context, word, language string, proto bool) (page *wordseek.Page, err error) {
	defer func(begin time.Time) {
		var size int
		if page != nil {
			size = len(page.HTML)
		}
		f.logger.Info("fetch page",
			"word", word,
			"language", language,
			"proto", proto,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchPage(ctx, word, language, proto)
}
