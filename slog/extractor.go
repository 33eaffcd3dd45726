package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wordseek"
)

// Ensure LoggingExtractor implements wordseek.Extractor.
var _ wordseek.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   wordseek.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next wordseek.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the shape of the
// result.
func (e *LoggingExtractor) Extract(html, canonicalURL, language string) (entry *wordseek.Entry, err error) {
	defer func(begin time.Time) {
		var etymologies, cards int
		if entry != nil {
			etymologies = len(entry.Etymologies)
			cards = len(wordseek.Cards(entry))
		}
		e.logger.Info("extract",
			"url", canonicalURL,
			"language", language,
			"etymologies", etymologies,
			"cards", cards,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, canonicalURL, language)
}
