// Package slog provides log/slog decorators for declutter services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/declutter"
)

// Ensure LoggingExtractor implements declutter.Extractor.
var _ declutter.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   declutter.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next declutter.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *declutter.ExtractResult, err error) {
	defer func(begin time.Time) {
		var out int
		var title string
		if result != nil {
			out = len(result.ContentHTML)
			title = result.Title
		}
		e.logger.Info("extract",
			"title", title,
			"bytes_in", len(html),
			"bytes_out", out,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
