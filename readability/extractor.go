// Package readability provides an alternative declutter.Extractor built on
// github.com/go-shiori/go-readability.
package readability

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/declutter"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements declutter.Extractor at compile time.
var _ declutter.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPageURL sets the URL the page was loaded from. go-readability uses it
// to make relative links absolute.
func WithPageURL(u *url.URL) Option {
	return func(e *Extractor) {
		e.pageURL = u
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*declutter.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, declutter.Errorf(declutter.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, fmt.Errorf("readability: %w", err)
	}

	result := &declutter.ExtractResult{Title: strings.TrimSpace(article.Title)}
	content := strings.TrimSpace(article.Content)
	if content == "" {
		return result, nil
	}
	result.ContentHTML = content
	result.ContentHash = declutter.ComputeHash(content)
	return result, nil
}
