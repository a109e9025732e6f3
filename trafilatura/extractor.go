// Package trafilatura provides an alternative declutter.Extractor built on
// github.com/markusmobius/go-trafilatura.
package trafilatura

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/declutter"
	dechtml "github.com/fwojciec/declutter/html"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements declutter.Extractor at compile time.
var _ declutter.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithOriginalURL sets the URL the page was loaded from.
func WithOriginalURL(u *url.URL) Option {
	return func(e *Extractor) {
		e.opts.OriginalURL = u
	}
}

// WithoutFallback disables the readability and dom-distiller fallbacks.
func WithoutFallback() Option {
	return func(e *Extractor) {
		e.opts.EnableFallback = false
	}
}

// NewExtractor creates a new Extractor. Links and images are kept and the
// fallback extractors are enabled.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{opts: trafilatura.Options{
		EnableFallback: true,
		IncludeImages:  true,
		IncludeLinks:   true,
	}}
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

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, fmt.Errorf("trafilatura: %w", err)
	}

	out := &declutter.ExtractResult{Title: strings.TrimSpace(result.Metadata.Title)}
	if result.ContentNode == nil {
		return out, nil
	}
	content, err := dechtml.Render(dechtml.Wrap(result.ContentNode))
	if err != nil {
		return nil, err
	}
	out.ContentHTML = content
	out.ContentHash = declutter.ComputeHash(content)
	return out, nil
}
