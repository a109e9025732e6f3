// Package goquery provides the HTML front-end of declutter built on
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/declutter"
	dechtml "github.com/fwojciec/declutter/html"
)

// Ensure Extractor implements declutter.Extractor at compile time.
var _ declutter.Extractor = (*Extractor)(nil)

// Extractor parses raw HTML, runs the declutter core on the page body and
// renders the result.
type Extractor struct {
	sanitizer declutter.Sanitizer
	baseURL   *url.URL
	opts      []declutter.Option
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSanitizer sets a sanitizer applied to the rendered content.
func WithSanitizer(s declutter.Sanitizer) Option {
	return func(e *Extractor) {
		e.sanitizer = s
	}
}

// WithBaseURL resolves relative link and image URLs in the output against
// base. Links that are not HTTP (javascript:, mailto:, ...) lose their href.
func WithBaseURL(base *url.URL) Option {
	return func(e *Extractor) {
		e.baseURL = base
	}
}

// WithExtractOptions sets options passed to declutter.Extract.
func WithExtractOptions(opts ...declutter.Option) Option {
	return func(e *Extractor) {
		e.opts = append(e.opts, opts...)
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

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, declutter.Errorf(declutter.EINVALID, "failed to parse HTML: %v", err)
	}

	container := declutter.Extract(FromSelection(doc.Find("body").First()), dechtml.NewDocument(), e.opts...)

	node, ok := container.(*dechtml.Node)
	if !ok {
		return nil, declutter.Errorf(declutter.EINTERNAL, "unexpected container type %T", container)
	}
	sel := goquery.NewDocumentFromNode(node.HTML()).Selection
	if !hasContent(node, sel) {
		return &declutter.ExtractResult{Title: extractTitle(doc)}, nil
	}
	if e.baseURL != nil {
		resolveURLs(sel, e.baseURL)
	}

	content, err := dechtml.Render(container)
	if err != nil {
		return nil, err
	}
	if e.sanitizer != nil {
		content = e.sanitizer.Sanitize(content)
	}

	return &declutter.ExtractResult{
		Title:       extractTitle(doc),
		ContentHTML: content,
		ContentHash: declutter.ComputeHash(content),
	}, nil
}

// FromSelection returns the first node of sel as a declutter.Node, or nil
// for an empty selection.
func FromSelection(sel *goquery.Selection) declutter.Node {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	return dechtml.Wrap(sel.Get(0))
}

// hasContent reports whether the container holds any text or image. Pages
// without either yield an empty result rather than an empty container.
func hasContent(node *dechtml.Node, sel *goquery.Selection) bool {
	return strings.TrimSpace(node.Text()) != "" || sel.Find("img").Length() > 0
}

// extractTitle reads the page title from Open Graph and Twitter metadata,
// then the title element, then the first h1.
func extractTitle(doc *goquery.Document) string {
	for _, selector := range []string{
		`meta[property="og:title"]`,
		`meta[name="twitter:title"]`,
	} {
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			if title := strings.TrimSpace(content); title != "" {
				return title
			}
		}
	}
	for _, selector := range []string{"title", "h1"} {
		if title := strings.TrimSpace(doc.Find(selector).First().Text()); title != "" {
			return title
		}
	}
	return ""
}
