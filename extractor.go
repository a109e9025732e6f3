package declutter

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ExtractResult holds the extracted content of an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as HTML, wrapped in one container.
	ContentHTML string

	// ContentHash identifies ContentHTML. Equal pages hash equally.
	ContentHash string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// Sanitizer removes unsafe markup from extracted HTML.
type Sanitizer interface {
	Sanitize(html string) string
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
