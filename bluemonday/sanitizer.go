// Package bluemonday sanitizes extracted HTML with
// github.com/microcosm-cc/bluemonday.
//
// Extraction copies anchor hrefs verbatim and injects pre content as raw
// markup, so output built from untrusted pages should be sanitized before
// it is displayed.
package bluemonday

import (
	"github.com/fwojciec/declutter"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements declutter.Sanitizer at compile time.
var _ declutter.Sanitizer = (*Sanitizer)(nil)

// Sanitizer wraps a bluemonday policy.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer that keeps user generated content
// markup: text structure, http(s) links and images.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// NewStrictSanitizer creates a Sanitizer that strips all markup.
func NewStrictSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize returns html with disallowed elements and attributes removed.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
