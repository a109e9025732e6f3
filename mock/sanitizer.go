package mock

import "github.com/fwojciec/declutter"

var _ declutter.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of declutter.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}
