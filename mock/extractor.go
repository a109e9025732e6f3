package mock

import "github.com/fwojciec/declutter"

var _ declutter.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of declutter.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*declutter.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*declutter.ExtractResult, error) {
	return e.ExtractFn(html)
}
