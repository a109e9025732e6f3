package mock

import "github.com/fwojciec/declutter"

var _ declutter.Converter = (*Converter)(nil)

// Converter is a mock implementation of declutter.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
