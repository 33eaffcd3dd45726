package mock

import "github.com/fwojciec/wordseek"

var _ wordseek.Converter = (*Converter)(nil)

// Converter is a mock implementation of wordseek.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
