package mock

import "github.com/fwojciec/wordseek"

var _ wordseek.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wordseek.Extractor.
type Extractor struct {
	ExtractFn func(html, canonicalURL, language string) (*wordseek.Entry, error)
}

func (e *Extractor) Extract(html, canonicalURL, language string) (*wordseek.Entry, error) {
	return e.ExtractFn(html, canonicalURL, language)
}
