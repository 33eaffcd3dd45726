package mock

import (
	"context"

	"github.com/fwojciec/wordseek"
)

var _ wordseek.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of wordseek.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, word, language string, proto bool) (*wordseek.Page, error)
}

func (f *PageFetcher) FetchPage(ctx context.Context, word, language string, proto bool) (*wordseek.Page, error) {
	return f.FetchPageFn(ctx, word, language, proto)
}
