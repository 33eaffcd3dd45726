package mock

import (
	"context"

	"github.com/fwojciec/wordseek"
)

var _ wordseek.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of wordseek.EntryService.
type EntryService struct {
	SaveEntryFn   func(ctx context.Context, entry *wordseek.Entry) (*wordseek.ArchivedEntry, error)
	FindEntryFn   func(ctx context.Context, word, language string) (*wordseek.ArchivedEntry, error)
	FindEntriesFn func(ctx context.Context, filter wordseek.EntryFilter) ([]*wordseek.ArchivedEntry, error)
	DeleteEntryFn func(ctx context.Context, id string) error
}

func (s *EntryService) SaveEntry(ctx context.Context, entry *wordseek.Entry) (*wordseek.ArchivedEntry, error) {
	return s.SaveEntryFn(ctx, entry)
}

func (s *EntryService) FindEntry(ctx context.Context, word, language string) (*wordseek.ArchivedEntry, error) {
	return s.FindEntryFn(ctx, word, language)
}

func (s *EntryService) FindEntries(ctx context.Context, filter wordseek.EntryFilter) ([]*wordseek.ArchivedEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	return s.DeleteEntryFn(ctx, id)
}
