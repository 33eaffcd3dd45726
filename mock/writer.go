package mock

import (
	"context"

	"github.com/fwojciec/wordseek"
)

var _ wordseek.EntryWriter = (*EntryWriter)(nil)

// EntryWriter is a mock implementation of wordseek.EntryWriter.
type EntryWriter struct {
	WriteEntryFn func(ctx context.Context, entry *wordseek.Entry) error
}

func (w *EntryWriter) WriteEntry(ctx context.Context, entry *wordseek.Entry) error {
	return w.WriteEntryFn(ctx, entry)
}
