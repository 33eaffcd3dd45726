package wordseek

import (
	"context"
	"time"
)

// ArchivedEntry is an entry kept in the local archive.
type ArchivedEntry struct {
	ID          string    `json:"id"`
	Entry       *Entry    `json:"entry"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EntryService represents a service for archiving extracted entries.
// The archive is written only on request; lookups never read from it.
type EntryService interface {
	// SaveEntry stores entry, replacing a previous version for the same
	// word and language. Saving identical content keeps UpdatedAt.
	SaveEntry(ctx context.Context, entry *Entry) (*ArchivedEntry, error)

	// FindEntry retrieves the archived entry for word in language.
	// Returns ENOTFOUND if no such entry exists.
	FindEntry(ctx context.Context, word, language string) (*ArchivedEntry, error)

	// FindEntries retrieves archived entries matching the filter,
	// most recently updated first.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*ArchivedEntry, error)

	// DeleteEntry permanently removes an archived entry.
	// Returns ENOTFOUND if the entry does not exist.
	DeleteEntry(ctx context.Context, id string) error
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	Word     *string `json:"word"`
	Language *string `json:"language"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
