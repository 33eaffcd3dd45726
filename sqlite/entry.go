package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"

	"github.com/Masterminds/squirrel"
	"github.com/fwojciec/wordseek"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ wordseek.EntryService = (*EntryService)(nil)

// entryColumns are selected, in order, by scanEntry.
var entryColumns = []string{"id", "data", "content_hash", "created_at", "updated_at"}

// EntryService implements wordseek.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// SaveEntry stores entry, keyed by word and language.
func (s *EntryService) SaveEntry(ctx context.Context, entry *wordseek.Entry) (*wordseek.ArchivedEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to encode entry: %w", err)
	}
	hash := hashContent(data)

	existing, err := s.FindEntry(ctx, entry.Word, entry.Language)
	switch {
	case wordseek.ErrorCode(err) == wordseek.ENOTFOUND:
		return s.insertEntry(ctx, entry, data, hash)
	case err != nil:
		return nil, err
	case existing.ContentHash == hash:
		return existing, nil
	}

	now := s.db.Now().UTC()
	if _, err := s.db.ExecContext(ctx, `
		UPDATE entries
		SET source = ?, link = ?, data = ?, content_hash = ?, updated_at = ?
		WHERE id = ?
	`, entry.Source, entry.Link, string(data), hash, formatTime(now), existing.ID); err != nil {
		return nil, err
	}

	existing.Entry = entry
	existing.ContentHash = hash
	existing.UpdatedAt = now
	return existing, nil
}

func (s *EntryService) insertEntry(ctx context.Context, entry *wordseek.Entry, data []byte, hash string) (*wordseek.ArchivedEntry, error) {
	now := s.db.Now().UTC()
	archived := &wordseek.ArchivedEntry{
		ID:          uuid.New().String(),
		Entry:       entry,
		ContentHash: hash,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, word, language, source, link, data, content_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, archived.ID, entry.Word, entry.Language, entry.Source, entry.Link, string(data), hash,
		formatTime(now), formatTime(now))
	if err != nil {
		return nil, err
	}

	return archived, nil
}

// FindEntry retrieves the archived entry for word in language.
func (s *EntryService) FindEntry(ctx context.Context, word, language string) (*wordseek.ArchivedEntry, error) {
	entries, err := s.FindEntries(ctx, wordseek.EntryFilter{Word: &word, Language: &language, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, wordseek.Errorf(wordseek.ENOTFOUND, "entry not found")
	}
	return entries[0], nil
}

// FindEntries retrieves archived entries matching the filter, most recently
// updated first.
func (s *EntryService) FindEntries(ctx context.Context, filter wordseek.EntryFilter) ([]*wordseek.ArchivedEntry, error) {
	q := squirrel.Select(entryColumns...).From("entries")
	if filter.Word != nil {
		q = q.Where(squirrel.Eq{"word": *filter.Word})
	}
	if filter.Language != nil {
		q = q.Where(squirrel.Eq{"language": *filter.Language})
	}
	q = q.OrderBy("updated_at DESC", "word ASC")

	// SQLite rejects OFFSET without LIMIT.
	switch {
	case filter.Limit > 0:
		q = q.Limit(uint64(filter.Limit))
	case filter.Offset > 0:
		q = q.Limit(math.MaxInt64)
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*wordseek.ArchivedEntry
	for rows.Next() {
		archived, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, archived)
	}

	return entries, rows.Err()
}

// DeleteEntry permanently removes an archived entry.
func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return wordseek.Errorf(wordseek.ENOTFOUND, "entry not found")
	}

	return nil
}

func scanEntry(rows *sql.Rows) (*wordseek.ArchivedEntry, error) {
	var (
		archived             wordseek.ArchivedEntry
		data                 string
		createdAt, updatedAt string
	)
	if err := rows.Scan(&archived.ID, &data, &archived.ContentHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var entry wordseek.Entry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, fmt.Errorf("failed to decode entry %s: %w", archived.ID, err)
	}
	archived.Entry = &entry

	var err error
	if archived.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if archived.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &archived, nil
}
