package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/wordseek"
	"github.com/fwojciec/wordseek/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(word, language string) *wordseek.Entry {
	return &wordseek.Entry{
		Word:     word,
		Language: language,
		Source:   wordseek.Source,
		Link:     "https://en.wiktionary.org/wiki/" + word + "#" + language,
		Etymologies: []wordseek.EtymologyBlock{{
			Etymology: wordseek.Etymology{
				Kind:    wordseek.EtymologyHeading,
				Heading: "Etymology",
				Plain:   []string{"From Italian banca."},
				Linked:  []string{"From Italian [banca](https://en.wiktionary.org/wiki/banca)."},
			},
			Pronunciations: []wordseek.PronunciationEntry{{Qualifier: "UK", IPAs: []string{"/bæŋk/"}}},
			PartsOfSpeech:  []wordseek.PartOfSpeechBlock{{Label: "Noun", Definitions: []string{"A financial institution."}}},
		}},
	}
}

// clock returns a Now function that advances by a second on every call.
func clock() func() time.Time {
	now := time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func TestEntryService_SaveEntry(t *testing.T) {
	t.Parallel()

	t.Run("creates entry with generated ID, hash and timestamps", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)

		archived, err := svc.SaveEntry(context.Background(), testEntry("bank", "English"))

		require.NoError(t, err)
		assert.NotEmpty(t, archived.ID, "ID should be generated")
		assert.Len(t, archived.ContentHash, 16)
		assert.False(t, archived.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.Equal(t, archived.CreatedAt, archived.UpdatedAt)
	})

	t.Run("returns error for invalid entry", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)

		_, err := svc.SaveEntry(context.Background(), &wordseek.Entry{})

		require.Error(t, err)
		assert.Equal(t, wordseek.EINVALID, wordseek.ErrorCode(err))
	})

	t.Run("keeps updated_at when saving identical content", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		db.Now = clock()
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		first, err := svc.SaveEntry(ctx, testEntry("bank", "English"))
		require.NoError(t, err)
		second, err := svc.SaveEntry(ctx, testEntry("bank", "English"))
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.True(t, first.UpdatedAt.Equal(second.UpdatedAt))
	})

	t.Run("replaces changed content in place", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		db.Now = clock()
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		first, err := svc.SaveEntry(ctx, testEntry("bank", "English"))
		require.NoError(t, err)

		changed := testEntry("bank", "English")
		changed.Etymologies[0].PartsOfSpeech[0].Definitions = []string{"A riverside."}
		second, err := svc.SaveEntry(ctx, changed)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.NotEqual(t, first.ContentHash, second.ContentHash)
		assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

		found, err := svc.FindEntry(ctx, "bank", "English")
		require.NoError(t, err)
		assert.Equal(t, []string{"A riverside."}, found.Entry.Etymologies[0].PartsOfSpeech[0].Definitions)
		assert.True(t, found.CreatedAt.Equal(first.CreatedAt))
	})

	t.Run("keeps languages of the same word apart", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		english, err := svc.SaveEntry(ctx, testEntry("bank", "English"))
		require.NoError(t, err)
		dutch, err := svc.SaveEntry(ctx, testEntry("bank", "Dutch"))
		require.NoError(t, err)

		assert.NotEqual(t, english.ID, dutch.ID)
	})
}

func TestEntryService_FindEntry(t *testing.T) {
	t.Parallel()

	t.Run("round-trips the entry", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		saved, err := svc.SaveEntry(ctx, testEntry("bank", "English"))
		require.NoError(t, err)

		found, err := svc.FindEntry(ctx, "bank", "English")

		require.NoError(t, err)
		assert.Equal(t, saved.ID, found.ID)
		assert.Equal(t, testEntry("bank", "English"), found.Entry)
	})

	t.Run("returns ENOTFOUND for a missing entry", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)

		_, err := svc.FindEntry(context.Background(), "bank", "English")

		assert.Equal(t, wordseek.ENOTFOUND, wordseek.ErrorCode(err))
	})
}

func TestEntryService_FindEntries(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.EntryService {
		t.Helper()
		db := setupTestDB(t)
		db.Now = clock()
		svc := sqlite.NewEntryService(db)
		for _, e := range []*wordseek.Entry{
			testEntry("bank", "English"),
			testEntry("bank", "Dutch"),
			testEntry("river", "English"),
		} {
			_, err := svc.SaveEntry(context.Background(), e)
			require.NoError(t, err)
		}
		return svc
	}

	t.Run("returns most recently updated first", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		entries, err := svc.FindEntries(context.Background(), wordseek.EntryFilter{})

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "river", entries[0].Entry.Word)
		assert.Equal(t, "Dutch", entries[1].Entry.Language)
		assert.Equal(t, "English", entries[2].Entry.Language)
	})

	t.Run("filters by language", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		language := "English"

		entries, err := svc.FindEntries(context.Background(), wordseek.EntryFilter{Language: &language})

		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Equal(t, "English", e.Entry.Language)
		}
	})

	t.Run("filters by word", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		word := "bank"

		entries, err := svc.FindEntries(context.Background(), wordseek.EntryFilter{Word: &word})

		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		page, err := svc.FindEntries(context.Background(), wordseek.EntryFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "Dutch", page[0].Entry.Language)

		rest, err := svc.FindEntries(context.Background(), wordseek.EntryFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Equal(t, "English", rest[0].Entry.Language)
	})
}

func TestEntryService_DeleteEntry(t *testing.T) {
	t.Parallel()

	t.Run("removes the entry", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		saved, err := svc.SaveEntry(ctx, testEntry("bank", "English"))
		require.NoError(t, err)

		require.NoError(t, svc.DeleteEntry(ctx, saved.ID))

		_, err = svc.FindEntry(ctx, "bank", "English")
		assert.Equal(t, wordseek.ENOTFOUND, wordseek.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for an unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)

		err := svc.DeleteEntry(context.Background(), "missing")

		assert.Equal(t, wordseek.ENOTFOUND, wordseek.ErrorCode(err))
	})
}
