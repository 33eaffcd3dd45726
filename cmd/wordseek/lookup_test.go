package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/wordseek"
	main "github.com/fwojciec/wordseek/cmd/wordseek"
	"github.com/fwojciec/wordseek/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entryExtractor returns testEntry for English and ELANGUAGE otherwise.
func entryExtractor() *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(_, _, language string) (*wordseek.Entry, error) {
			if language != "English" {
				return nil, wordseek.Errorf(wordseek.ELANGUAGE, wordseek.MsgLanguageNotFound)
			}
			return testEntry(), nil
		},
	}
}

func TestLookupCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the entry in the requested format", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Fetcher:   pageFetcher(),
			Extractor: entryExtractor(),
		}

		err := (&main.LookupCmd{Word: "bank", Format: "legacy"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, wordseek.FormatLegacy(testEntry())+"\n", stdout.String())
	})

	t.Run("reports fetch errors on stderr", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Fetcher: &mock.PageFetcher{
				FetchPageFn: func(context.Context, string, string, bool) (*wordseek.Page, error) {
					return nil, &wordseek.UpstreamError{Status: 503, StatusText: "Service Unavailable"}
				},
			},
			Extractor: entryExtractor(),
		}

		err := (&main.LookupCmd{Word: "bank", Format: "text"}).Run(deps)

		assert.Equal(t, wordseek.EUPSTREAM, wordseek.ErrorCode(err))
		assert.Contains(t, stderr.String(), "Error 503: Service Unavailable")
		assert.Empty(t, stdout.String())
	})

	t.Run("archives the entry on request", func(t *testing.T) {
		t.Parallel()

		var archived *wordseek.Entry
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Fetcher:   pageFetcher(),
			Extractor: entryExtractor(),
			Entries: &mock.EntryService{
				SaveEntryFn: func(_ context.Context, entry *wordseek.Entry) (*wordseek.ArchivedEntry, error) {
					archived = entry
					return &wordseek.ArchivedEntry{ID: "entry-1", Entry: entry}, nil
				},
			},
		}

		err := (&main.LookupCmd{Word: "bank", Format: "text", Archive: true}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, archived)
		assert.Equal(t, "bank", archived.Word)
		assert.Contains(t, stderr.String(), "Archived bank (entry-1)")
	})

	t.Run("returns export errors", func(t *testing.T) {
		t.Parallel()

		exportErr := errors.New("read-only file system")
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Fetcher:   pageFetcher(),
			Extractor: entryExtractor(),
			NewWriter: func(string) wordseek.EntryWriter {
				return &mock.EntryWriter{
					WriteEntryFn: func(context.Context, *wordseek.Entry) error { return exportErr },
				}
			},
		}

		err := (&main.LookupCmd{Word: "bank", Format: "text", Save: "/exports"}).Run(deps)

		assert.Equal(t, exportErr, err)
	})
}
