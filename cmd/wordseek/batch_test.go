package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/wordseek"
	main "github.com/fwojciec/wordseek/cmd/wordseek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCmd_Run(t *testing.T) {
	t.Parallel()

	newDeps := func(stdin string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		return &main.Dependencies{
			Ctx:       context.Background(),
			Stdin:     strings.NewReader(stdin),
			Stdout:    stdout,
			Stderr:    stderr,
			Logger:    slog.New(slog.DiscardHandler),
			Fetcher:   pageFetcher(),
			Extractor: entryExtractor(),
		}, stdout, stderr
	}

	t.Run("reads words from standard input", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps("bank\n\nbank\n")

		err := (&main.BatchCmd{File: "-", Format: "text", Concurrency: 2}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, wordseek.FormatEntry(testEntry())+"\n", stdout.String())
		assert.Contains(t, stderr.String(), "Found 1 of 1 words (0 failed, 1 duplicates skipped)")
	})

	t.Run("fails when no word is found", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps("qwzx\n")

		err := (&main.BatchCmd{File: "-", Format: "text"}).Run(deps)

		assert.Equal(t, wordseek.ENOTFOUND, wordseek.ErrorCode(err))
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "skip qwzx: Word not found.")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps("# nothing here\n")

		err := (&main.BatchCmd{File: "-", Format: "text"}).Run(deps)

		assert.Equal(t, wordseek.EINVALID, wordseek.ErrorCode(err))
	})
}
