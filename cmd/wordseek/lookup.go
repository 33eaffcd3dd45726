package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/wordseek"
	"github.com/fwojciec/wordseek/fs"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	enc, err := Encoder(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordseek.ErrorMessage(err))
		return err
	}

	entry, err := wordseek.Lookup(deps.Ctx, deps.Fetcher, deps.Extractor, c.Word, c.Language)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordseek.ErrorMessage(err))
		return err
	}

	if err := enc.Encode(deps.Stdout, entry); err != nil {
		return err
	}

	if c.Save != "" {
		if err := deps.NewWriter(c.Save).WriteEntry(deps.Ctx, entry); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wordseek.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved %s\n", filepath.Join(c.Save, fs.EntryPath(entry)))
	}

	if c.Archive {
		archived, err := deps.Entries.SaveEntry(deps.Ctx, entry)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wordseek.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Archived %s (%s)\n", entry.Word, archived.ID)
	}

	return nil
}
