package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/wordseek"
)

// Run executes the archive list command.
func (c *ArchiveListCmd) Run(deps *Dependencies) error {
	filter := wordseek.EntryFilter{Limit: c.Limit, Offset: c.Offset}
	if len(c.Language) > 0 {
		language, _ := wordseek.ParseLanguage(c.Language)
		filter.Language = &language
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordseek.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries archived. Use 'wordseek lookup --archive' to add one.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			e.ID, e.Entry.Word, e.Entry.Language, e.UpdatedAt.Format("2006-01-02 15:04"))
	}

	return nil
}

// Run executes the archive show command.
func (c *ArchiveShowCmd) Run(deps *Dependencies) error {
	enc, err := Encoder(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordseek.ErrorMessage(err))
		return err
	}

	archived, err := findArchived(deps, c.Word, c.Language)
	if err != nil {
		return err
	}

	return enc.Encode(deps.Stdout, archived.Entry)
}

// Run executes the archive delete command.
func (c *ArchiveDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return wordseek.Errorf(wordseek.EINVALID, "use --force to confirm deletion")
	}

	archived, err := findArchived(deps, c.Word, c.Language)
	if err != nil {
		return err
	}

	if err := deps.Entries.DeleteEntry(deps.Ctx, archived.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordseek.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q (%s)\n", archived.Entry.Word, archived.Entry.Language)
	return nil
}

// findArchived looks up an archived entry, reporting a missing one with a
// hint on stderr.
func findArchived(deps *Dependencies, word string, languageArgs []string) (*wordseek.ArchivedEntry, error) {
	language, _ := wordseek.ParseLanguage(languageArgs)

	archived, err := deps.Entries.FindEntry(deps.Ctx, strings.TrimSpace(word), language)
	if wordseek.ErrorCode(err) == wordseek.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %q (%s) is not archived. Use 'wordseek archive list' to see archived entries.\n", word, language)
		return nil, err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordseek.ErrorMessage(err))
		return nil, err
	}
	return archived, nil
}
