package main

import (
	"fmt"

	"github.com/fwojciec/wordseek"
)

// Run executes the section command.
func (c *SectionCmd) Run(deps *Dependencies) error {
	language, proto := wordseek.ParseLanguage(c.Language)

	page, err := deps.Fetcher.FetchPage(deps.Ctx, c.Word, language, proto)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordseek.ErrorMessage(err))
		return err
	}

	html, err := deps.Sections(page.HTML, page.Language)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordseek.ErrorMessage(err))
		return err
	}

	if c.Raw {
		fmt.Fprintln(deps.Stdout, html)
		return nil
	}

	markdown, err := deps.Converter.Convert(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordseek.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}
