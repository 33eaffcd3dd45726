package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/wordseek"
	"github.com/fwojciec/wordseek/batch"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	enc, err := Encoder(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordseek.ErrorMessage(err))
		return err
	}

	words, err := c.readWords(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if len(words) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no words in %s\n", c.File)
		return wordseek.Errorf(wordseek.EINVALID, "no words in %s", c.File)
	}

	runner := &batch.Runner{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Concurrency: c.Concurrency,
	}
	if c.Archive {
		runner.Entries = deps.Entries
	}
	if c.Save != "" {
		runner.Writer = deps.NewWriter(c.Save)
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			deps.Logger.Info("batch started", "words", event.Total)
		case batch.ProgressFailed:
			deps.Logger.Debug("lookup failed", "word", event.Word, "err", event.Error)
		case batch.ProgressCompleted, batch.ProgressFinished:
			// Summary printed after the batch completes
		}
	}

	result, err := runner.Run(deps.Ctx, words, c.Language, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	printed := 0
	for _, item := range result.Items {
		if item.Err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", item.Word, wordseek.ErrorMessage(item.Err))
			continue
		}
		if printed > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		if err := enc.Encode(deps.Stdout, item.Entry); err != nil {
			return err
		}
		printed++
	}

	fmt.Fprintf(deps.Stderr, "Found %d of %d words (%d failed, %d duplicates skipped)\n",
		result.Found, len(result.Items), result.Failed, result.Skipped)

	if result.Found == 0 {
		return wordseek.Errorf(wordseek.ENOTFOUND, "no entries found")
	}
	return nil
}

func (c *BatchCmd) readWords(stdin io.Reader) ([]string, error) {
	if c.File == "-" {
		return batch.ReadWords(stdin)
	}
	f, err := os.Open(c.File)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return batch.ReadWords(f)
}
