// Package batch looks up many words concurrently. It de-duplicates the
// input, runs lookups through a bounded worker pool and archives or exports
// the resulting entries in input order.
package batch

import (
	"context"
	"sync"

	"github.com/fwojciec/wordseek"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of concurrent lookups used when
// Runner.Concurrency is not set.
const DefaultConcurrency = 4

// Runner orchestrates batch lookups.
type Runner struct {
	Fetcher   wordseek.PageFetcher
	Extractor wordseek.Extractor

	// Entries, if set, archives every extracted entry.
	Entries wordseek.EntryService

	// Writer, if set, exports every extracted entry.
	Writer wordseek.EntryWriter

	Concurrency int
}

// Result holds the outcome of a batch.
type Result struct {
	// Items holds one item per unique word, in input order.
	Items []Item

	Found   int
	Failed  int
	Skipped int
}

// Item is the outcome of one lookup.
type Item struct {
	Word  string
	Entry *wordseek.Entry
	Err   error
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Word      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. Calls are
// serialized.
type ProgressFunc func(event ProgressEvent)

// Run looks up every word in the language named by languageArgs. A failed
// lookup is reported in its item and does not stop the batch; Run only
// returns an error when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, words []string, languageArgs []string, progress ProgressFunc) (*Result, error) {
	language, _ := wordseek.ParseLanguage(languageArgs)
	queue := NewQueue(uint(len(words)), DefaultFalsePositiveRate)
	for _, w := range words {
		queue.Push(w, language)
	}
	unique := queue.Words()

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(unique)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	items := make([]Item, total)
	var (
		mu        sync.Mutex
		completed int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, word := range unique {
		g.Go(func() error {
			entry, err := wordseek.Lookup(gctx, r.Fetcher, r.Extractor, word, languageArgs)
			items[i] = Item{Word: word, Entry: entry, Err: err}

			mu.Lock()
			defer mu.Unlock()
			completed++
			if progress != nil {
				event := ProgressEvent{
					Type:      ProgressCompleted,
					Completed: completed,
					Total:     total,
					Word:      word,
				}
				if err != nil {
					event.Type = ProgressFailed
					event.Error = err
				}
				progress(event)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Items:   items,
		Skipped: len(words) - total,
	}

	// Archive and export sequentially so the store sees one writer.
	for i := range result.Items {
		item := &result.Items[i]
		if item.Err == nil {
			item.Err = r.keep(ctx, item.Entry)
		}
		if item.Err != nil {
			result.Failed++
			continue
		}
		result.Found++
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// keep archives and exports entry when the runner is configured to.
func (r *Runner) keep(ctx context.Context, entry *wordseek.Entry) error {
	if r.Entries != nil {
		if _, err := r.Entries.SaveEntry(ctx, entry); err != nil {
			return err
		}
	}
	if r.Writer != nil {
		if err := r.Writer.WriteEntry(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
