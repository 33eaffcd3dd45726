package wordseek

import (
	"context"
	"io"
)

// Page is a raw Wiktionary page as returned by a PageFetcher.
type Page struct {
	Word     string
	Language string
	Proto    bool
	HTML     string

	// URL is the canonical, human-facing address of the page.
	URL string
}

// PageFetcher retrieves pages from the page source.
type PageFetcher interface {
	// FetchPage returns the page describing word. When proto is true the
	// word is looked up among the reconstructions of language.
	// Returns ENOTFOUND if the page does not exist and an *UpstreamError
	// for any other unsuccessful response.
	FetchPage(ctx context.Context, word, language string, proto bool) (*Page, error)
}

// Extractor builds entries from page markup.
type Extractor interface {
	// Extract parses html and returns the entry for the language section
	// whose heading id is language. canonicalURL resolves relative links.
	// Returns ELANGUAGE if the page has no section for language.
	Extract(html, canonicalURL, language string) (*Entry, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// EntryWriter writes entries to an export destination.
type EntryWriter interface {
	WriteEntry(ctx context.Context, entry *Entry) error
}

// EntryEncoder writes entries in a presentation format.
type EntryEncoder interface {
	Encode(w io.Writer, entry *Entry) error
}
