// Package goldmark renders entries as HTML.
package goldmark

import (
	"bytes"
	"io"

	"github.com/fwojciec/wordseek"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Encoder implements wordseek.EntryEncoder at compile time.
var _ wordseek.EntryEncoder = (*Encoder)(nil)

// Encoder renders the card text of an entry through a Markdown renderer,
// so etymology links become anchors and definitions become ordered lists.
type Encoder struct {
	md goldmark.Markdown
}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{
		md: goldmark.New(
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Encode writes entry to w as an HTML fragment.
func (e *Encoder) Encode(w io.Writer, entry *wordseek.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := e.md.Convert([]byte(wordseek.FormatEntry(entry)), &buf); err != nil {
		return wordseek.Errorf(wordseek.EINTERNAL, "failed to render entry: %v", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
