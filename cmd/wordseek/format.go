package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/wordseek"
	"github.com/fwojciec/wordseek/etree"
	"github.com/fwojciec/wordseek/goldmark"
)

// Formats lists the accepted --format values.
var Formats = []string{"text", "legacy", "json", "xml", "html"}

// encoderFunc adapts a function to wordseek.EntryEncoder.
type encoderFunc func(w io.Writer, entry *wordseek.Entry) error

func (f encoderFunc) Encode(w io.Writer, entry *wordseek.Entry) error {
	return f(w, entry)
}

// Encoder returns the encoder for format.
func Encoder(format string) (wordseek.EntryEncoder, error) {
	switch format {
	case "text":
		return encoderFunc(func(w io.Writer, entry *wordseek.Entry) error {
			_, err := fmt.Fprintln(w, wordseek.FormatEntry(entry))
			return err
		}), nil
	case "legacy":
		return encoderFunc(func(w io.Writer, entry *wordseek.Entry) error {
			_, err := fmt.Fprintln(w, wordseek.FormatLegacy(entry))
			return err
		}), nil
	case "json":
		return encoderFunc(func(w io.Writer, entry *wordseek.Entry) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(entry)
		}), nil
	case "xml":
		return etree.NewEncoder(2), nil
	case "html":
		return goldmark.NewEncoder(), nil
	default:
		return nil, wordseek.Errorf(wordseek.EINVALID, "unknown format %q", format)
	}
}
