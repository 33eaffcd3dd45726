// Package fs exports entries as markdown files.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/wordseek"
	"gopkg.in/yaml.v3"
)

// unsafeChars are replaced in file names.
var unsafeChars = strings.NewReplacer(
	"/", "_", `\`, "_", ":", "_", "*", "_",
	"?", "_", `"`, "_", "<", "_", ">", "_", "|", "_",
)

// EntryPath returns the path of an entry relative to the export directory.
// Example: bank in Middle_English → Middle_English/bank.md
func EntryPath(entry *wordseek.Entry) string {
	return filepath.Join(safeName(entry.Language), safeName(entry.Word)+".md")
}

// safeName makes s usable as a single path segment. Names made only of dots
// would refer to the current or parent directory, so their dots are replaced.
func safeName(s string) string {
	s = unsafeChars.Replace(s)
	if s != "" && strings.Trim(s, ".") == "" {
		return strings.Repeat("_", len(s))
	}
	return s
}

// FrontMatter is the YAML header of an exported entry.
type FrontMatter struct {
	Word     string    `yaml:"word"`
	Language string    `yaml:"language"`
	Source   string    `yaml:"source"`
	Link     string    `yaml:"link"`
	Saved    time.Time `yaml:"saved"`
}

// FormatMarkdown formats an entry with YAML frontmatter.
func FormatMarkdown(entry *wordseek.Entry, saved time.Time) (string, error) {
	header, err := yaml.Marshal(FrontMatter{
		Word:     entry.Word,
		Language: entry.Language,
		Source:   entry.Source,
		Link:     entry.Link,
		Saved:    saved.UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(wordseek.FormatEntry(entry))
	b.WriteString("\n")
	return b.String(), nil
}

// Ensure Writer implements wordseek.EntryWriter at compile time.
var _ wordseek.EntryWriter = (*Writer)(nil)

// Writer writes entries as markdown files to a directory.
type Writer struct {
	baseDir string

	// Returns the current time. Defaults to time.Now().
	// Can be mocked for deterministic testing.
	Now func() time.Time
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, Now: time.Now}
}

// WriteEntry writes an entry to disk. The file is replaced atomically so a
// reader never sees a partial export.
func (w *Writer) WriteEntry(ctx context.Context, entry *wordseek.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, EntryPath(entry))

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content, err := FormatMarkdown(entry, w.Now())
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".wordseek-*.md")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fullPath)
}
