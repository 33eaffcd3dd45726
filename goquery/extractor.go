// Package goquery implements wordseek.Extractor on top of goquery. It
// rebuilds the language → etymology → pronunciation/part-of-speech
// hierarchy from the flat heading and section structure of Parsoid HTML.
package goquery

import (
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wordseek"
)

// Ensure Extractor implements wordseek.Extractor at compile time.
var _ wordseek.Extractor = (*Extractor)(nil)

// Extractor builds entries from Wiktionary page HTML.
type Extractor struct {
	strict bool
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithStrict makes Extract fail with EETYMOLOGY when the language section
// has no etymology heading, instead of returning a single implicit block.
func WithStrict(strict bool) Option {
	return func(e *Extractor) {
		e.strict = strict
	}
}

// WithLogger sets the logger that receives recovered malformed sections.
// Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and returns the entry for the section whose heading
// id is language.
func (e *Extractor) Extract(html, canonicalURL, language string) (*wordseek.Entry, error) {
	base, err := url.Parse(canonicalURL)
	if err != nil {
		return nil, wordseek.Errorf(wordseek.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	section, err := languageSection(doc, language)
	if err != nil {
		return nil, err
	}

	blocks := SegmentEtymologies(section, linkBase(doc, base), e.logger)
	if e.strict && !blocks[0].Etymology.Available() {
		return nil, wordseek.Errorf(wordseek.EETYMOLOGY, wordseek.MsgEtymologyUnavailable)
	}

	link := *base
	link.Fragment = language

	return &wordseek.Entry{
		Word:        pageWord(doc, base),
		Language:    language,
		Source:      wordseek.Source,
		Link:        link.String(),
		Etymologies: blocks,
	}, nil
}

// LanguageSectionHTML returns the outer HTML of the section whose heading
// id is language.
func LanguageSectionHTML(html, language string) (string, error) {
	doc, err := parse(html)
	if err != nil {
		return "", err
	}
	section, err := languageSection(doc, language)
	if err != nil {
		return "", err
	}
	out, err := goquery.OuterHtml(section)
	if err != nil {
		return "", wordseek.Errorf(wordseek.EINTERNAL, "failed to render section: %v", err)
	}
	return out, nil
}

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wordseek.Errorf(wordseek.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// languageSection returns the parent of the heading whose id is language.
func languageSection(doc *goquery.Document, language string) (*goquery.Selection, error) {
	heading := doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")
		return id == language && isHeading(s)
	}).First()
	if heading.Length() == 0 {
		return nil, wordseek.Errorf(wordseek.ELANGUAGE, wordseek.MsgLanguageNotFound)
	}
	return heading.Parent(), nil
}

// linkBase returns the URL wiki links are relative to: the document's
// <base> element when present, the page URL otherwise.
func linkBase(doc *goquery.Document, page *url.URL) *url.URL {
	href, ok := doc.Find("base[href]").First().Attr("href")
	if !ok {
		return page
	}
	ref, err := url.Parse(href)
	if err != nil {
		return page
	}
	return page.ResolveReference(ref)
}

// pageWord returns the word a page describes: the document title, or the
// last segment of the page URL when the title is missing. Reconstruction
// titles are reduced to the reconstructed form.
func pageWord(doc *goquery.Document, base *url.URL) string {
	word := strings.TrimSpace(doc.Find("title").First().Text())
	if word == "" {
		word = strings.ReplaceAll(path.Base(base.Path), "_", " ")
	}
	if strings.HasPrefix(word, "Reconstruction:") {
		word = "*" + word[strings.LastIndex(word, "/")+1:]
	}
	return word
}
