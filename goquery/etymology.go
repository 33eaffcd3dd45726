package goquery

import (
	"log/slog"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wordseek"
)

// segmentState is the position of the etymology content scanner.
type segmentState int

const (
	seekStart segmentState = iota
	collecting
	done
)

// SegmentEtymologies splits a language section into etymology blocks. A
// section without etymology headings yields a single implicit block that
// covers the whole section.
func SegmentEtymologies(section *goquery.Selection, base *url.URL, logger *slog.Logger) []wordseek.EtymologyBlock {
	headings := FindAllInScope(Scope{Node: section}, HasIDPrefix("Etymology"))
	if headings.Length() == 0 {
		scope := Scope{Node: section}
		return []wordseek.EtymologyBlock{{
			Index:          0,
			Etymology:      wordseek.ImplicitEtymology(),
			Pronunciations: ExtractPronunciations(scope, base, logger),
			PartsOfSpeech:  ExtractPartsOfSpeech(scope, logger),
		}}
	}

	blocks := make([]wordseek.EtymologyBlock, 0, headings.Length())
	headings.Each(func(i int, heading *goquery.Selection) {
		content := etymologyContent(heading)
		scope := Scope{Node: heading.Parent(), Parent: &Scope{Node: section}}
		blocks = append(blocks, wordseek.EtymologyBlock{
			Index: i,
			Etymology: wordseek.Etymology{
				Kind:    wordseek.EtymologyHeading,
				Heading: collapseSpace(heading.Text()),
				Plain:   plainTexts(content),
				Linked:  embedTexts(content, base),
			},
			Pronunciations: ExtractPronunciations(scope, base, logger),
			PartsOfSpeech:  ExtractPartsOfSpeech(scope, logger),
		})
	})
	return blocks
}

// etymologyContent returns the siblings following heading from its first
// paragraph up to the next section boundary.
func etymologyContent(heading *goquery.Selection) *goquery.Selection {
	content := heading.Slice(0, 0)
	state := seekStart
	for next := heading.Next(); next.Length() > 0 && state != done; next = next.Next() {
		switch {
		case isSection(next.Get(0)):
			state = done
		case state == seekStart && goquery.NodeName(next) == "p":
			content = content.AddSelection(next)
			state = collecting
		case state == collecting:
			content = content.AddSelection(next)
		}
	}
	return content
}
