package goquery

import (
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wordseek"
)

// partOfSpeech matches headings of every label in wordseek.PartsOfSpeech.
var partOfSpeech = func() Predicate {
	prefixes := make([]string, len(wordseek.PartsOfSpeech))
	for i, label := range wordseek.PartsOfSpeech {
		prefixes[i] = wordseek.HeadingID(label)
	}
	return AnyIDPrefix(prefixes...)
}()

// ExtractPartsOfSpeech returns a block for every part-of-speech heading in
// scope, in document order.
func ExtractPartsOfSpeech(scope Scope, logger *slog.Logger) []wordseek.PartOfSpeechBlock {
	var blocks []wordseek.PartOfSpeechBlock
	FindAllInScope(scope, partOfSpeech).Each(func(_ int, heading *goquery.Selection) {
		blocks = append(blocks, wordseek.PartOfSpeechBlock{
			Label:       collapseSpace(heading.Text()),
			Definitions: definitions(heading, logger),
		})
	})
	return blocks
}

// definitions returns the items of the first ordered list following
// heading before the next section boundary.
func definitions(heading *goquery.Selection, logger *slog.Logger) []string {
	var list *goquery.Selection
	for next := heading.Next(); next.Length() > 0; next = next.Next() {
		if isSection(next.Get(0)) {
			break
		}
		if goquery.NodeName(next) == "ol" {
			list = next
			break
		}
	}
	if list == nil {
		id, _ := heading.Attr("id")
		logger.Debug("malformed section",
			"code", wordseek.EMALFORMED,
			"heading", id,
			"reason", "part of speech without definition list")
		return nil
	}

	var defs []string
	list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		item := goquery.NewDocumentFromNode(cloneNode(li.Get(0))).Selection
		item.Find("ul, dl").Remove()
		item.Find(nonContent).Remove()
		if text := collapseSpace(item.Text()); text != "" {
			defs = append(defs, text)
		}
	})
	return defs
}
