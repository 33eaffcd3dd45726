package wordseek

import (
	"fmt"
	"strings"
)

// Display limits for rendered text.
const (
	FieldLimit   = 1024
	MessageLimit = 2000
)

// Card is one displayable page of an entry: a single part of speech of a
// single etymology block.
type Card struct {
	Word           string
	Link           string
	Source         string
	Etymology      Etymology
	Pronunciations []PronunciationEntry

	// PartOfSpeech is nil when the block has no recognized part of speech.
	PartOfSpeech *PartOfSpeechBlock

	// Position is 1-based; Total is the number of cards of the entry.
	Position int
	Total    int
}

// Cards flattens an entry into etymology × part-of-speech pairs in document
// order. A block without parts of speech still yields one card.
func Cards(entry *Entry) []Card {
	var cards []Card
	for _, block := range entry.Etymologies {
		base := Card{
			Word:           entry.Word,
			Link:           entry.Link,
			Source:         entry.Source,
			Etymology:      block.Etymology,
			Pronunciations: block.Pronunciations,
		}
		if len(block.PartsOfSpeech) == 0 {
			cards = append(cards, base)
			continue
		}
		for i := range block.PartsOfSpeech {
			card := base
			card.PartOfSpeech = &block.PartsOfSpeech[i]
			cards = append(cards, card)
		}
	}

	for i := range cards {
		cards[i].Position = i + 1
		cards[i].Total = len(cards)
	}
	return cards
}

// FormatCard renders a card as plain text with markdown links.
func FormatCard(card Card) string {
	partOfSpeech := "Part of speech not available."
	if card.PartOfSpeech != nil {
		partOfSpeech = card.PartOfSpeech.String()
	}

	var b strings.Builder
	b.WriteString(card.Word)
	if card.Link != "" {
		b.WriteString(" <" + card.Link + ">")
	}
	b.WriteString("\n\n")
	b.WriteString(truncate(partOfSpeech, FieldLimit))
	b.WriteString("\n\nEtymology\n")
	b.WriteString(truncate(card.Etymology.EmbedString(), FieldLimit))
	b.WriteString("\n\nPronunciations\n")
	b.WriteString(truncate(FormatPronunciations(card.Pronunciations), FieldLimit))
	fmt.Fprintf(&b, "\n\nSource: %s\n%d/%d", card.Source, card.Position, card.Total)
	return b.String()
}

// FormatPronunciations joins the non-empty renders of pronunciations.
// Returns NotAvailable when nothing is left.
func FormatPronunciations(pronunciations []PronunciationEntry) string {
	var lines []string
	for _, p := range pronunciations {
		if s := p.String(); s != "" {
			lines = append(lines, s)
		}
	}
	if len(lines) == 0 {
		return NotAvailable
	}
	return strings.Join(lines, "\n")
}

// FormatEntry renders every card of an entry separated by blank lines.
func FormatEntry(entry *Entry) string {
	cards := Cards(entry)
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, FormatCard(card))
	}
	return strings.Join(parts, "\n\n")
}

// FormatLegacy renders the etymologies of an entry as a single message:
// numbered "Etymology N" sections when there is more than one, followed by
// the page link without its language fragment.
func FormatLegacy(entry *Entry) string {
	var b strings.Builder
	multiple := len(entry.Etymologies) > 1
	for i, block := range entry.Etymologies {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if multiple {
			fmt.Fprintf(&b, "Etymology %d\n", i+1)
		}
		if len(block.Etymology.Plain) == 0 {
			b.WriteString(NotAvailable)
			continue
		}
		b.WriteString(strings.Join(block.Etymology.Plain, "\n\n"))
	}
	b.WriteString("\n\nSource: " + pageLink(entry.Link))
	return truncate(b.String(), MessageLimit)
}

// pageLink strips the fragment from link.
func pageLink(link string) string {
	if i := strings.IndexByte(link, '#'); i >= 0 {
		return link[:i]
	}
	return link
}

// truncate cuts s to at most limit runes.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
