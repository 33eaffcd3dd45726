package wordseek

import "strings"

// PartsOfSpeech is the closed vocabulary of part-of-speech headings the
// extractor recognizes. Heading ids are matched by prefix, so "Noun_2"
// matches "Noun".
var PartsOfSpeech = []string{
	// Parts of speech
	"Adjective",
	"Adverb",
	"Ambiposition",
	"Article",
	"Circumposition",
	"Classifier",
	"Conjunction",
	"Contraction",
	"Counter",
	"Determiner",
	"Ideophone",
	"Interjection",
	"Noun",
	"Numeral",
	"Participle",
	"Particle",
	"Postposition",
	"Preposition",
	"Pronoun",
	"Proper noun",
	"Verb",

	// Morphemes
	"Circumfix",
	"Combining form",
	"Infix",
	"Interfix",
	"Prefix",
	"Root",
	"Suffix",

	// Symbols and characters
	"Diacritical mark",
	"Letter",
	"Ligature",
	"Number",
	"Punctuation mark",
	"Syllable",
	"Symbol",

	// Phrases
	"Phrase",
	"Proverb",
	"Prepositional phrase",

	// Han characters and transliterations
	"Han character",
	"Hanzi",
	"Kanji",
	"Hanja",
	"Romanization",
}

// HeadingID returns the id prefix a heading for label carries.
func HeadingID(label string) string {
	return strings.ReplaceAll(label, " ", "_")
}
