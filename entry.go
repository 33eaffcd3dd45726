package wordseek

import (
	"strconv"
	"strings"
)

// Source is the label of the page source entries are extracted from.
const Source = "Wiktionary"

// NotAvailable is rendered in place of missing lexical data.
const NotAvailable = "Not available."

// GeneralQualifier labels transcriptions that carry no qualifier.
const GeneralQualifier = "General"

// Entry is the lexical data extracted for one word in one language.
// Entries are built once per extraction and never modified afterwards.
type Entry struct {
	Word        string           `json:"word"`
	Language    string           `json:"language"`
	Source      string           `json:"source"`
	Link        string           `json:"link"`
	Etymologies []EtymologyBlock `json:"etymologies"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Word == "" {
		return Errorf(EINVALID, "entry word required")
	}
	if e.Language == "" {
		return Errorf(EINVALID, "entry language required")
	}
	if len(e.Etymologies) == 0 {
		return Errorf(EINVALID, "entry requires at least one etymology block")
	}
	return nil
}

// EtymologyBlock groups the pronunciations and parts of speech that belong
// to one etymology of a word.
type EtymologyBlock struct {
	// Index is the position of the block in document order, starting at 0.
	Index          int                  `json:"index"`
	Etymology      Etymology            `json:"etymology"`
	Pronunciations []PronunciationEntry `json:"pronunciations"`
	PartsOfSpeech  []PartOfSpeechBlock  `json:"partsOfSpeech"`
}

// EtymologyKind tells whether a block came from an etymology heading.
type EtymologyKind string

// EtymologyKind values.
const (
	// EtymologyImplicit marks the single block synthesized when the language
	// section has no etymology heading.
	EtymologyImplicit EtymologyKind = "implicit"

	// EtymologyHeading marks a block introduced by an etymology heading.
	EtymologyHeading EtymologyKind = "heading"
)

// Etymology is the optional etymology text of a block. Consumers must check
// Kind (or Available) before treating the text as present.
type Etymology struct {
	Kind EtymologyKind `json:"kind"`

	// Heading is the text of the etymology heading, e.g. "Etymology 2".
	Heading string `json:"heading,omitempty"`

	// Plain and Linked hold one string per captured content node. Linked
	// has citations and figures removed and wiki links as [text](url).
	Plain  []string `json:"plain,omitempty"`
	Linked []string `json:"linked,omitempty"`
}

// ImplicitEtymology returns the etymology of a block that stands for the
// whole language section.
func ImplicitEtymology() Etymology {
	return Etymology{Kind: EtymologyImplicit}
}

// Available reports whether the block was introduced by an etymology heading.
func (e Etymology) Available() bool {
	return e.Kind == EtymologyHeading
}

// String returns the plain text of the etymology.
func (e Etymology) String() string {
	if len(e.Plain) == 0 {
		return NotAvailable
	}
	return strings.Join(e.Plain, "\n")
}

// EmbedString returns the link-annotated text of the etymology.
func (e Etymology) EmbedString() string {
	if len(e.Linked) == 0 {
		return NotAvailable
	}
	return strings.Join(e.Linked, "\n")
}

// PronunciationEntry holds the transcriptions of one pronunciation list item.
type PronunciationEntry struct {
	// Qualifier is the accent or region label, e.g. "UK". Empty means none.
	Qualifier string `json:"qualifier,omitempty"`

	// IPAs are the transcriptions attributed to Qualifier, or every
	// transcription of the item when it has no qualifier.
	IPAs []string `json:"ipas,omitempty"`

	// Unqualified are transcriptions of a qualified item that sit outside
	// the qualifier's container. Disjoint from IPAs.
	Unqualified []string `json:"unqualified,omitempty"`
}

// Label returns the qualifier, or GeneralQualifier when there is none.
func (p PronunciationEntry) Label() string {
	if p.Qualifier == "" {
		return GeneralQualifier
	}
	return p.Qualifier
}

// String renders the entry as "<label>: <ipa>, <ipa>" lines.
// Items without transcriptions render as the empty string.
func (p PronunciationEntry) String() string {
	var lines []string
	if len(p.IPAs) > 0 {
		lines = append(lines, p.Label()+": "+strings.Join(p.IPAs, ", "))
	}
	if len(p.Unqualified) > 0 {
		lines = append(lines, GeneralQualifier+": "+strings.Join(p.Unqualified, ", "))
	}
	return strings.Join(lines, "\n")
}

// PartOfSpeechBlock is one part-of-speech heading with its definitions.
type PartOfSpeechBlock struct {
	// Label is the heading text as written on the page, e.g. "Proper noun".
	Label       string   `json:"label"`
	Definitions []string `json:"definitions"`
}

// Numbered returns the definitions prefixed with their 1-based position.
func (b PartOfSpeechBlock) Numbered() []string {
	numbered := make([]string, len(b.Definitions))
	for i, def := range b.Definitions {
		numbered[i] = strconv.Itoa(i+1) + ". " + def
	}
	return numbered
}

// String renders the label followed by the numbered definitions.
func (b PartOfSpeechBlock) String() string {
	if len(b.Definitions) == 0 {
		return b.Label
	}
	return b.Label + "\n" + strings.Join(b.Numbered(), "\n")
}
