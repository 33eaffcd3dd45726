// Package etree reads and writes entries as XML documents.
package etree

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/wordseek"
)

// Ensure Encoder implements wordseek.EntryEncoder at compile time.
var _ wordseek.EntryEncoder = (*Encoder)(nil)

// Encoder writes entries as indented XML.
type Encoder struct {
	indent int
}

// NewEncoder creates an Encoder indenting nested elements by indent spaces.
func NewEncoder(indent int) *Encoder {
	return &Encoder{indent: indent}
}

// Encode writes entry to w as a single <entry> document.
func (e *Encoder) Encode(w io.Writer, entry *wordseek.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("entry")
	root.CreateAttr("word", entry.Word)
	root.CreateAttr("language", entry.Language)
	root.CreateAttr("source", entry.Source)
	root.CreateAttr("link", entry.Link)

	for _, block := range entry.Etymologies {
		encodeBlock(root.CreateElement("etymology"), block)
	}

	doc.Indent(e.indent)
	_, err := doc.WriteTo(w)
	return err
}

func encodeBlock(el *etree.Element, block wordseek.EtymologyBlock) {
	el.CreateAttr("index", strconv.Itoa(block.Index))
	el.CreateAttr("kind", string(block.Etymology.Kind))

	if block.Etymology.Heading != "" {
		el.CreateElement("heading").SetText(block.Etymology.Heading)
	}
	for _, text := range block.Etymology.Plain {
		el.CreateElement("text").SetText(text)
	}
	for _, text := range block.Etymology.Linked {
		el.CreateElement("linked").SetText(text)
	}

	for _, p := range block.Pronunciations {
		pron := el.CreateElement("pronunciation")
		if p.Qualifier != "" {
			pron.CreateAttr("qualifier", p.Qualifier)
		}
		for _, ipa := range p.IPAs {
			pron.CreateElement("ipa").SetText(ipa)
		}
		for _, ipa := range p.Unqualified {
			pron.CreateElement("unqualified").SetText(ipa)
		}
	}

	for _, pos := range block.PartsOfSpeech {
		part := el.CreateElement("partOfSpeech")
		part.CreateAttr("label", pos.Label)
		for _, def := range pos.Definitions {
			part.CreateElement("definition").SetText(def)
		}
	}
}

// Decode reads an entry written by Encoder.Encode.
func Decode(r io.Reader) (*wordseek.Entry, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, wordseek.Errorf(wordseek.EINVALID, "failed to parse XML: %v", err)
	}

	root := doc.SelectElement("entry")
	if root == nil {
		return nil, wordseek.Errorf(wordseek.EINVALID, "missing <entry> element")
	}

	entry := &wordseek.Entry{
		Word:     root.SelectAttrValue("word", ""),
		Language: root.SelectAttrValue("language", ""),
		Source:   root.SelectAttrValue("source", ""),
		Link:     root.SelectAttrValue("link", ""),
	}

	for _, el := range root.SelectElements("etymology") {
		block, err := decodeBlock(el)
		if err != nil {
			return nil, err
		}
		entry.Etymologies = append(entry.Etymologies, block)
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

func decodeBlock(el *etree.Element) (wordseek.EtymologyBlock, error) {
	index, err := strconv.Atoi(el.SelectAttrValue("index", "0"))
	if err != nil {
		return wordseek.EtymologyBlock{}, wordseek.Errorf(wordseek.EINVALID, "invalid etymology index: %v", err)
	}

	block := wordseek.EtymologyBlock{
		Index: index,
		Etymology: wordseek.Etymology{
			Kind: wordseek.EtymologyKind(el.SelectAttrValue("kind", string(wordseek.EtymologyImplicit))),
		},
	}
	if heading := el.SelectElement("heading"); heading != nil {
		block.Etymology.Heading = heading.Text()
	}
	block.Etymology.Plain = texts(el, "text")
	block.Etymology.Linked = texts(el, "linked")

	for _, pron := range el.SelectElements("pronunciation") {
		block.Pronunciations = append(block.Pronunciations, wordseek.PronunciationEntry{
			Qualifier:   pron.SelectAttrValue("qualifier", ""),
			IPAs:        texts(pron, "ipa"),
			Unqualified: texts(pron, "unqualified"),
		})
	}

	for _, part := range el.SelectElements("partOfSpeech") {
		block.PartsOfSpeech = append(block.PartsOfSpeech, wordseek.PartOfSpeechBlock{
			Label:       part.SelectAttrValue("label", ""),
			Definitions: texts(part, "definition"),
		})
	}

	return block, nil
}

// texts returns the text of every child of el named tag, or nil.
func texts(el *etree.Element, tag string) []string {
	var out []string
	for _, child := range el.SelectElements(tag) {
		out = append(out, child.Text())
	}
	return out
}
