package goquery

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wordseek"
	"golang.org/x/net/html"
)

// ExtractPronunciations builds one entry per item of the pronunciation list
// found in scope. A missing heading yields no entries; a heading not
// followed by a list is logged and yields no entries.
func ExtractPronunciations(scope Scope, base *url.URL, logger *slog.Logger) []wordseek.PronunciationEntry {
	heading, ok := FindInScope(scope, HasIDPrefix("Pronunciation"))
	if !ok {
		return nil
	}

	list := nextContent(heading)
	if !list.Is("ul, ol") {
		id, _ := heading.Attr("id")
		logger.Debug("malformed section",
			"code", wordseek.EMALFORMED,
			"heading", id,
			"reason", "pronunciation heading not followed by a list")
		return nil
	}

	var entries []wordseek.PronunciationEntry
	list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		entries = append(entries, pronunciationEntry(li, base))
	})
	return entries
}

func pronunciationEntry(li *goquery.Selection, base *url.URL) wordseek.PronunciationEntry {
	ipas, qualifier := scanItem(li.Get(0))

	var entry wordseek.PronunciationEntry
	if qualifier == nil {
		entry.IPAs = nodeTexts(ipas)
		return entry
	}

	entry.Qualifier = qualifierLabel(qualifier, base)
	container := qualifier.Parent

	var inside, outside []*html.Node
	for _, n := range ipas {
		if contains(container, n) {
			inside = append(inside, n)
		} else {
			outside = append(outside, n)
		}
	}
	// Accent labels usually sit in their own wrapper next to the
	// transcriptions they describe.
	if len(inside) == 0 {
		inside, outside = outside, nil
	}
	entry.IPAs = nodeTexts(inside)
	entry.Unqualified = nodeTexts(outside)
	return entry
}

// scanItem walks the content of a list item in document order and returns
// its IPA nodes and its first qualifier node. Nested lists hold homophones
// and rhymes and are not entered.
func scanItem(item *html.Node) (ipas []*html.Node, qualifier *html.Node) {
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "ul", "ol", "dl":
				continue
			}
			if hasClass(c, "IPA") {
				ipas = append(ipas, c)
				continue
			}
			if qualifier == nil && hasClass(c, "qualifier-content") {
				qualifier = c
			}
			walk(c)
		}
	}
	walk(item)
	return ipas, qualifier
}

// qualifierLabel concatenates the child nodes of a qualifier. Elements go
// through ToLinkText and text runs are kept verbatim, except for the
// comma-only runs that separate multiple labels, which become ", ".
func qualifierLabel(q *html.Node, base *url.URL) string {
	var (
		parts []string
		comma bool
	)
	for c := q.FirstChild; c != nil; c = c.NextSibling {
		var part string
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) == "" {
				if !comma {
					parts = append(parts, c.Data)
				}
				continue
			}
			if strings.Trim(c.Data, ", \t\n") == "" {
				comma = true
				continue
			}
			part = c.Data
		case html.ElementNode:
			texts := ToLinkText(goquery.NewDocumentFromNode(c).Selection, base)
			if len(texts) == 0 {
				continue
			}
			part = texts[0]
		default:
			continue
		}
		if comma && len(parts) > 0 {
			parts[len(parts)-1] = strings.TrimRight(parts[len(parts)-1], " \t\n")
			parts = append(parts, ", ")
		}
		comma = false
		parts = append(parts, part)
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

// nextContent returns the element sibling following heading, skipping
// template styles and metadata.
func nextContent(heading *goquery.Selection) *goquery.Selection {
	next := heading.Next()
	for next.Is("style, link, meta") {
		next = next.Next()
	}
	return next
}

func nodeTexts(nodes []*html.Node) []string {
	var texts []string
	for _, n := range nodes {
		if text := strings.TrimSpace(goquery.NewDocumentFromNode(n).Text()); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func contains(ancestor, n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}
