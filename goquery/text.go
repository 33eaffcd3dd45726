package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wordseek"
	"golang.org/x/net/html"
)

// nonContent matches sub-nodes that carry no etymology text: citation
// markers, inline images and template styles.
const nonContent = ".reference, .mw-ref, figure, style"

// wikiLink matches anchors pointing to other wiki pages.
const wikiLink = `a[rel="mw:WikiLink"]`

// ToLinkText maps the element nodes of sel to strings. Anchors become
// "[text](url)" with the href resolved against base; other elements become
// their text content. Non-element nodes are dropped.
func ToLinkText(sel *goquery.Selection, base *url.URL) []string {
	var texts []string
	for _, n := range sel.Nodes {
		if n.Type != html.ElementNode {
			continue
		}
		s := goquery.NewDocumentFromNode(n).Selection
		if n.Data == "a" {
			texts = append(texts, markdownLink(s, base))
			continue
		}
		texts = append(texts, s.Text())
	}
	return texts
}

// ToEmbedText returns the link-annotated text of sel: citations and figures
// are removed, wiki links are rewritten as "[text](url)" and the text of each
// node is joined with newlines. Returns wordseek.NotAvailable when nothing
// is left.
func ToEmbedText(sel *goquery.Selection, base *url.URL) string {
	texts := embedTexts(sel, base)
	if len(texts) == 0 {
		return wordseek.NotAvailable
	}
	return strings.Join(texts, "\n")
}

// embedTexts returns the link-annotated text of every node in sel. The
// nodes are cloned so the parsed document is left untouched.
func embedTexts(sel *goquery.Selection, base *url.URL) []string {
	var texts []string
	for _, n := range sel.Nodes {
		if n.Type != html.ElementNode && n.Type != html.TextNode {
			continue
		}
		clone := goquery.NewDocumentFromNode(cloneNode(n)).Selection
		if clone.Is(nonContent) {
			continue
		}
		clone.Find(nonContent).Remove()

		links := clone.Find(wikiLink)
		if clone.Is(wikiLink) {
			links = links.AddSelection(clone)
		}
		links.Each(func(_ int, a *goquery.Selection) {
			a.SetText(markdownLink(a, base))
		})

		if text := strings.TrimSpace(clone.Text()); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}

// plainTexts returns the trimmed text content of every node in sel,
// skipping blank ones.
func plainTexts(sel *goquery.Selection) []string {
	var texts []string
	for _, n := range sel.Nodes {
		if text := strings.TrimSpace(goquery.NewDocumentFromNode(n).Text()); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}

// collapseSpace replaces runs of whitespace with a single space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func markdownLink(a *goquery.Selection, base *url.URL) string {
	href, _ := a.Attr("href")
	return "[" + a.Text() + "](" + resolveURL(base, href) + ")"
}

// resolveURL resolves href against base. The href is returned unchanged
// when it cannot be parsed or base is nil.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil || base == nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// cloneNode returns a deep copy of n detached from its tree.
func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}
