package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Scope is a region of a page searched for headings. Parent, when set, is
// the enclosing region consulted once when the scope itself has no match.
type Scope struct {
	Node   *goquery.Selection
	Parent *Scope
}

// Predicate reports whether a heading id is a match.
type Predicate func(id string) bool

// HasIDPrefix matches heading ids starting with prefix, so "Noun" matches
// both "Noun" and "Noun_2".
func HasIDPrefix(prefix string) Predicate {
	return func(id string) bool {
		return strings.HasPrefix(id, prefix)
	}
}

// AnyIDPrefix matches heading ids starting with any of prefixes.
func AnyIDPrefix(prefixes ...string) Predicate {
	return func(id string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(id, p) {
				return true
			}
		}
		return false
	}
}

// FindInScope returns the first heading in scope whose id matches. When the
// scope has none, the parent scope's own level is searched once. The
// second return value is false when neither scope has a match.
func FindInScope(scope Scope, match Predicate) (*goquery.Selection, bool) {
	found := FindAllInScope(scope, match)
	if found.Length() == 0 {
		return nil, false
	}
	return found.First(), true
}

// FindAllInScope returns every heading in scope whose id matches, in
// document order. When the scope has none, the headings at the parent
// scope's own level are returned instead.
func FindAllInScope(scope Scope, match Predicate) *goquery.Selection {
	found := headings(scope.Node, match)
	if found.Length() > 0 || scope.Parent == nil {
		return found
	}

	parent := scope.Parent.Node
	return headings(parent, match).FilterFunction(func(_ int, h *goquery.Selection) bool {
		return atLevel(h, parent)
	})
}

// headings returns the descendant headings of sel whose id matches.
func headings(sel *goquery.Selection, match Predicate) *goquery.Selection {
	return sel.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		if !isHeading(s) {
			return false
		}
		id, _ := s.Attr("id")
		return match(id)
	})
}

// atLevel reports whether heading h belongs to the level of parent: it is
// a direct child of parent, or the section enclosing it is.
func atLevel(h, parent *goquery.Selection) bool {
	container := h.Parent()
	if sameNode(container, parent) {
		return true
	}
	return goquery.NodeName(container) == "section" && sameNode(container.Parent(), parent)
}

func isHeading(s *goquery.Selection) bool {
	switch goquery.NodeName(s) {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

func isSection(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "section"
}

func sameNode(a, b *goquery.Selection) bool {
	return a.Length() > 0 && b.Length() > 0 && a.Get(0) == b.Get(0)
}
