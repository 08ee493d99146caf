package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is the minimal querying capability the engine needs from a
// parsed HTML page. Keeping it an interface means strategies do not depend
// on which parser produced the tree.
type Document interface {
	// Select returns every element matching the CSS selector, in document order.
	Select(selector string) []Element
}

// Element is a single matched node.
type Element interface {
	// Text returns the concatenated text of the node and its descendants.
	Text() string
	// Attr returns the value of the named attribute, if present.
	Attr(name string) (string, bool)
}

// ParseDocument parses raw HTML into a queryable Document.
func ParseDocument(input string) (Document, error) {
	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &goqueryDocument{doc: goquery.NewDocumentFromNode(node)}, nil
}

type goqueryDocument struct {
	doc *goquery.Document
}

func (d *goqueryDocument) Select(selector string) []Element {
	var out []Element
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, &goqueryElement{sel: s})
	})
	return out
}

type goqueryElement struct {
	sel *goquery.Selection
}

func (e *goqueryElement) Text() string { return e.sel.Text() }

func (e *goqueryElement) Attr(name string) (string, bool) { return e.sel.Attr(name) }
