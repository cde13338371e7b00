package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// NoTitle is the title reported for documents without a <title> element.
const NoTitle = "No title found"

// excludedSelectors name the elements whose subtrees never contribute
// visible text: executable and styling payloads, media and form widgets.
var excludedSelectors = []string{"script", "style", "img", "input", "iframe", "noscript"}

// Document is a simplified representation of extracted page content.
type Document struct {
	Title string
	Text  string
}

// FromHTML parses raw page bytes and reduces them to a title plus the
// visible body text. contentType, when known, drives character set
// detection; otherwise the decoder sniffs byte order marks and meta tags.
//
// The text is assembled from the text nodes under <body> in document
// order, each trimmed of surrounding whitespace, one line per node.
// Whitespace-only nodes vanish entirely rather than leaving blank lines,
// and attribute values never contribute.
func FromHTML(input []byte, contentType string) (Document, error) {
	r, err := charset.NewReader(bytes.NewReader(input), contentType)
	if err != nil {
		return Document{}, fmt.Errorf("detect charset: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Document{}, fmt.Errorf("parse html: %w", err)
	}

	title := NoTitle
	if t := doc.Find("title"); t.Length() > 0 {
		title = strings.TrimSpace(t.First().Text())
	}

	for _, sel := range excludedSelectors {
		doc.Find(sel).Remove()
	}

	var text string
	if body := doc.Find("body"); body.Length() > 0 {
		text = visibleText(body.Nodes[0])
	}
	return Document{Title: title, Text: text}, nil
}

// visibleText walks the subtree rooted at n and joins its non-empty,
// trimmed text nodes with single newlines.
func visibleText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			if s := strings.TrimSpace(cur.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, "\n")
}
