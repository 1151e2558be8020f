package etymology

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

const highlightClass = "highlight"

// Extract parses a search page and pairs every highlighted headword with its
// definition in document order. A page whose first headword has no link, or
// which has no highlighted pair, is reported as not found.
func Extract(r io.Reader) (Extraction, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Extraction{}, fmt.Errorf("html.Parse > %w", err)
	}

	first := findElement(doc, "dt")
	if first == nil {
		return Extraction{}, nil
	}
	if anchor := findElement(first, "a"); anchor == nil || strings.TrimSpace(getTextContent(anchor)) == "" {
		return Extraction{}, nil
	}

	var headwords []string
	var fragments []*html.Node
	collectHighlighted(doc, &headwords, &fragments)

	count := min(len(headwords), len(fragments))
	if count == 0 {
		return Extraction{}, nil
	}

	entries := make([]RawEntry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, RawEntry{
			Headword: headwords[i],
			Fragment: fragments[i],
		})
	}
	return Extraction{
		Found:   true,
		Entries: entries,
	}, nil
}

func collectHighlighted(n *html.Node, headwords *[]string, fragments *[]*html.Node) {
	if n.Type == html.ElementNode && hasClass(n, highlightClass) {
		switch n.Data {
		case "dt":
			*headwords = append(*headwords, headwordOf(n))
			return
		case "dd":
			*fragments = append(*fragments, n)
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectHighlighted(c, headwords, fragments)
	}
}

// headwordOf prefers the entry link text and falls back to the whole term.
func headwordOf(dt *html.Node) string {
	if anchor := findElement(dt, "a"); anchor != nil {
		if text := strings.TrimSpace(getTextContent(anchor)); text != "" {
			return CleanText(text)
		}
	}
	return CleanText(strings.TrimSpace(getTextContent(dt)))
}

func findElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func getTextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var result strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		result.WriteString(getTextContent(c))
	}
	return result.String()
}
