package etymology

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const foreignClass = "foreign"

// \s does not cover no-break spaces decoded from &nbsp;.
var (
	leadingSpacePattern           = regexp.MustCompile(`^[\s\p{Zs}]+`)
	whitespacePattern             = regexp.MustCompile(`[\s\p{Zs}]+`)
	spaceBeforePunctuationPattern = regexp.MustCompile(`[\s\p{Zs}]+([,)\].;:])`)
	spaceAfterParenthesisPattern  = regexp.MustCompile(`([(])[\s\p{Zs}]+`)
)

// Beautifier turns a definition fragment into display text.
type Beautifier struct {
	styler Styler
}

func NewBeautifier(styler Styler) *Beautifier {
	return &Beautifier{
		styler: styler,
	}
}

// Beautify joins the text of fragment with single spaces, styles foreign
// terms in italics and tidies the spacing with CleanText.
func (b *Beautifier) Beautify(fragment *html.Node) string {
	if fragment == nil {
		return ""
	}
	var segments []string
	b.collectSegments(fragment, &segments)
	return CleanText(" " + strings.Join(segments, " "))
}

func (b *Beautifier) collectSegments(n *html.Node, segments *[]string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			*segments = append(*segments, c.Data)
		case html.ElementNode:
			if c.Data == "script" || c.Data == "style" {
				continue
			}
			if c.Data == "span" && hasClass(c, foreignClass) {
				if text := strings.TrimSpace(getTextContent(c)); text != "" {
					*segments = append(*segments, b.styler.Italic(text))
				}
				continue
			}
			b.collectSegments(c, segments)
		}
	}
}

// CleanText strips leading whitespace, collapses whitespace runs to one space,
// and removes spaces before closing punctuation and after an opening parenthesis.
func CleanText(s string) string {
	s = leadingSpacePattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	s = spaceBeforePunctuationPattern.ReplaceAllString(s, "${1}")
	s = spaceAfterParenthesisPattern.ReplaceAllString(s, "${1}")
	return s
}
