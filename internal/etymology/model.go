package etymology

import "golang.org/x/net/html"

// Entry is one word-origin result as shown to the user.
type Entry struct {
	Headword  string `json:"headword" yaml:"headword"`
	Etymology string `json:"etymology" yaml:"etymology"`
}

// RawEntry is an extracted entry whose definition is still markup.
type RawEntry struct {
	Headword string
	Fragment *html.Node
}

// Extraction is the result of scanning a search page.
// Found is false when the page has no matching entries.
type Extraction struct {
	Found   bool
	Entries []RawEntry
}
