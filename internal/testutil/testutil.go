// Package testutil provides shared test helpers for creating config files,
// word lists and a fake etymonline search endpoint.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// NoResultsPage is served for queries without a registered page.
const NoResultsPage = `<!DOCTYPE html>
<html><body><div id="dictionary"><p>No matching terms found.</p></div></body></html>`

// EntryPage builds a search page with one highlighted entry per headword/definition pair.
func EntryPage(pairs ...[2]string) string {
	page := "<!DOCTYPE html>\n<html><body><div id=\"dictionary\"><dl>\n"
	for _, pair := range pairs {
		page += fmt.Sprintf("<dt class=\"highlight\"><a href=\"/index.php?term=%[1]s\">%[1]s</a></dt>\n<dd class=\"highlight\">%[2]s</dd>\n", pair[0], pair[1])
	}
	return page + "</dl></div></body></html>"
}

// EtymonlineServer answers /index.php?search=<query> from a fixed set of pages
// and records every query it receives.
type EtymonlineServer struct {
	*httptest.Server

	mu      sync.Mutex
	queries []string
}

// NewEtymonlineServer starts a server that is closed when the test ends.
func NewEtymonlineServer(t *testing.T, pages map[string]string) *EtymonlineServer {
	t.Helper()

	server := &EtymonlineServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("search")
		server.mu.Lock()
		server.queries = append(server.queries, query)
		server.mu.Unlock()

		page, ok := pages[query]
		if !ok {
			page = NoResultsPage
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(server.Close)
	return server
}

func (s *EtymonlineServer) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

// SetupTestConfig writes a word list and a config file pointing at baseURL.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string, words ...string) string {
	t.Helper()

	wordsFile := filepath.Join(tmpDir, "words")
	var contents string
	for _, word := range words {
		contents += word + "\n"
	}
	require.NoError(t, os.WriteFile(wordsFile, []byte(contents), 0644))

	configContent := fmt.Sprintf(`etymonline:
  base_url: %s
lookup:
  max_attempts: 3
dictionary:
  words_file: %s
display:
  width: 40
`,
		baseURL,
		wordsFile,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
