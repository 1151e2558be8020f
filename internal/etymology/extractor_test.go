package etymology

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	contents, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return contents
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name          string
		page          string
		wantFound     bool
		wantHeadwords []string
	}{
		{
			name:          "highlighted entries in document order",
			page:          string(readFixture(t, "search.html")),
			wantFound:     true,
			wantHeadwords: []string{"cat", "dog"},
		},
		{
			name:      "page without entries",
			page:      string(readFixture(t, "no_results.html")),
			wantFound: false,
		},
		{
			name:      "entries without highlight",
			page:      string(readFixture(t, "no_highlight.html")),
			wantFound: false,
		},
		{
			name:      "first headword without a link",
			page:      `<dl><dt class="highlight">cat</dt><dd class="highlight">Old English</dd></dl>`,
			wantFound: false,
		},
		{
			name:      "first headword with an empty link",
			page:      `<dl><dt class="highlight"><a href="/x"> </a></dt><dd class="highlight">Old English</dd></dl>`,
			wantFound: false,
		},
		{
			name: "unpaired headword is dropped",
			page: `<dl>
<dt class="highlight"><a href="/cat">cat</a></dt><dd class="highlight">Old English</dd>
<dt class="highlight"><a href="/dog">dog</a></dt>
</dl>`,
			wantFound:     true,
			wantHeadwords: []string{"cat"},
		},
		{
			name: "highlighted headword without a link uses its text",
			page: `<dl>
<dt class="highlight"><a href="/cat">cat</a></dt><dd class="highlight">Old English</dd>
<dt class="highlight other">  dog
 (n.)</dt><dd class="highlight">Old English</dd>
</dl>`,
			wantFound:     true,
			wantHeadwords: []string{"cat", "dog (n.)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(strings.NewReader(tt.page))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, got.Found)

			var headwords []string
			for _, entry := range got.Entries {
				headwords = append(headwords, entry.Headword)
				require.NotNil(t, entry.Fragment)
				assert.Equal(t, "dd", entry.Fragment.Data)
			}
			assert.Equal(t, tt.wantHeadwords, headwords)
		})
	}
}

func TestExtract_ReadError(t *testing.T) {
	_, err := Extract(iotest.ErrReader(errors.New("connection reset")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestExtract_Beautify(t *testing.T) {
	got, err := Extract(strings.NewReader(string(readFixture(t, "search.html"))))
	require.NoError(t, err)
	require.True(t, got.Found)
	require.Len(t, got.Entries, 2)

	beautifier := NewBeautifier(underscoreStyler{})
	assert.Equal(t,
		`Old English _catt_ (c.700), from West Germanic (c.400-450), from Proto-Germanic _*kattuz_ (source also of Old Frisian _katte_, Old Norse _köttr_); "domestic cat".`,
		beautifier.Beautify(got.Entries[0].Fragment))
	assert.Equal(t,
		"Old English _docga_, a late, rare word used in at least one Middle English source in reference to a mastiff.",
		beautifier.Beautify(got.Entries[1].Fragment))
}
