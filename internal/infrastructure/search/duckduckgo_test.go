package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const liteFixture = `<html><body><table>
<tr><td>1.</td><td><a rel="nofollow" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fgreen" class="result-link">Green projects 2025</a></td></tr>
<tr><td>&nbsp;</td><td class="result-snippet">Cities expand green infrastructure this year.</td></tr>
<tr><td>2.</td><td><a rel="nofollow" href="https://example.org/policy" class="result-link">Policy update</a></td></tr>
<tr><td>&nbsp;</td><td class="result-snippet">New municipal policy announced.</td></tr>
</table></body></html>`

func parseFixture(t *testing.T, s string) []Result {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return parseLiteResults(doc)
}

func TestParseLiteResults(t *testing.T) {
	results := parseFixture(t, liteFixture)
	require.Len(t, results, 2)

	assert.Equal(t, "Green projects 2025", results[0].Title)
	assert.Equal(t, "https://example.com/green", results[0].URL)
	assert.Equal(t, "Cities expand green infrastructure this year.", results[0].Snippet)

	assert.Equal(t, "Policy update", results[1].Title)
	assert.Equal(t, "https://example.org/policy", results[1].URL)
}

func TestParseLiteResults_NoResults(t *testing.T) {
	results := parseFixture(t, `<html><body><p>No results.</p></body></html>`)
	assert.Empty(t, results)
}

func TestParseLiteResults_CapsAtMaxResults(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body><table>")
	for i := 0; i < 10; i++ {
		b.WriteString(`<tr><td><a href="https://example.com" class="result-link">title</a></td></tr>`)
		b.WriteString(`<tr><td class="result-snippet">snippet</td></tr>`)
	}
	b.WriteString("</table></body></html>")

	results := parseFixture(t, b.String())
	assert.Len(t, results, maxResults)
}

func TestParseLiteResults_LinkWithoutSnippet(t *testing.T) {
	results := parseFixture(t,
		`<html><body><a href="https://example.com" class="result-link">lonely</a></body></html>`)
	require.Len(t, results, 1)
	assert.Equal(t, "lonely", results[0].Title)
	assert.Empty(t, results[0].Snippet)
}

func TestNormalizeDDGURL(t *testing.T) {
	assert.Equal(t, "https://example.com/x?y=1",
		normalizeDDGURL("//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fx%3Fy%3D1"))
	assert.Equal(t, "https://example.org/direct",
		normalizeDDGURL("https://example.org/direct"))
	assert.Equal(t, "https://cdn.example.net/a",
		normalizeDDGURL("//cdn.example.net/a"))
	assert.Equal(t, "", normalizeDDGURL(""))
}
