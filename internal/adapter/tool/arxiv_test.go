package tool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomi00700/agno-multi-agent/internal/infrastructure/logger"
)

const arxivFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2501.00001v1</id>
    <published>2025-01-01T00:00:00Z</published>
    <title>Urban Heat Island
 Mitigation via Green Roofs</title>
    <summary>We study the effect of
 green roofs on urban temperatures.</summary>
    <author><name>A. Researcher</name></author>
    <author><name>B. Scientist</name></author>
  </entry>
</feed>`

func TestArxivTool_Execute(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search_query")
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(arxivFixture))
	}))
	defer srv.Close()

	tool := NewArxivToolWithEndpoint(srv.URL, srv.Client(), logger.NewNop())

	out, err := tool.Execute(context.Background(), `{"query":"urban heat"}`)
	require.NoError(t, err)

	assert.Equal(t, "all:urban heat", gotQuery)
	// Newline-wrapped feed text is flattened.
	assert.Contains(t, out, "Urban Heat Island Mitigation via Green Roofs")
	assert.Contains(t, out, "http://arxiv.org/abs/2501.00001v1")
	assert.Contains(t, out, "A. Researcher, B. Scientist")
	assert.Contains(t, out, "green roofs on urban temperatures")
}

func TestArxivTool_NoEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?><feed xmlns="http://www.w3.org/2005/Atom"></feed>`))
	}))
	defer srv.Close()

	tool := NewArxivToolWithEndpoint(srv.URL, srv.Client(), logger.NewNop())

	out, err := tool.Execute(context.Background(), `{"query":"nothing"}`)
	require.NoError(t, err)
	assert.Equal(t, "No papers found.", out)
}

func TestArxivTool_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	tool := NewArxivToolWithEndpoint(srv.URL, srv.Client(), logger.NewNop())

	_, err := tool.Execute(context.Background(), `{"query":"q"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestCollapseSpace(t *testing.T) {
	assert.Equal(t, "a b c", collapseSpace("a\n b\t\tc"))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt("short", 10))
	assert.Equal(t, "0123456789...", excerpt("0123456789abcdef", 10))
}
