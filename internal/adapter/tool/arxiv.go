package tool

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nomi00700/agno-multi-agent/internal/application/port/output"
	"github.com/nomi00700/agno-multi-agent/internal/domain/entity"
)

const arxivEndpoint = "https://export.arxiv.org/api/query"

type ArxivTool struct {
	endpoint string
	client   *http.Client
	logger   output.LoggerPort
}

func NewArxivTool(logger output.LoggerPort) *ArxivTool {
	return &ArxivTool{
		endpoint: arxivEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

// NewArxivToolWithEndpoint points the tool at a custom endpoint; used in tests.
func NewArxivToolWithEndpoint(endpoint string, client *http.Client, logger output.LoggerPort) *ArxivTool {
	return &ArxivTool{endpoint: endpoint, client: client, logger: logger}
}

func (t *ArxivTool) Name() entity.ToolName { return entity.ToolArxivSearch }

func (t *ArxivTool) Description() string {
	return "Search arXiv preprints. Returns matching papers with title, authors, abstract excerpt and link. Use this for the research state of the art behind a technology."
}

func (t *ArxivTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Search query for arXiv papers.",
			},
		},
		"required": []string{"query"},
	}
}

// atomFeed maps the subset of the arXiv Atom response the tool uses.
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string       `xml:"id"`
	Title     string       `xml:"title"`
	Summary   string       `xml:"summary"`
	Published string       `xml:"published"`
	Authors   []atomAuthor `xml:"author"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

func (t *ArxivTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", fmt.Errorf("arxiv_search: invalid arguments: %w", err)
	}
	if strings.TrimSpace(input.Query) == "" {
		return "", fmt.Errorf("arxiv_search: query is required")
	}

	endpoint := fmt.Sprintf("%s?search_query=all:%s&start=0&max_results=5",
		t.endpoint, url.QueryEscape(input.Query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("arxiv_search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("arxiv_search: http %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return "", fmt.Errorf("arxiv_search: decode feed: %w", err)
	}
	if len(feed.Entries) == 0 {
		return "No papers found.", nil
	}

	var b strings.Builder
	for _, e := range feed.Entries {
		names := make([]string, 0, len(e.Authors))
		for _, a := range e.Authors {
			names = append(names, a.Name)
		}
		fmt.Fprintf(&b, "- [%s](%s) by %s\n  %s\n",
			collapseSpace(e.Title), e.ID,
			strings.Join(names, ", "),
			excerpt(collapseSpace(e.Summary), 300))
	}
	return b.String(), nil
}

// collapseSpace flattens the newline-wrapped text arXiv returns.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func excerpt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
