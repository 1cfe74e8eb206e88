package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nomi00700/agno-multi-agent/internal/application/port/output"
	"github.com/nomi00700/agno-multi-agent/internal/domain/entity"
)

const hnEndpoint = "https://hn.algolia.com/api/v1/search"

type HackerNewsTool struct {
	endpoint string
	client   *http.Client
	logger   output.LoggerPort
}

func NewHackerNewsTool(logger output.LoggerPort) *HackerNewsTool {
	return &HackerNewsTool{
		endpoint: hnEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

// NewHackerNewsToolWithEndpoint points the tool at a custom endpoint; used in tests.
func NewHackerNewsToolWithEndpoint(endpoint string, client *http.Client, logger output.LoggerPort) *HackerNewsTool {
	return &HackerNewsTool{endpoint: endpoint, client: client, logger: logger}
}

func (t *HackerNewsTool) Name() entity.ToolName { return entity.ToolHackerNews }

func (t *HackerNewsTool) Description() string {
	return "Search Hacker News stories. Returns the top matching stories with title, link, points and comment count. Use this to gauge what the tech community is discussing about a topic."
}

func (t *HackerNewsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Search query for Hacker News stories.",
			},
		},
		"required": []string{"query"},
	}
}

func (t *HackerNewsTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", fmt.Errorf("hackernews_search: invalid arguments: %w", err)
	}
	if strings.TrimSpace(input.Query) == "" {
		return "", fmt.Errorf("hackernews_search: query is required")
	}

	endpoint := fmt.Sprintf("%s?query=%s&tags=story&hitsPerPage=5", t.endpoint, url.QueryEscape(input.Query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hackernews_search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("hackernews_search: http %d", resp.StatusCode)
	}

	var payload struct {
		Hits []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Points      int    `json:"points"`
			NumComments int    `json:"num_comments"`
			ObjectID    string `json:"objectID"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("hackernews_search: decode response: %w", err)
	}
	if len(payload.Hits) == 0 {
		return "No stories found.", nil
	}

	var b strings.Builder
	for _, h := range payload.Hits {
		link := h.URL
		if link == "" {
			// Ask HN and similar text posts have no external URL.
			link = "https://news.ycombinator.com/item?id=" + h.ObjectID
		}
		fmt.Fprintf(&b, "- [%s](%s) — %d points, %d comments\n", h.Title, link, h.Points, h.NumComments)
	}
	return b.String(), nil
}
