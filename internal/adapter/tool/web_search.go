// Package tool implements the research tools the model may call.
package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nomi00700/agno-multi-agent/internal/application/port/output"
	"github.com/nomi00700/agno-multi-agent/internal/domain/entity"
	"github.com/nomi00700/agno-multi-agent/internal/infrastructure/search"
)

type WebSearchTool struct {
	provider search.Provider
	logger   output.LoggerPort
}

func NewWebSearchTool(provider search.Provider, logger output.LoggerPort) *WebSearchTool {
	return &WebSearchTool{provider: provider, logger: logger}
}

func (t *WebSearchTool) Name() entity.ToolName { return entity.ToolWebSearch }

func (t *WebSearchTool) Description() string {
	return "Search the public web for current information. Returns the top results as a markdown list of title, URL and snippet. Use this for news, policies, projects and anything that may have changed recently."
}

func (t *WebSearchTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Search query. Keep it short and specific.",
			},
		},
		"required": []string{"query"},
	}
}

func (t *WebSearchTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", fmt.Errorf("web_search: invalid arguments: %w", err)
	}
	if strings.TrimSpace(input.Query) == "" {
		return "", fmt.Errorf("web_search: query is required")
	}

	results, err := t.provider.Search(ctx, input.Query)
	if err != nil {
		return "", fmt.Errorf("web_search (%s): %w", t.provider.Name(), err)
	}
	if len(results) == 0 {
		return "No results found.", nil
	}

	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "- [%s](%s): %s\n", r.Title, r.URL, r.Snippet)
	}
	return b.String(), nil
}
