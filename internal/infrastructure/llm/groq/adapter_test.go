package groq

import (
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomi00700/agno-multi-agent/internal/domain/entity"
)

func TestConvertResponseMessage_WithContent(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		Role:    "assistant",
		Content: "Hello, world!",
	}

	result := convertResponseMessage(msg)

	assert.Equal(t, entity.RoleAssistant, result.Role)
	assert.Equal(t, "Hello, world!", result.Content)
	assert.Empty(t, result.ToolCalls)
}

func TestConvertResponseMessage_WithToolCalls(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		Role: "assistant",
		ToolCalls: []openai.ToolCall{
			{
				ID:   "call_123",
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      "web_search",
					Arguments: `{"query":"green tech"}`,
				},
			},
		},
	}

	result := convertResponseMessage(msg)

	assert.Equal(t, entity.RoleAssistant, result.Role)
	require.Len(t, result.ToolCalls, 1)
	assert.Equal(t, "call_123", result.ToolCalls[0].ID)
	assert.Equal(t, entity.ToolWebSearch, result.ToolCalls[0].Name)
	assert.Equal(t, `{"query":"green tech"}`, result.ToolCalls[0].Arguments)
}

func TestConvertMessages(t *testing.T) {
	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: "You are a research agent."},
		{Role: entity.RoleUser, Content: "Topic: parks"},
		{
			Role: entity.RoleAssistant,
			ToolCalls: []entity.ToolCall{
				{ID: "c1", Name: entity.ToolWebSearch, Arguments: `{"query":"parks"}`},
			},
		},
		{Role: entity.RoleTool, ToolCallID: "c1", Name: "web_search", Content: "- result"},
	}

	result := convertMessages(messages)

	require.Len(t, result, 4)
	assert.Equal(t, "system", result[0].Role)
	assert.Equal(t, "user", result[1].Role)

	require.Len(t, result[2].ToolCalls, 1)
	assert.Equal(t, "c1", result[2].ToolCalls[0].ID)
	assert.Equal(t, openai.ToolTypeFunction, result[2].ToolCalls[0].Type)
	assert.Equal(t, "web_search", result[2].ToolCalls[0].Function.Name)

	assert.Equal(t, "tool", result[3].Role)
	assert.Equal(t, "c1", result[3].ToolCallID)
	assert.Equal(t, "web_search", result[3].Name)
}

func TestConvertTools(t *testing.T) {
	tools := []entity.ToolDefinition{
		{
			Name:        entity.ToolHackerNews,
			Description: "search HN",
			Parameters:  map[string]interface{}{"type": "object"},
		},
	}

	result := convertTools(tools)

	require.Len(t, result, 1)
	assert.Equal(t, openai.ToolTypeFunction, result[0].Type)
	assert.Equal(t, "hackernews_search", result[0].Function.Name)
	assert.Equal(t, "search HN", result[0].Function.Description)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("key", "qwen/qwen3-32b")
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "qwen/qwen3-32b", cfg.Model)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}
