package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomi00700/agno-multi-agent/internal/domain/entity"
)

type stubTool struct {
	name entity.ToolName
}

func (s *stubTool) Name() entity.ToolName { return s.name }
func (s *stubTool) Description() string   { return "stub " + string(s.name) }
func (s *stubTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (s *stubTool) Execute(ctx context.Context, args string) (string, error) {
	return "", nil
}

func TestToolRegistry_RegisterAndGet(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{name: entity.ToolWebSearch})

	tool, ok := r.Get(entity.ToolWebSearch)
	require.True(t, ok)
	assert.Equal(t, entity.ToolWebSearch, tool.Name())

	_, ok = r.Get(entity.ToolArxivSearch)
	assert.False(t, ok)
}

func TestToolRegistry_All(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{name: entity.ToolWebSearch})
	r.Register(&stubTool{name: entity.ToolHackerNews})

	assert.Len(t, r.All(), 2)
}

func TestToolRegistry_DefinitionsSubset(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{name: entity.ToolWebSearch})
	r.Register(&stubTool{name: entity.ToolHackerNews})
	r.Register(&stubTool{name: entity.ToolArxivSearch})

	defs := r.Definitions([]entity.ToolName{entity.ToolWebSearch, entity.ToolArxivSearch})
	require.Len(t, defs, 2)
	assert.Equal(t, entity.ToolWebSearch, defs[0].Name)
	assert.Equal(t, entity.ToolArxivSearch, defs[1].Name)
	assert.Equal(t, "stub web_search", defs[0].Description)
}

func TestToolRegistry_DefinitionsIgnoresUnknownNames(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{name: entity.ToolWebSearch})

	defs := r.Definitions([]entity.ToolName{entity.ToolWebSearch, entity.ToolName("missing")})
	assert.Len(t, defs, 1)
}

func TestToolRegistry_DefinitionsEmptyToolset(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{name: entity.ToolWebSearch})

	assert.Empty(t, r.Definitions(nil))
}
