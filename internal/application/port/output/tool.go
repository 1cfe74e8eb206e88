package output

import (
	"context"

	"github.com/nomi00700/agno-multi-agent/internal/domain/entity"
)

type ToolPort interface {
	Name() entity.ToolName
	Description() string
	Parameters() map[string]interface{}
	Execute(ctx context.Context, arguments string) (string, error)
}

type ToolRegistry interface {
	Register(tool ToolPort)
	Get(name entity.ToolName) (ToolPort, bool)
	All() []ToolPort
	// Definitions returns declarations for the named subset only, so each
	// persona exposes exactly its own toolset to the model.
	Definitions(names []entity.ToolName) []entity.ToolDefinition
}
