package input

import (
	"context"

	"github.com/nomi00700/agno-multi-agent/internal/domain/entity"
)

// Dispatcher turns one research request into one rendered answer.
type Dispatcher interface {
	Dispatch(ctx context.Context, req entity.ResearchRequest) (*entity.ResearchResult, error)
}
