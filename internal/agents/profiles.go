// Package agents holds the immutable persona table. The table is built once
// at startup and passed explicitly to the dispatcher; nothing reads it from
// ambient state.
package agents

import (
	"github.com/nomi00700/agno-multi-agent/internal/domain/entity"
	"github.com/nomi00700/agno-multi-agent/internal/infrastructure/prompts"
)

// Profile describes one persona: who it is, what it is told, which tools it
// may call. Team profiles carry members instead of tools.
type Profile struct {
	Kind         entity.AgentKind
	DisplayName  string
	Role         string
	Instructions string
	Tools        []entity.ToolName
	Members      []entity.AgentKind
}

// IsTeam reports whether the profile dispatches to member personas.
func (p Profile) IsTeam() bool {
	return len(p.Members) > 0
}

// RequiresDataset reports whether a dispatch must carry an uploaded dataset.
func (p Profile) RequiresDataset() bool {
	return p.Kind == entity.AgentDataAnalyst
}

// Table is the closed persona set, keyed by kind.
type Table map[entity.AgentKind]Profile

// NewTable builds the persona table. The four personas and the team mirror
// the fixed set the product ships with.
func NewTable() Table {
	return Table{
		entity.AgentNewsAnalyst: {
			Kind:         entity.AgentNewsAnalyst,
			DisplayName:  "News Analyst",
			Role:         "Find recent news on sustainability initiatives",
			Instructions: prompts.NewsAnalystInstructions,
			Tools:        []entity.ToolName{entity.ToolWebSearch},
		},
		entity.AgentDataAnalyst: {
			Kind:         entity.AgentDataAnalyst,
			DisplayName:  "Data Analyst",
			Role:         "Analyze uploaded CSV datasets using comprehensive data analysis",
			Instructions: prompts.DataAnalystInstructions,
			// Context-only: the dataset summary is embedded in the prompt,
			// so the model needs no tools.
			Tools: nil,
		},
		entity.AgentPolicyReviewer: {
			Kind:         entity.AgentPolicyReviewer,
			DisplayName:  "Policy Reviewer",
			Role:         "Summarize government policies",
			Instructions: prompts.PolicyReviewerInstructions,
			Tools:        []entity.ToolName{entity.ToolWebSearch},
		},
		entity.AgentInnovationsScout: {
			Kind:         entity.AgentInnovationsScout,
			DisplayName:  "Innovations Scout",
			Role:         "Find innovative green tech ideas",
			Instructions: prompts.InnovationsScoutInstructions,
			Tools: []entity.ToolName{
				entity.ToolWebSearch,
				entity.ToolHackerNews,
				entity.ToolArxivSearch,
			},
		},
		entity.AgentTeam: {
			Kind:         entity.AgentTeam,
			DisplayName:  "All Agents (Team)",
			Role:         "Discussion team working toward consensus",
			Instructions: prompts.TeamSynthesisInstructions,
			Members: []entity.AgentKind{
				entity.AgentNewsAnalyst,
				entity.AgentDataAnalyst,
				entity.AgentPolicyReviewer,
				entity.AgentInnovationsScout,
			},
		},
	}
}

// Get returns the profile for a kind.
func (t Table) Get(kind entity.AgentKind) (Profile, bool) {
	p, ok := t[kind]
	return p, ok
}

// Ordered returns profiles in display order for UI listing.
func (t Table) Ordered() []Profile {
	result := make([]Profile, 0, len(t))
	for _, kind := range entity.AllAgentKinds {
		if p, ok := t[kind]; ok {
			result = append(result, p)
		}
	}
	return result
}
