package entity

import "time"

// ResearchRequest is built once per form submission and consumed once.
type ResearchRequest struct {
	Agent   AgentKind
	Topic   string
	Dataset *Dataset
}

// ResearchResult carries the markdown answer plus dispatch metadata.
// It is rendered immediately and never stored.
type ResearchResult struct {
	RequestID  string
	Agent      AgentKind
	Markdown   string
	Iterations int
	Duration   time.Duration
}
