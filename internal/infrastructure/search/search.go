// Package search provides web search providers behind a single interface.
// Brave is used when an API key is configured; the keyless DuckDuckGo lite
// endpoint is the fallback.
package search

import "context"

// Result is one search hit.
type Result struct {
	Title   string
	URL     string
	Snippet string
}

// Provider executes a web search query.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]Result, error)
}

// maxResults caps how many hits a provider returns; more only burns prompt
// budget without improving answers.
const maxResults = 5
