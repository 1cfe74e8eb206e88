package entity

type ToolName string

const (
	ToolWebSearch   ToolName = "web_search"
	ToolHackerNews  ToolName = "hackernews_search"
	ToolArxivSearch ToolName = "arxiv_search"
)

func (t ToolName) String() string {
	return string(t)
}
