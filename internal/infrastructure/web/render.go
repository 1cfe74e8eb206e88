package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// markdown renders GFM so agent answers with tables and lists come out right.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// renderMarkdown converts agent output to HTML for embedding in the result
// panel.
func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// agentOption is one radio button in the form.
type agentOption struct {
	Value    string
	Label    string
	Selected bool
}

// resultView is the rendered answer block.
type resultView struct {
	AgentName  string
	HTML       template.HTML
	Iterations int
	Duration   string
	RequestID  string
}

// pageData feeds the index template. Error and Notice are inline banners;
// Topic round-trips the submitted text so validation failures keep the input.
type pageData struct {
	Agents []agentOption
	Topic  string
	Error  string
	Notice string
	Result *resultView
}
