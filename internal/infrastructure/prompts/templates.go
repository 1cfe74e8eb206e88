package prompts

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/prompts"
)

// Templates are parsed once at package init; a malformed template is a
// programming error and fails the first Format call in tests.
var (
	systemTemplate = prompts.NewPromptTemplate(
		"You are {{.name}}, a research agent. Your role: {{.role}}\n\n{{.instructions}}\nAlways answer in well-structured markdown.",
		[]string{"name", "role", "instructions"},
	)

	topicTemplate = prompts.NewPromptTemplate(
		"Research the following topic and report your findings.\n\nTopic: {{.topic}}",
		[]string{"topic"},
	)

	dataTopicTemplate = prompts.NewPromptTemplate(
		"{{.summary}}\n\n## Analysis Request\nPlease provide a comprehensive analysis of this data focusing on the user's request: {{.topic}}",
		[]string{"summary", "topic"},
	)

	synthesisTemplate = prompts.NewPromptTemplate(
		"Topic: {{.topic}}\n\nMember answers:\n\n{{range .answers}}### {{.Agent}}\n{{.Text}}\n\n{{end}}Produce the consensus answer now.",
		[]string{"topic", "answers"},
	)
)

// MemberAnswer is one team member's contribution fed into the synthesis call.
type MemberAnswer struct {
	Agent string
	Text  string
}

// SystemPrompt renders the persona system message.
func SystemPrompt(name, role, instructions string) (string, error) {
	out, err := systemTemplate.Format(map[string]any{
		"name":         name,
		"role":         role,
		"instructions": strings.TrimSpace(instructions),
	})
	if err != nil {
		return "", fmt.Errorf("render system prompt: %w", err)
	}
	return out, nil
}

// TopicPrompt renders the user message for a plain research request.
// The topic appears verbatim in the output.
func TopicPrompt(topic string) (string, error) {
	out, err := topicTemplate.Format(map[string]any{"topic": topic})
	if err != nil {
		return "", fmt.Errorf("render topic prompt: %w", err)
	}
	return out, nil
}

// DataTopicPrompt renders the user message for a data analysis request,
// embedding the dataset summary ahead of the topic.
func DataTopicPrompt(summary, topic string) (string, error) {
	out, err := dataTopicTemplate.Format(map[string]any{
		"summary": summary,
		"topic":   topic,
	})
	if err != nil {
		return "", fmt.Errorf("render data prompt: %w", err)
	}
	return out, nil
}

// SynthesisPrompt renders the team consensus request from member answers.
func SynthesisPrompt(topic string, answers []MemberAnswer) (string, error) {
	out, err := synthesisTemplate.Format(map[string]any{
		"topic":   topic,
		"answers": answers,
	})
	if err != nil {
		return "", fmt.Errorf("render synthesis prompt: %w", err)
	}
	return out, nil
}
