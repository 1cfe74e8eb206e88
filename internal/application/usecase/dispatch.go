package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nomi00700/agno-multi-agent/internal/agents"
	"github.com/nomi00700/agno-multi-agent/internal/application/port/input"
	"github.com/nomi00700/agno-multi-agent/internal/application/port/output"
	"github.com/nomi00700/agno-multi-agent/internal/dataset"
	"github.com/nomi00700/agno-multi-agent/internal/domain/entity"
	"github.com/nomi00700/agno-multi-agent/internal/infrastructure/prompts"
)

const (
	defaultMaxIterations = 6
	maxObservationLen    = 20000
)

var (
	ErrEmptyTopic      = errors.New("topic is empty")
	ErrUnknownAgent    = errors.New("unknown agent")
	ErrDatasetRequired = errors.New("data analysis requires an uploaded CSV file")
)

var _ input.Dispatcher = (*DispatchUseCase)(nil)

// DispatchUseCase maps a research request onto one completion exchange:
// render the persona prompt, declare the persona toolset, run the bounded
// tool-call loop, return the final text unchanged.
type DispatchUseCase struct {
	llm           output.LLMPort
	tools         output.ToolRegistry
	table         agents.Table
	logger        output.LoggerPort
	maxIterations int
}

func NewDispatchUseCase(
	llm output.LLMPort,
	tools output.ToolRegistry,
	table agents.Table,
	logger output.LoggerPort,
	maxIterations int,
) *DispatchUseCase {
	if maxIterations <= 0 {
		maxIterations = defaultMaxIterations
	}
	return &DispatchUseCase{
		llm:           llm,
		tools:         tools,
		table:         table,
		logger:        logger,
		maxIterations: maxIterations,
	}
}

func (uc *DispatchUseCase) Dispatch(ctx context.Context, req entity.ResearchRequest) (*entity.ResearchResult, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, ErrEmptyTopic
	}

	profile, ok := uc.table.Get(req.Agent)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, req.Agent)
	}
	if profile.RequiresDataset() && req.Dataset == nil {
		return nil, ErrDatasetRequired
	}

	start := time.Now()
	requestID := uuid.New().String()
	log := uc.logger.WithField("requestId", requestID)
	log.Info("Dispatch started", "agent", req.Agent.String(), "topicLen", len(req.Topic), "hasDataset", req.Dataset != nil)

	var (
		text       string
		iterations int
		err        error
	)
	if profile.IsTeam() {
		text, iterations, err = uc.runTeam(ctx, log, profile, req)
	} else {
		text, iterations, err = uc.runAgent(ctx, log, profile, req)
	}
	if err != nil {
		log.Error("Dispatch failed", "agent", req.Agent.String(), "error", err)
		return nil, err
	}

	log.Info("Dispatch completed", "agent", req.Agent.String(), "iterations", iterations, "durationMs", time.Since(start).Milliseconds())
	return &entity.ResearchResult{
		RequestID:  requestID,
		Agent:      req.Agent,
		Markdown:   text,
		Iterations: iterations,
		Duration:   time.Since(start),
	}, nil
}

// runAgent drives one persona through the tool-call loop.
func (uc *DispatchUseCase) runAgent(ctx context.Context, log output.LoggerPort, profile agents.Profile, req entity.ResearchRequest) (string, int, error) {
	system, err := prompts.SystemPrompt(profile.DisplayName, profile.Role, profile.Instructions)
	if err != nil {
		return "", 0, err
	}

	user, err := uc.userPrompt(profile, req)
	if err != nil {
		return "", 0, err
	}

	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: system},
		{Role: entity.RoleUser, Content: user},
	}
	toolDefs := uc.tools.Definitions(profile.Tools)

	for iteration := 1; iteration <= uc.maxIterations; iteration++ {
		resp, err := uc.llm.Chat(ctx, output.ChatRequest{
			Messages:    messages,
			Tools:       toolDefs,
			Temperature: 0.0,
		})
		if err != nil {
			return "", iteration, fmt.Errorf("completion request failed: %w", err)
		}

		messages = append(messages, resp.Message)

		if len(resp.Message.ToolCalls) == 0 {
			return resp.Message.Content, iteration, nil
		}

		for _, tc := range resp.Message.ToolCalls {
			observation := uc.executeTool(ctx, log, tc)
			messages = append(messages, entity.Message{
				Role:       entity.RoleTool,
				ToolCallID: tc.ID,
				Name:       string(tc.Name),
				Content:    observation,
			})
		}
	}

	return "", uc.maxIterations, fmt.Errorf("max iterations (%d) exceeded", uc.maxIterations)
}

// runTeam runs each member persona on the topic, then one synthesis call
// merges the answers. The data analyst joins only when a dataset is present.
func (uc *DispatchUseCase) runTeam(ctx context.Context, log output.LoggerPort, team agents.Profile, req entity.ResearchRequest) (string, int, error) {
	var (
		answers    []prompts.MemberAnswer
		iterations int
	)
	for _, kind := range team.Members {
		member, ok := uc.table.Get(kind)
		if !ok {
			return "", iterations, fmt.Errorf("%w: %s", ErrUnknownAgent, kind)
		}
		if member.RequiresDataset() && req.Dataset == nil {
			log.Debug("Skipping member without dataset", "member", kind.String())
			continue
		}

		memberReq := req
		memberReq.Agent = kind
		text, n, err := uc.runAgent(ctx, log.WithField("member", kind.String()), member, memberReq)
		iterations += n
		if err != nil {
			return "", iterations, fmt.Errorf("team member %s: %w", kind, err)
		}
		answers = append(answers, prompts.MemberAnswer{Agent: member.DisplayName, Text: text})
	}

	system, err := prompts.SystemPrompt(team.DisplayName, team.Role, team.Instructions)
	if err != nil {
		return "", iterations, err
	}
	user, err := prompts.SynthesisPrompt(req.Topic, answers)
	if err != nil {
		return "", iterations, err
	}

	resp, err := uc.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: system},
			{Role: entity.RoleUser, Content: user},
		},
		Temperature: 0.0,
	})
	if err != nil {
		return "", iterations, fmt.Errorf("synthesis request failed: %w", err)
	}
	return resp.Message.Content, iterations + 1, nil
}

func (uc *DispatchUseCase) userPrompt(profile agents.Profile, req entity.ResearchRequest) (string, error) {
	if profile.Kind == entity.AgentDataAnalyst && req.Dataset != nil {
		summary := dataset.Summarize(req.Dataset)
		return prompts.DataTopicPrompt(summary, req.Topic)
	}
	return prompts.TopicPrompt(req.Topic)
}

func (uc *DispatchUseCase) executeTool(ctx context.Context, log output.LoggerPort, tc entity.ToolCall) string {
	tool, ok := uc.tools.Get(tc.Name)
	if !ok {
		log.Warn("Unknown tool called", "name", tc.Name.String())
		return fmt.Sprintf("Error: unknown tool '%s'", tc.Name)
	}

	log.Info("Executing tool", "name", tc.Name.String(), "args", tc.Arguments)

	result, err := tool.Execute(ctx, tc.Arguments)
	if err != nil {
		log.Error("Tool execution failed", "name", tc.Name.String(), "error", err)
		return "Error: " + err.Error()
	}

	if len(result) > maxObservationLen {
		result = result[:maxObservationLen] + "\n... (truncated)"
	}

	log.Debug("Tool completed", "name", tc.Name.String(), "resultLen", len(result))
	return result
}
