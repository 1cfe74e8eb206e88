package di

import (
	"fmt"
	"time"

	"github.com/nomi00700/agno-multi-agent/internal/adapter/tool"
	"github.com/nomi00700/agno-multi-agent/internal/agents"
	"github.com/nomi00700/agno-multi-agent/internal/application/port/input"
	"github.com/nomi00700/agno-multi-agent/internal/application/port/output"
	"github.com/nomi00700/agno-multi-agent/internal/application/service"
	"github.com/nomi00700/agno-multi-agent/internal/application/usecase"
	"github.com/nomi00700/agno-multi-agent/internal/infrastructure/llm/groq"
	"github.com/nomi00700/agno-multi-agent/internal/infrastructure/logger"
	"github.com/nomi00700/agno-multi-agent/internal/infrastructure/search"
	"github.com/nomi00700/agno-multi-agent/internal/infrastructure/web"
)

type Container struct {
	Logger     output.LoggerPort
	LLM        output.LLMPort
	Tools      output.ToolRegistry
	Agents     agents.Table
	Dispatcher input.Dispatcher
	Server     *web.Server
}

type Config struct {
	GroqAPIKey     string
	GroqModel      string
	GroqBaseURL    string
	BraveAPIKey    string
	HTTPAddr       string
	LogLevel       string
	MaxIterations  int
	RequestTimeout time.Duration
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewZapAdapter(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llmCfg := groq.DefaultConfig(cfg.GroqAPIKey, cfg.GroqModel)
	if cfg.GroqBaseURL != "" {
		llmCfg.BaseURL = cfg.GroqBaseURL
	}
	llmCfg.Logger = log.WithField("component", "llm")
	llm := groq.NewGroqAdapter(llmCfg)

	var provider search.Provider
	if cfg.BraveAPIKey != "" {
		provider = search.NewBrave(cfg.BraveAPIKey)
	} else {
		provider = search.NewDuckDuckGo()
	}
	log.Info("Search provider selected", "provider", provider.Name())

	tools := service.NewToolRegistry()
	registerResearchTools(tools, provider, log)

	table := agents.NewTable()
	dispatcher := usecase.NewDispatchUseCase(llm, tools, table, log, cfg.MaxIterations)

	handler := web.NewHandler(dispatcher, table, log, cfg.RequestTimeout)
	server := web.NewServer(web.ServerConfig{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
		Logger:  log,
	})

	return &Container{
		Logger:     log,
		LLM:        llm,
		Tools:      tools,
		Agents:     table,
		Dispatcher: dispatcher,
		Server:     server,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func registerResearchTools(registry *service.ToolRegistryImpl, provider search.Provider, log output.LoggerPort) {
	registry.Register(tool.NewWebSearchTool(provider, log))
	registry.Register(tool.NewHackerNewsTool(log))
	registry.Register(tool.NewArxivTool(log))
}
